package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/warquest/internal/grid"
	"github.com/samdwyer/warquest/internal/world"
)

// EntityDef defines an actor loaded from JSON.
type EntityDef struct {
	ID         string       `json:"id"`                   // Unique identifier (e.g., "kobold")
	Name       string       `json:"name"`                 // Display name (e.g., "Kobold")
	Kind       string       `json:"kind"`                 // player, enemy or npc
	Glyph      string       `json:"glyph,omitempty"`      // Single character; kind default when empty
	Color      string       `json:"color,omitempty"`      // Foreground, name or hex
	Background string       `json:"background,omitempty"` // Background, name or hex
	Spawns     []grid.Coord `json:"spawns,omitempty"`     // Fixed starting cells
	Marker     string       `json:"marker,omitempty"`     // Map character that spawns one of these
}

// EntitiesFile represents the structure of entities.json.
type EntitiesFile struct {
	Entities []EntityDef `json:"entities"`
}

// LoadEntities loads entity definitions from the embedded entities.json file.
func LoadEntities() ([]EntityDef, error) {
	file, err := Load[EntitiesFile](entitiesFile)
	if err != nil {
		return nil, err
	}
	return file.Entities, nil
}

// EntityKind returns the parsed kind.
func (d *EntityDef) EntityKind() (world.Kind, error) {
	kind, ok := world.ParseKind(d.Kind)
	if !ok {
		return 0, fmt.Errorf("entity %s: unknown kind %q", d.ID, d.Kind)
	}
	return kind, nil
}

// MarkerRune returns the marker character, or false when the definition
// has none.
func (d *EntityDef) MarkerRune() (rune, bool) {
	if d.Marker == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(d.Marker)
	return r, true
}

// Rune builds the glyph for this definition, falling back to the kind's
// defaults for anything left unset.
func (d *EntityDef) Rune() (world.Rune, error) {
	kind, err := d.EntityKind()
	if err != nil {
		return world.Rune{}, err
	}
	r := kind.DefaultRune()

	if d.Glyph != "" {
		r.Display, _ = utf8.DecodeRuneInString(d.Glyph)
	}
	if d.Color != "" {
		if r.Foreground, err = ParseColor(d.Color); err != nil {
			return world.Rune{}, fmt.Errorf("entity %s: %w", d.ID, err)
		}
	}
	if d.Background != "" {
		if r.Background, err = ParseColor(d.Background); err != nil {
			return world.Rune{}, fmt.Errorf("entity %s: %w", d.ID, err)
		}
	}
	return r, nil
}

// Validate checks that the definition can be turned into entities.
func (d *EntityDef) Validate() error {
	if d.ID == "" {
		return errors.New("entity definition without id")
	}
	if utf8.RuneCountInString(d.Glyph) > 1 {
		return fmt.Errorf("entity %s: glyph %q is more than one character", d.ID, d.Glyph)
	}
	if utf8.RuneCountInString(d.Marker) > 1 {
		return fmt.Errorf("entity %s: marker %q is more than one character", d.ID, d.Marker)
	}
	kind, err := d.EntityKind()
	if err != nil {
		return err
	}
	if kind == world.KindPlayer && d.Marker != "" {
		return fmt.Errorf("entity %s: the player cannot spawn from map markers", d.ID)
	}
	if marker, ok := d.MarkerRune(); ok && world.IsMapChar(marker) {
		return fmt.Errorf("entity %s: marker %q is a terrain character", d.ID, marker)
	}
	for _, spawn := range d.Spawns {
		if spawn.Col < 0 || spawn.Row < 0 {
			return fmt.Errorf("entity %s: negative spawn %v", d.ID, spawn)
		}
	}
	_, err = d.Rune()
	return err
}
