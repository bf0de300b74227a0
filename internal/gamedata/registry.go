package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warquest/internal/grid"
	"github.com/samdwyer/warquest/internal/world"
)

// EntityRegistry holds loaded entity definitions and builds the starting
// roster from them.
type EntityRegistry struct {
	entities []EntityDef
	player   *EntityDef
}

// NewEntityRegistry validates definitions and creates a registry. Exactly
// one definition must be of kind player.
func NewEntityRegistry(entities []EntityDef) (*EntityRegistry, error) {
	registry := &EntityRegistry{entities: entities}
	seen := make(map[string]bool, len(entities))

	for i := range entities {
		def := &entities[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate entity id %q", def.ID)
		}
		seen[def.ID] = true

		if def.Kind == world.KindPlayer.String() {
			if registry.player != nil {
				return nil, fmt.Errorf("entity %s: more than one player definition", def.ID)
			}
			registry.player = def
		}
	}

	if registry.player == nil {
		return nil, errors.New("no player definition")
	}
	return registry, nil
}

// LoadEntityRegistry loads and creates a registry from the embedded entities.json.
func LoadEntityRegistry() (*EntityRegistry, error) {
	entities, err := LoadEntities()
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, errors.New("no entities loaded from entities.json")
	}
	return NewEntityRegistry(entities)
}

// MustLoadEntityRegistry loads a registry, panicking on error.
func MustLoadEntityRegistry() *EntityRegistry {
	registry, err := LoadEntityRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the entity definition with the given ID, or nil if not found.
func (r *EntityRegistry) GetByID(id string) *EntityDef {
	for i := range r.entities {
		if r.entities[i].ID == id {
			return &r.entities[i]
		}
	}
	return nil
}

// Count returns the number of entity definitions in the registry.
func (r *EntityRegistry) Count() int {
	return len(r.entities)
}

// Spawn creates the player and the roster of other entities for a map.
//
// The player starts on its first spawn cell, or the centre of the map when
// it has none or that cell is off the map. The roster lists fixed spawns in
// definition order, followed by one entity per map marker, definitions in
// order and markers in row-major order within each definition. Fixed spawns
// that fall outside a smaller map are skipped.
func (r *EntityRegistry) Spawn(tiles *world.TileMap) (*world.Entity, []*world.Entity, error) {
	start := grid.Coord{Col: tiles.Cols() / 2, Row: tiles.Rows() / 2}
	if len(r.player.Spawns) > 0 && tiles.InBounds(r.player.Spawns[0].Col, r.player.Spawns[0].Row) {
		start = r.player.Spawns[0]
	}
	player, err := newEntity(r.player, start)
	if err != nil {
		return nil, nil, err
	}

	var roster []*world.Entity
	for i := range r.entities {
		def := &r.entities[i]
		if def == r.player {
			continue
		}
		for _, pos := range def.Spawns {
			if !tiles.InBounds(pos.Col, pos.Row) {
				continue
			}
			e, err := newEntity(def, pos)
			if err != nil {
				return nil, nil, err
			}
			roster = append(roster, e)
		}
	}

	for i := range r.entities {
		def := &r.entities[i]
		marker, ok := def.MarkerRune()
		if !ok {
			continue
		}
		for _, pos := range tiles.Find(marker) {
			e, err := newEntity(def, pos)
			if err != nil {
				return nil, nil, err
			}
			roster = append(roster, e)
		}
	}

	return player, roster, nil
}

func newEntity(def *EntityDef, pos grid.Coord) (*world.Entity, error) {
	kind, err := def.EntityKind()
	if err != nil {
		return nil, err
	}
	r, err := def.Rune()
	if err != nil {
		return nil, err
	}
	return &world.Entity{
		Name:     def.Name,
		Kind:     kind,
		Position: pos,
		Rune:     r,
	}, nil
}
