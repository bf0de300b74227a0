package world

import (
	"github.com/samdwyer/warquest/internal/grid"
	"github.com/samdwyer/warquest/internal/ui"
)

// Kind tags what sort of actor an Entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindNpc
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindNpc:
		return "npc"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "player":
		return KindPlayer, true
	case "enemy":
		return KindEnemy, true
	case "npc":
		return KindNpc, true
	default:
		return 0, false
	}
}

// DefaultRune returns the glyph used for a kind when none is configured.
func (k Kind) DefaultRune() Rune {
	switch k {
	case KindPlayer:
		return Rune{Display: '@', Foreground: ui.ColorYellow, Background: ui.ColorGreen}
	case KindEnemy:
		return Rune{Display: '&', Foreground: ui.ColorRed, Background: ui.ColorBlack}
	case KindNpc:
		return Rune{Display: '$', Foreground: ui.ColorBlue, Background: ui.ColorBlack}
	default:
		return Rune{Display: '?', Foreground: ui.ColorPurple, Background: ui.ColorBlack}
	}
}

// Entity is an actor standing on the map.
type Entity struct {
	Name     string
	Kind     Kind
	Position grid.Coord
	Rune     Rune
}

// NewEntity creates an entity drawn with its kind's default rune.
func NewEntity(name string, kind Kind, pos grid.Coord) *Entity {
	return &Entity{
		Name:     name,
		Kind:     kind,
		Position: pos,
		Rune:     kind.DefaultRune(),
	}
}

// Hail returns the entity's greeting.
func (e *Entity) Hail() string {
	switch e.Kind {
	case KindPlayer:
		return "Hello!"
	case KindEnemy:
		return "Grrr!"
	case KindNpc:
		return "Hi there!"
	default:
		return "..."
	}
}
