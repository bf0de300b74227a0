// Package world provides the tile map, its actors and the rules for moving
// the player through it.
package world

import "github.com/samdwyer/warquest/internal/ui"

// Rune is a display character with its colors.
type Rune struct {
	Display    rune
	Foreground ui.Color
	Background ui.Color
}

// String returns the display character.
func (r Rune) String() string {
	return string(r.Display)
}

// Tile is one terrain cell. Tiles are values and never change once built.
type Tile struct {
	solid bool
	rune  Rune
}

// Terrain characters understood by TileFromChar.
const (
	CharFloor    = '.'
	CharPath     = '/'
	CharWall     = '#'
	CharHazard   = '☠'
	CharMountain = '^'
)

// IsMapChar reports whether c already means something on a map: one of the
// terrain characters or the padding used for short rows.
func IsMapChar(c rune) bool {
	switch c {
	case CharFloor, CharPath, CharWall, CharHazard, CharMountain, padChar:
		return true
	default:
		return false
	}
}

// TileFromChar classifies a map character. Unknown characters become
// passable marker tiles that echo the character.
func TileFromChar(c rune) Tile {
	switch c {
	case CharFloor:
		return Tile{rune: Rune{Display: c, Foreground: ui.ColorSilver, Background: ui.ColorBlack}}
	case CharPath:
		return Tile{rune: Rune{Display: c, Foreground: ui.ColorYellow, Background: ui.ColorBlack}}
	case CharWall:
		return Tile{solid: true, rune: Rune{Display: c, Foreground: ui.ColorWhite, Background: ui.ColorBlack}}
	case CharHazard:
		// Cosmetic only; walking onto it has no effect.
		return Tile{rune: Rune{Display: c, Foreground: ui.ColorRed, Background: ui.ColorBlack}}
	case CharMountain:
		return Tile{solid: true, rune: Rune{Display: c, Foreground: ui.HexColor(0x8B008B), Background: ui.ColorSilver}}
	default:
		return Tile{rune: Rune{Display: c, Foreground: ui.ColorWhite, Background: ui.ColorBlack}}
	}
}

// Solid returns true if the tile blocks movement.
func (t Tile) Solid() bool {
	return t.solid
}

// Rune returns the tile's glyph and colors.
func (t Tile) Rune() Rune {
	return t.rune
}
