package world

import (
	"strings"

	"github.com/samdwyer/warquest/internal/grid"
)

// padChar fills cells the map text does not supply.
const padChar = ' '

// TileMap is a fixed rows x cols grid of tiles.
type TileMap struct {
	rows  int
	cols  int
	tiles [][]Tile
}

// NewTileMap parses at most rows lines of mapText, each contributing at most
// cols characters. Short lines and missing rows are padded with blank
// marker tiles so the grid is always rectangular.
func NewTileMap(rows, cols int, mapText string) *TileMap {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	lines := strings.Split(mapText, "\n")
	pad := TileFromChar(padChar)

	tiles := make([][]Tile, rows)
	for row := range tiles {
		tiles[row] = make([]Tile, cols)

		var chars []rune
		if row < len(lines) {
			chars = []rune(strings.TrimSuffix(lines[row], "\r"))
		}
		for col := range tiles[row] {
			if col < len(chars) {
				tiles[row][col] = TileFromChar(chars[col])
			} else {
				tiles[row][col] = pad
			}
		}
	}

	return &TileMap{rows: rows, cols: cols, tiles: tiles}
}

// Rows returns the number of rows in the grid.
func (m *TileMap) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the grid.
func (m *TileMap) Cols() int {
	return m.cols
}

// InBounds returns true if the cell lies inside the grid.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// At returns the tile at the given cell. The second result is false when
// the cell is out of bounds.
func (m *TileMap) At(col, row int) (Tile, bool) {
	if !m.InBounds(col, row) {
		return Tile{}, false
	}
	return m.tiles[row][col], true
}

// CanMoveTo returns true if the cell is in bounds and not solid.
func (m *TileMap) CanMoveTo(col, row int) bool {
	if !m.InBounds(col, row) {
		return false
	}
	return !m.tiles[row][col].Solid()
}

// Find returns every cell showing the given character, in row-major order.
func (m *TileMap) Find(c rune) []grid.Coord {
	var found []grid.Coord
	for row := range m.tiles {
		for col, tile := range m.tiles[row] {
			if tile.Rune().Display == c {
				found = append(found, grid.Coord{Col: col, Row: row})
			}
		}
	}
	return found
}
