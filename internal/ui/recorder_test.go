package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/warquest/internal/grid"
)

// recorder is an in-memory Surface that remembers the last glyph written
// to every cell.
type recorder struct {
	cursor grid.Coord
	fg, bg Color
	cells  map[grid.Coord]rune
	writes int
}

func newRecorder() *recorder {
	return &recorder{cells: make(map[grid.Coord]rune)}
}

func (r *recorder) MoveTo(col, row int) { r.cursor = grid.Coord{Col: col, Row: row} }
func (r *recorder) SetForeground(c Color) { r.fg = c }
func (r *recorder) SetBackground(c Color) { r.bg = c }

func (r *recorder) Print(text string) {
	for _, ch := range text {
		r.cells[r.cursor] = ch
		r.writes++
		r.cursor.Col += max(runewidth.RuneWidth(ch), 1)
	}
}

// line returns n cells of a row starting at col, with unset cells as '·'.
func (r *recorder) line(col, row, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		ch, ok := r.cells[grid.Coord{Col: col + i, Row: row}]
		if !ok {
			ch = '·'
		}
		b.WriteRune(ch)
	}
	return b.String()
}
