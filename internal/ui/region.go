package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/warquest/internal/grid"
)

// BorderRows is the number of top rows a bordered region leaves to chrome.
const BorderRows = 2

// Region is a fixed rectangle of the screen showing a scrolling log.
// Messages are kept newest first and never exceed Capacity.
type Region struct {
	bounds   grid.Rect
	reserved int
	messages []string
}

// NewRegion creates a region. A bordered region keeps its top BorderRows
// rows for chrome and logs below them.
func NewRegion(start grid.Coord, cols, rows int, bordered bool) *Region {
	reserved := 0
	if bordered {
		reserved = BorderRows
	}
	r := &Region{
		bounds:   grid.Rect{Start: start, Cols: cols, Rows: rows},
		reserved: reserved,
	}
	r.messages = make([]string, 0, r.Capacity())
	return r
}

// Bounds returns the screen rectangle covered by the region.
func (r *Region) Bounds() grid.Rect {
	return r.bounds
}

// Capacity returns how many messages the region retains.
func (r *Region) Capacity() int {
	return max(r.bounds.Rows-r.reserved, 0)
}

// Messages returns the retained messages, newest first.
func (r *Region) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Push records a message without drawing, evicting the oldest messages
// beyond capacity.
func (r *Region) Push(text string) {
	text = strings.ReplaceAll(text, "\n", " ")
	r.messages = append([]string{text}, r.messages...)
	if len(r.messages) > r.Capacity() {
		r.messages = r.messages[:r.Capacity()]
	}
}

// Print records a message and redraws the region.
func (r *Region) Print(s Surface, text string) {
	r.Push(text)
	r.Redraw(s)
}

// Redraw paints every log line of the region. The newest message sits on
// the bottom line, and every line is padded to the full width so shorter
// text overwrites whatever was there before.
func (r *Region) Redraw(s Surface) {
	capacity := r.Capacity()
	top := r.bounds.Start.Row + r.reserved

	s.SetForeground(ColorWhite)
	s.SetBackground(ColorBlack)
	for line := 0; line < capacity; line++ {
		text := ""
		if idx := capacity - 1 - line; idx < len(r.messages) {
			text = r.messages[idx]
		}
		s.MoveTo(r.bounds.Start.Col, top+line)
		s.Print(fitWidth(text, r.bounds.Cols))
	}
}

// RenderChrome writes a static template into the region's top rows,
// clipped to the region. It does not touch the message log.
func (r *Region) RenderChrome(s Surface, layout string) {
	renderLayout(s, r.bounds, layout)
}

func renderLayout(s Surface, bounds grid.Rect, layout string) {
	s.SetForeground(ColorWhite)
	s.SetBackground(ColorBlack)
	for i, line := range strings.Split(strings.TrimRight(layout, "\n"), "\n") {
		if i >= bounds.Rows {
			return
		}
		s.MoveTo(bounds.Start.Col, bounds.Start.Row+i)
		s.Print(runewidth.Truncate(strings.TrimSuffix(line, "\r"), bounds.Cols, ""))
	}
}

// fitWidth left-justifies text in exactly cols display columns.
func fitWidth(text string, cols int) string {
	return runewidth.FillRight(runewidth.Truncate(text, cols, ""), cols)
}
