// Package ui provides the drawing surface, scrolling message regions and
// the static screen chrome. Screen puts the surface on a tcell terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen wraps tcell.Screen with a cursor-based Surface.
type Screen struct {
	screen tcell.Screen
	col    int
	row    int
	style  tcell.Style
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapScreen(s)
}

// WrapScreen initializes an existing tcell screen, such as one backed by an
// SSH session or a simulation screen in tests.
func WrapScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(style)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, style: style}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// MoveTo places the cursor at the given cell.
func (s *Screen) MoveTo(col, row int) {
	s.col, s.row = col, row
}

// SetForeground sets the color used by subsequent prints.
func (s *Screen) SetForeground(c Color) {
	s.style = s.style.Foreground(terminalColor(c))
}

// SetBackground sets the background used by subsequent prints.
func (s *Screen) SetBackground(c Color) {
	s.style = s.style.Background(terminalColor(c))
}

// Print writes text at the cursor, advancing one cell per column of
// display width.
func (s *Screen) Print(text string) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(s.col, s.row, r, nil, s.style)
		s.col += w
	}
}

func terminalColor(c Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.IsRGB():
		return tcell.NewHexColor(c.Value())
	default:
		return tcell.PaletteColor(int(c.Value()))
	}
}
