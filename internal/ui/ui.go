package ui

import (
	"errors"
	"fmt"

	"github.com/samdwyer/warquest/internal/grid"
)

var (
	// ErrUnknownRegion is returned when printing to a region that was never added.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrRegionOverlap is returned when a new region would share cells with another.
	ErrRegionOverlap = errors.New("region overlaps an existing region")
	// ErrRegionOutside is returned when a region does not fit inside the UI.
	ErrRegionOutside = errors.New("region lies outside the ui")
)

// UI is a block of screen holding named message regions and a static
// chrome template drawn across its top rows.
type UI struct {
	bounds  grid.Rect
	regions map[string]*Region
	order   []string
}

// New creates an empty UI covering the given rectangle.
func New(start grid.Coord, cols, rows int) *UI {
	return &UI{
		bounds:  grid.Rect{Start: start, Cols: cols, Rows: rows},
		regions: make(map[string]*Region),
	}
}

// Bounds returns the screen rectangle covered by the UI.
func (u *UI) Bounds() grid.Rect {
	return u.bounds
}

// AddRegion registers a region under name. Regions must fit inside the UI
// and may not overlap each other.
func (u *UI) AddRegion(name string, r *Region) error {
	if _, ok := u.regions[name]; ok {
		return fmt.Errorf("region %q already exists", name)
	}
	b := r.Bounds()
	last := grid.Coord{Col: b.Start.Col + b.Cols - 1, Row: b.Start.Row + b.Rows - 1}
	if b.Cols <= 0 || b.Rows <= 0 || !u.bounds.Contains(b.Start) || !u.bounds.Contains(last) {
		return fmt.Errorf("region %q: %w", name, ErrRegionOutside)
	}
	for _, other := range u.order {
		if u.regions[other].Bounds().Intersects(b) {
			return fmt.Errorf("region %q and %q: %w", name, other, ErrRegionOverlap)
		}
	}
	u.regions[name] = r
	u.order = append(u.order, name)
	return nil
}

// Region returns the region registered under name.
func (u *UI) Region(name string) (*Region, bool) {
	r, ok := u.regions[name]
	return r, ok
}

// Print forwards text to the named region.
func (u *UI) Print(s Surface, name, text string) error {
	r, ok := u.regions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	r.Print(s, text)
	return nil
}

// RenderChrome writes the static layout template at the top of the UI.
func (u *UI) RenderChrome(s Surface, layout string) {
	renderLayout(s, u.bounds, layout)
}

// Redraw repaints every region's log.
func (u *UI) Redraw(s Surface) {
	for _, name := range u.order {
		u.regions[name].Redraw(s)
	}
}
