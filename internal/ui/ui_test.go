package ui

import (
	"errors"
	"testing"

	"github.com/samdwyer/warquest/internal/grid"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	u := New(grid.Coord{Col: 0, Row: 20}, 20, 5)
	if err := u.AddRegion("system", NewRegion(grid.Coord{Col: 0, Row: 20}, 10, 5, true)); err != nil {
		t.Fatalf("AddRegion(system) error: %v", err)
	}
	if err := u.AddRegion("combat", NewRegion(grid.Coord{Col: 10, Row: 20}, 10, 5, true)); err != nil {
		t.Fatalf("AddRegion(combat) error: %v", err)
	}
	return u
}

func TestUIAddRegionRejects(t *testing.T) {
	u := newTestUI(t)

	tests := []struct {
		name   string
		region *Region
		want   error
	}{
		{"overlap", NewRegion(grid.Coord{Col: 5, Row: 21}, 10, 2, false), ErrRegionOverlap},
		{"outside right", NewRegion(grid.Coord{Col: 15, Row: 20}, 10, 2, false), ErrRegionOutside},
		{"outside above", NewRegion(grid.Coord{Col: 0, Row: 0}, 5, 2, false), ErrRegionOutside},
		{"empty", NewRegion(grid.Coord{Col: 0, Row: 20}, 0, 0, false), ErrRegionOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.AddRegion(tt.name, tt.region)
			if !errors.Is(err, tt.want) {
				t.Errorf("AddRegion() error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := u.AddRegion("system", NewRegion(grid.Coord{Col: 0, Row: 24}, 1, 1, false)); err == nil {
		t.Error("AddRegion() with a duplicate name should fail")
	}
}

func TestUIPrintRoutesToNamedRegion(t *testing.T) {
	s := newRecorder()
	u := newTestUI(t)

	if err := u.Print(s, "combat", "Grrr!"); err != nil {
		t.Fatalf("Print(combat) error: %v", err)
	}

	combat, _ := u.Region("combat")
	system, _ := u.Region("system")
	if len(combat.Messages()) != 1 || combat.Messages()[0] != "Grrr!" {
		t.Errorf("combat messages = %v, want [Grrr!]", combat.Messages())
	}
	if len(system.Messages()) != 0 {
		t.Errorf("system messages = %v, want none", system.Messages())
	}
	if got := s.line(10, 24, 10); got != "Grrr!     " {
		t.Errorf("combat bottom line = %q, want %q", got, "Grrr!     ")
	}
	if got := s.line(0, 24, 10); got != "··········" {
		t.Errorf("system bottom line = %q, want untouched", got)
	}
}

func TestUIPrintUnknownRegion(t *testing.T) {
	u := newTestUI(t)
	err := u.Print(newRecorder(), "nowhere", "hello")
	if !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("Print() error = %v, want ErrUnknownRegion", err)
	}
}

func TestUIRenderChromeAndRedraw(t *testing.T) {
	s := newRecorder()
	u := newTestUI(t)

	u.RenderChrome(s, "System    Combat\n====================\nnot drawn by regions")
	system, _ := u.Region("system")
	system.Push("queued")
	u.Redraw(s)

	if got := s.line(0, 20, 16); got != "System    Combat" {
		t.Errorf("chrome row 0 = %q", got)
	}
	if got := s.line(0, 21, 20); got != "====================" {
		t.Errorf("chrome row 1 = %q", got)
	}
	if got := s.line(0, 24, 10); got != "queued    " {
		t.Errorf("system bottom line = %q, want %q", got, "queued    ")
	}
}
