package world

import (
	"testing"

	"github.com/samdwyer/warquest/internal/ui"
)

func TestTileFromChar(t *testing.T) {
	tests := []struct {
		char  rune
		solid bool
	}{
		{'.', false},
		{'/', false},
		{'#', true},
		{'☠', false},
		{'^', true},
		{'A', false},
		{' ', false},
		{'&', false},
	}

	for _, tt := range tests {
		tile := TileFromChar(tt.char)
		if tile.Solid() != tt.solid {
			t.Errorf("TileFromChar(%q).Solid() = %v, want %v", tt.char, tile.Solid(), tt.solid)
		}
		if tile.Rune().Display != tt.char {
			t.Errorf("TileFromChar(%q) displays %q", tt.char, tile.Rune().Display)
		}
	}
}

func TestTileFromCharIsPure(t *testing.T) {
	if TileFromChar('^') != TileFromChar('^') {
		t.Error("classifying the same character twice should give equal tiles")
	}
	if TileFromChar('☠').Rune().Foreground != ui.ColorRed {
		t.Error("hazard tile should be drawn in red")
	}
}

func TestIsMapChar(t *testing.T) {
	tests := []struct {
		char rune
		want bool
	}{
		{'.', true},
		{'/', true},
		{'#', true},
		{'☠', true},
		{'^', true},
		{' ', true},
		{'g', false},
		{'&', false},
	}

	for _, tt := range tests {
		if got := IsMapChar(tt.char); got != tt.want {
			t.Errorf("IsMapChar(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}
