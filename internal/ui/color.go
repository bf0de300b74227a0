package ui

import "fmt"

// Color is a display color: one of the 256 palette entries or a 24-bit RGB
// value. The zero value is the display's default color.
type Color uint32

const (
	colorSet Color = 1 << 31
	colorRGB Color = 1 << 30
)

// ColorDefault leaves the display's own color in place.
const ColorDefault Color = 0

// The 16 standard palette colors.
const (
	ColorBlack Color = colorSet | iota
	ColorMaroon
	ColorGreen
	ColorOlive
	ColorNavy
	ColorPurple
	ColorTeal
	ColorSilver
	ColorGray
	ColorRed
	ColorLime
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorAqua
	ColorWhite
)

// PaletteColor returns the palette entry at index, which must be 0-255.
func PaletteColor(index int) Color {
	return colorSet | Color(index&0xFF)
}

// HexColor returns the RGB color 0xRRGGBB.
func HexColor(v int32) Color {
	return colorSet | colorRGB | Color(v&0xFFFFFF)
}

// IsDefault reports whether c is the display default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// IsRGB reports whether c is an RGB value rather than a palette entry.
func (c Color) IsRGB() bool {
	return c&(colorSet|colorRGB) == colorSet|colorRGB
}

// Value returns the palette index, or the 0xRRGGBB value for RGB colors.
func (c Color) Value() int32 {
	if c.IsRGB() {
		return int32(c & 0xFFFFFF)
	}
	return int32(c & 0xFF)
}

func (c Color) String() string {
	switch {
	case c.IsDefault():
		return "default"
	case c.IsRGB():
		return fmt.Sprintf("#%06x", c.Value())
	default:
		return fmt.Sprintf("palette(%d)", c.Value())
	}
}
