package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/warquest/internal/ui"
)

// ParseColor accepts either a W3C color name ("yellow", "darkmagenta") or
// a hex code.
func ParseColor(s string) (ui.Color, error) {
	c, ok := tcell.ColorNames[strings.ToLower(s)]
	if !ok {
		return ParseHexColor(s)
	}
	if c.IsRGB() {
		return ui.HexColor(c.Hex()), nil
	}
	return ui.PaletteColor(int(c - tcell.ColorValid)), nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a ui.Color.
func ParseHexColor(hex string) (ui.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return ui.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ui.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return ui.HexColor(int32(rgb)), nil
}
