package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// shortColors are the single-letter base colors of the report chart specs.
var shortColors = map[string]color.RGBA{
	"b": {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"g": {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"r": {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"c": {R: 0x00, G: 0xbf, B: 0xbf, A: 0xff},
	"m": {R: 0xbf, G: 0x00, B: 0xbf, A: 0xff},
	"y": {R: 0xbf, G: 0xbf, B: 0x00, A: 0xff},
	"k": {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"w": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ResolveColor maps a short code ("b"), an SVG color name ("orange") or a
// "#rrggbb" hex string to a color.
func ResolveColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := shortColors[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") && len(key) == 7 {
		v, err := strconv.ParseUint(key[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", name)
}

// HexColor returns c as "RRGGBB".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
