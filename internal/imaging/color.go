package imaging

import (
	"fmt"
	"image/color"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hexColorPattern matches "#RGB" and "#RRGGBB", hex digits in either case.
var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// White is the default background and border color.
const White = "#FFFFFF"

// IsValidColor reports whether s is a "#RGB" or "#RRGGBB" hex color.
func IsValidColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ParseColor parses a "#RGB" or "#RRGGBB" hex color into an opaque NRGBA.
//
// Short forms expand each digit, so "#abc" is the same color as "#AABBCC".
// Names ("red"), alpha forms ("#FF000080") and malformed strings are rejected.
func ParseColor(s string) (color.NRGBA, error) {
	if !IsValidColor(s) {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor renders c as "#RRGGBB", dropping alpha.
func FormatColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
