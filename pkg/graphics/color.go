// Package graphics provides the color value type shared by the system UI
// controller and the platform bindings.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// ParseHex parses a "#RRGGBB" or "#RRGGBBAA" color string. Hex digits are
// case-insensitive. Any other shape is an error.
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") {
		return 0, fmt.Errorf("color %q: missing '#' prefix", s)
	}
	digits := trimmed[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: invalid hex digits", s)
	}
	if len(digits) == 6 {
		return Color(0xFF000000 | uint32(v)), nil
	}
	// Trailing byte is alpha; Color stores alpha in the high byte.
	return Color(uint32(v&0xFF)<<24 | uint32(v>>8)), nil
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	a := uint8(c >> 24)
	if a == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%06x%02x", uint32(c)&0xFFFFFF, a)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool {
	return uint8(c>>24) == 0xFF
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Luminance returns the color's relative luminance (CIE Y, 0.0 to 1.0),
// ignoring alpha. Useful for picking a contrasting foreground.
func (c Color) Luminance() float64 {
	r, g, b, _ := c.RGBAF()
	_, y, _ := colorful.Color{R: r, G: g, B: b}.Xyz()
	return y
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
