// Package color provides hex color parsing and the lightening arithmetic
// used to fade branch colors toward white as the mind map deepens.
//
// Colors are plain "#rrggbb" strings throughout the codebase. This package
// is the only place that takes them apart.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is returned when a color string is not a 6-hex-digit RGB value.
// All colors originate from the fixed palette or deterministic derivation,
// so hitting this in normal operation indicates a programming defect.
var ErrFormat = errors.New("malformed hex color")

// DefaultFactor is the lightening factor used when no explicit factor applies.
const DefaultFactor = 0.25

// HexToRGB parses a "#rrggbb" (or "rrggbb") string into channel values.
// Each channel is in [0, 255].
func HexToRGB(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v, perr := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
		}
		ch[i] = int(v)
	}
	return ch[0], ch[1], ch[2], nil
}

// RGBToHex formats channel values as a lowercase "#rrggbb" string.
// Channels outside [0, 255] are clamped before formatting.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

// Lighten blends each channel of the color toward white: c + (255-c)*factor,
// truncated toward zero. A factor of 0 returns the color unchanged
// (normalized to lowercase), a factor of 1 returns "#ffffff".
func Lighten(s string, factor float64) (string, error) {
	r, g, b, err := HexToRGB(s)
	if err != nil {
		return "", err
	}
	lift := func(c int) int {
		return c + int(float64(255-c)*factor)
	}
	return RGBToHex(lift(r), lift(g), lift(b)), nil
}

func clamp(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
