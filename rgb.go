package ansibanner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Banner colors are always
// stored this way; conversion to a terminal palette happens only when
// the grid is emitted.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseHex parses a color in `#RRGGBB` notation. The leading `#` is
// required and exactly six hexadecimal digits must follow it; anything
// else yields a *ColorParseError.
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, &ColorParseError{Input: s, Reason: "missing '#' prefix"}
	}
	digits := s[1:]
	if len(digits) != 6 {
		return RGB{}, &ColorParseError{
			Input:  s,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits)),
		}
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return RGB{}, &ColorParseError{Input: s, Reason: "bad hex digit", Err: err}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, &ColorParseError{Input: s, Reason: "bad hex digit", Err: err}
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// MustParseHex is ParseHex for package-level tables of known-good colors.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as `#RRGGBB` in upper case.
func (r RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
}

func (r RGB) String() string { return r.Hex() }

// rgbFromUint32 converts a 32-bit unsigned integer to an RGB color
func rgbFromUint32(color uint32) RGB {
	return RGB{
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
}

// Lerp blends r towards other by t, where t is clamped to [0, 1]. Each
// channel is interpolated independently and rounded to the nearest
// integer, so t=0 returns r and t=1 returns other exactly.
func (r RGB) Lerp(other RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(r.R, other.R, t),
		G: lerpChannel(r.G, other.G, t),
		B: lerpChannel(r.B, other.B, t),
	}
}

// Darken scales every channel by (1 - amount). An amount of 0 leaves the
// color unchanged and 1 produces black.
func (r RGB) Darken(amount float64) RGB {
	f := 1 - clamp01(amount)
	return RGB{
		R: uint8(math.Round(float64(r.R) * f)),
		G: uint8(math.Round(float64(r.G) * f)),
		B: uint8(math.Round(float64(r.B) * f)),
	}
}

// Add blends tint onto r additively, weighted by amount, saturating each
// channel at 255. This is how highlight bands brighten a cell.
func (r RGB) Add(tint RGB, amount float64) RGB {
	a := clamp01(amount)
	return RGB{
		R: addChannel(r.R, tint.R, a),
		G: addChannel(r.G, tint.G, a),
		B: addChannel(r.B, tint.B, a),
	}
}

// Luminance returns the perceptual lightness of the color (CIE L*)
// normalised to [0, 1].
func (r RGB) Luminance() float64 {
	l, _, _ := r.colorful().Lab()
	return clamp01(l)
}

// colorful converts to go-colorful's float representation.
func (r RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(r.R) / 255,
		G: float64(r.G) / 255,
		B: float64(r.B) / 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func addChannel(base, tint uint8, amount float64) uint8 {
	v := float64(base) + float64(tint)*amount
	return uint8(math.Round(math.Min(255, v)))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
