package waycolor

import (
	"fmt"
	"image/color"
)

// Color is an immutable color carrying both its RGB and HSV representations.
// RGB components are integers in [0, 255]; hue is in degrees [0, 360]
// (360 only ever arrives through the slider clamp policy and denotes the
// same color as 0); saturation and value are percentages in [0, 100].
//
// The two representations always describe the same visual color within one
// unit per channel. A Color is never mutated: every change constructs a new
// value through FromRGB, FromHSV, or FromHex, recomputing the derived
// representation. The zero value is opaque black.
type Color struct {
	r, g, b int
	h, s, v int
}

// FromRGB constructs a Color from red, green, and blue components.
// Inputs are clamped to [0, 255]; hue, saturation, and value are derived.
// Reading the components back returns the clamped inputs exactly.
func FromRGB(r, g, b int) Color {
	r = clampChannel(ChannelR, r)
	g = clampChannel(ChannelG, g)
	b = clampChannel(ChannelB, b)
	h, s, v := rgbToHSV(r, g, b)
	return Color{r: r, g: g, b: b, h: h, s: s, v: v}
}

// FromHSV constructs a Color from hue, saturation, and value.
// Hue is clamped to [0, 360], saturation and value to [0, 100]; the RGB
// components are derived. The given HSV terms are kept as-is, so a fully
// desaturated color still remembers its hue.
func FromHSV(h, s, v int) Color {
	h = clampChannel(ChannelH, h)
	s = clampChannel(ChannelS, s)
	v = clampChannel(ChannelV, v)
	r, g, b := hsvToRGB(h, s, v)
	return Color{r: r, g: g, b: b, h: h, s: s, v: v}
}

// FromHex parses a strict "#RRGGBB" string: exactly a '#' followed by six
// hex digits, upper or lower case. Anything else returns ok == false and
// the zero Color; callers treat that as "no color" and keep their current
// value.
func FromHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	var rgb [3]int
	for i := range rgb {
		hi, ok := hexDigit(s[1+i*2])
		if !ok {
			return Color{}, false
		}
		lo, ok := hexDigit(s[2+i*2])
		if !ok {
			return Color{}, false
		}
		rgb[i] = hi<<4 | lo
	}
	return FromRGB(rgb[0], rgb[1], rgb[2]), true
}

// hexDigit decodes a single hex digit.
func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// R returns the red component in [0, 255].
func (c Color) R() int { return c.r }

// G returns the green component in [0, 255].
func (c Color) G() int { return c.g }

// B returns the blue component in [0, 255].
func (c Color) B() int { return c.b }

// H returns the hue in degrees, [0, 360].
func (c Color) H() int { return c.h }

// S returns the saturation percentage in [0, 100].
func (c Color) S() int { return c.s }

// V returns the value percentage in [0, 100].
func (c Color) V() int { return c.v }

// Value returns the raw integer value of the named channel.
func (c Color) Value(ch Channel) int {
	switch ch {
	case ChannelR:
		return c.r
	case ChannelG:
		return c.g
	case ChannelB:
		return c.b
	case ChannelH:
		return c.h
	case ChannelS:
		return c.s
	case ChannelV:
		return c.v
	}
	return 0
}

// Normalized returns the channel value scaled to [0, 1]. This is the
// coordinate form gradient rendering and handle placement work in.
func (c Color) Normalized(ch Channel) float64 {
	return float64(c.Value(ch)) / float64(ch.Max())
}

// WithChannel returns a new Color with one channel replaced by value,
// clamped to the channel's range. RGB channels rebuild through FromRGB,
// HSV channels through FromHSV, so the untouched representation is
// re-derived and all invariants hold.
func (c Color) WithChannel(ch Channel, value int) Color {
	value = clampChannel(ch, value)
	switch ch {
	case ChannelR:
		return FromRGB(value, c.g, c.b)
	case ChannelG:
		return FromRGB(c.r, value, c.b)
	case ChannelB:
		return FromRGB(c.r, c.g, value)
	case ChannelH:
		return FromHSV(value, c.s, c.v)
	case ChannelS:
		return FromHSV(c.h, value, c.v)
	case ChannelV:
		return FromHSV(c.h, c.s, value)
	}
	return c
}

// Complementary returns the hue rotated 180 degrees at saturation 85 and
// value 75. Used as a handle outline color: it contrasts against any base
// hue without ever going full white or full black.
func (c Color) Complementary() Color {
	return FromHSV((c.h+180)%360, 85, 75)
}

// Dimmed returns the hue rotated 180 degrees at saturation 30 with the
// value inverted. Used for secondary UI emphasis.
func (c Color) Dimmed() Color {
	return FromHSV((c.h+180)%360, 30, 100-c.v)
}

// Hex returns the canonical hex encoding of the RGB components:
// zero-padded uppercase "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// HSL returns the hue, saturation, and lightness representation.
// Hue is in degrees [0, 360), saturation and lightness in [0, 100].
func (c Color) HSL() (h, s, l int) {
	return rgbToHSL(c.r, c.g, c.b)
}

// CMYK returns the cyan, magenta, yellow, and key (black) representation,
// each in [0, 100]. Pure black yields (0, 0, 0, 100).
func (c Color) CMYK() (cy, m, y, k int) {
	return rgbToCMYK(c.r, c.g, c.b)
}

// RGBNormalized returns the RGB components scaled to [0, 1].
func (c Color) RGBNormalized() (r, g, b float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

// NRGBA converts the color to the standard library's 8-bit RGBA form
// with full opacity.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: 0xFF}
}

// String returns the canonical hex form.
func (c Color) String() string { return c.Hex() }
