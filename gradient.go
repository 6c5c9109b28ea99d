package waycolor

// Kind identifies one of the seven gradient surfaces: the
// saturation/value plane and the six channel sliders.
type Kind uint8

const (
	// MainPlane is the two-dimensional saturation/value field rendered
	// under the current hue.
	MainPlane Kind = iota
	// SliderR through SliderV are one-dimensional sweeps of a single
	// channel with the remaining channels held at the base color.
	SliderR
	SliderG
	SliderB
	SliderH
	SliderS
	SliderV
)

// Kinds lists every surface in display order: the plane first, then the
// sliders top to bottom.
var Kinds = []Kind{MainPlane, SliderR, SliderG, SliderB, SliderH, SliderS, SliderV}

// SliderFor returns the slider surface that sweeps ch.
func SliderFor(ch Channel) Kind {
	switch ch {
	case ChannelR:
		return SliderR
	case ChannelG:
		return SliderG
	case ChannelB:
		return SliderB
	case ChannelH:
		return SliderH
	case ChannelS:
		return SliderS
	case ChannelV:
		return SliderV
	}
	return MainPlane
}

// Channel returns the channel a slider sweeps. ok is false for MainPlane,
// which has no single channel.
func (k Kind) Channel() (ch Channel, ok bool) {
	switch k {
	case SliderR:
		return ChannelR, true
	case SliderG:
		return ChannelG, true
	case SliderB:
		return ChannelB, true
	case SliderH:
		return ChannelH, true
	case SliderS:
		return ChannelS, true
	case SliderV:
		return ChannelV, true
	}
	return 0, false
}

// IsSlider reports whether k is one of the six channel sliders.
func (k Kind) IsSlider() bool {
	return k >= SliderR && k <= SliderV
}

// Valid reports whether k names a known surface.
func (k Kind) Valid() bool {
	return k <= SliderV
}

func (k Kind) String() string {
	switch k {
	case MainPlane:
		return "plane"
	case SliderR:
		return "slider-r"
	case SliderG:
		return "slider-g"
	case SliderB:
		return "slider-b"
	case SliderH:
		return "slider-h"
	case SliderS:
		return "slider-s"
	case SliderV:
		return "slider-v"
	}
	return "?"
}

// mix linearly interpolates from a to b by t.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// PlaneColorAt evaluates the saturation/value plane at (u, v), both in
// [0, 1]. u blends from white into the base color's hue at full
// saturation and value; v scales the result toward black, so v = 1 is
// the bright edge. The result components are in [0, 1].
//
// This is the reference definition of the plane field; the GPU shader
// computes the same expression per fragment.
func PlaneColorAt(base Color, u, v float64) (r, g, b float64) {
	hr, hg, hb := hsvToRGBf(float64(base.h), 1, 1)
	return mix(1, hr, u) * v, mix(1, hg, u) * v, mix(1, hb, u) * v
}

// SliderColorAt evaluates slider k at normalized position t in [0, 1]:
// the swept channel runs over its full range while the other channels
// hold the base color's values. The s and v sweeps first derive the
// base's HSV terms from its RGB, so an achromatic base sweeps along
// hue 0 regardless of the hue it was built with. The result components
// are in [0, 1]. MainPlane is not a slider and evaluates to black.
//
// This is the reference definition of the slider fields; the GPU shaders
// compute the same expressions per fragment.
func SliderColorAt(k Kind, base Color, t float64) (r, g, b float64) {
	switch k {
	case SliderR:
		return t, float64(base.g) / 255, float64(base.b) / 255
	case SliderG:
		return float64(base.r) / 255, t, float64(base.b) / 255
	case SliderB:
		return float64(base.r) / 255, float64(base.g) / 255, t
	case SliderH:
		return hsvToRGBf(t*360, 1, 1)
	case SliderS:
		h, _, v := rgbToHSVf(base.RGBNormalized())
		return hsvToRGBf(h, t, v)
	case SliderV:
		h, s, _ := rgbToHSVf(base.RGBNormalized())
		return hsvToRGBf(h, s, t)
	}
	return 0, 0, 0
}
