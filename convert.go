package waycolor

import "math"

// chromaEpsilon is the delta below which a color counts as achromatic.
// Gray pixels then report hue 0 rather than an unstable quotient.
const chromaEpsilon = 1e-4

// rgbToHSV converts 8-bit RGB components to integer HSV terms.
// Hue lands in [0, 360), saturation and value in [0, 100], each rounded
// to the nearest integer.
func rgbToHSV(r, g, b int) (h, s, v int) {
	hf, sf, vf := rgbToHSVf(float64(r)/255, float64(g)/255, float64(b)/255)

	h = int(math.Round(hf))
	if h == 360 {
		h = 0
	}
	return h, int(math.Round(sf * 100)), int(math.Round(vf * 100))
}

// rgbToHSVf is the float-space RGB to HSV conversion underlying the
// integer color model and the s/v slider fields. The components are in
// [0, 1]; hue lands in [0, 360), saturation and value in [0, 1].
func rgbToHSVf(r, g, b float64) (h, s, v float64) {
	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	switch {
	case delta <= chromaEpsilon:
		h = 0
	case cmax == r:
		h = math.Mod(60*((g-b)/delta)+360, 360)
	case cmax == g:
		h = math.Mod(60*((b-r)/delta)+120, 360)
	default:
		h = math.Mod(60*((r-g)/delta)+240, 360)
	}

	if cmax > 0 {
		s = delta / cmax
	}
	return h, s, cmax
}

// hsvToRGB converts integer HSV terms to 8-bit RGB components, rounded
// to the nearest integer. Hue 360 falls into the final sector and yields
// the same color as hue 0.
func hsvToRGB(h, s, v int) (r, g, b int) {
	rf, gf, bf := hsvToRGBf(float64(h), float64(s)/100, float64(v)/100)
	return int(math.Round(rf * 255)), int(math.Round(gf * 255)), int(math.Round(bf * 255))
}

// hsvToRGBf is the float-space HSV to RGB conversion underlying both the
// integer color model and the gradient field functions. Hue is in degrees
// [0, 360], saturation and value in [0, 1]; the result components are in
// [0, 1].
func hsvToRGBf(h, s, v float64) (r, g, b float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return rf + m, gf + m, bf + m
}

// rgbToHSL converts 8-bit RGB components to integer HSL terms.
// Hue matches rgbToHSV; lightness is the midpoint of the extremes.
func rgbToHSL(r, g, b int) (h, s, l int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	cmax := math.Max(rf, math.Max(gf, bf))
	cmin := math.Min(rf, math.Min(gf, bf))
	delta := cmax - cmin

	var hf float64
	switch {
	case delta <= chromaEpsilon:
		hf = 0
	case cmax == rf:
		hf = math.Mod(60*((gf-bf)/delta)+360, 360)
	case cmax == gf:
		hf = math.Mod(60*((bf-rf)/delta)+120, 360)
	default:
		hf = math.Mod(60*((rf-gf)/delta)+240, 360)
	}

	lf := (cmax + cmin) / 2
	var sf float64
	if delta > chromaEpsilon {
		sf = delta / (1 - math.Abs(2*lf-1)) * 100
	}

	h = int(math.Round(hf))
	if h == 360 {
		h = 0
	}
	return h, int(math.Round(sf)), int(math.Round(lf * 100))
}

// rgbToCMYK converts 8-bit RGB components to integer CMYK percentages.
// Pure black short-circuits to (0, 0, 0, 100) so the chromatic terms
// never divide by zero.
func rgbToCMYK(r, g, b int) (cy, m, y, k int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	cmax := math.Max(rf, math.Max(gf, bf))
	if cmax == 0 {
		return 0, 0, 0, 100
	}
	kf := 1 - cmax

	cf := (1 - rf - kf) / (1 - kf) * 100
	mf := (1 - gf - kf) / (1 - kf) * 100
	yf := (1 - bf - kf) / (1 - kf) * 100

	return int(math.Round(cf)), int(math.Round(mf)), int(math.Round(yf)), int(math.Round(kf * 100))
}
