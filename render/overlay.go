// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/lifer0se/waycolor"
)

// overlaySupersample is the sampling factor for handle rasterization.
const overlaySupersample = 4

// DrawHandle paints a circular selection handle onto dst: a disc filled
// with fill, outlined by a ring of strokeWidth centered on the radius
// and stroked with ring. The shape is rasterized at 4x and downscaled
// with a Catmull-Rom filter, then composited over the existing pixels
// so the gradient shows through the antialiased edge.
//
// Handles whose bounds fall outside the pixmap are clipped; a handle
// entirely outside draws nothing.
func DrawHandle(dst *waycolor.Pixmap, center waycolor.Point, radius, strokeWidth float64, fill, ring waycolor.Color) {
	if dst == nil || radius <= 0 {
		return
	}

	outer := radius + strokeWidth/2
	inner := radius - strokeWidth/2

	// Bounding box in destination pixels, padded for filter support.
	x0 := int(math.Floor(center.X-outer)) - 1
	y0 := int(math.Floor(center.Y-outer)) - 1
	x1 := int(math.Ceil(center.X+outer)) + 1
	y1 := int(math.Ceil(center.Y+outer)) + 1
	bw, bh := x1-x0, y1-y0
	if bw <= 0 || bh <= 0 {
		return
	}

	const ss = overlaySupersample
	src := image.NewRGBA(image.Rect(0, 0, bw*ss, bh*ss))

	fc := fill.NRGBA()
	rc := ring.NRGBA()
	for sy := 0; sy < bh*ss; sy++ {
		py := float64(y0) + (float64(sy)+0.5)/ss
		for sx := 0; sx < bw*ss; sx++ {
			px := float64(x0) + (float64(sx)+0.5)/ss
			d := math.Hypot(px-center.X, py-center.Y)

			i := src.PixOffset(sx, sy)
			switch {
			case d <= inner:
				src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = fc.R, fc.G, fc.B, 0xFF
			case d <= outer:
				src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = rc.R, rc.G, rc.B, 0xFF
			}
		}
	}

	xdraw.CatmullRom.Scale(dst.Image(), image.Rect(x0, y0, x1, y1), src, src.Bounds(), xdraw.Over, nil)
}

// DrawBorder strokes a rectangular outline of the given pixel width
// just inside rect. Used to frame gradient surfaces the way the picker
// window outlines them.
func DrawBorder(dst *waycolor.Pixmap, rect waycolor.Rect, width int, c waycolor.Color) {
	if dst == nil || width <= 0 {
		return
	}

	x0 := int(math.Round(rect.Min.X))
	y0 := int(math.Round(rect.Min.Y))
	x1 := int(math.Round(rect.Max.X))
	y1 := int(math.Round(rect.Max.Y))

	for i := 0; i < width; i++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y0+i, c)
			dst.SetColor(x, y1-1-i, c)
		}
		for y := y0; y < y1; y++ {
			dst.SetColor(x0+i, y, c)
			dst.SetColor(x1-1-i, y, c)
		}
	}
}
