// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"math"

	"github.com/lifer0se/waycolor"
)

// Software is a CPU-based Renderer that evaluates the gradient fields
// directly, pixel by pixel. It needs no GPU and produces the same
// surfaces as the WebGPU renderer within rounding error.
//
// Performance characteristics:
//   - Sliders evaluate one scanline and replicate it down the pixmap.
//   - The plane evaluates its brightest row once and scales it per row.
//   - Memory: O(width) scratch per Paint.
//
// Example:
//
//	r := render.NewSoftware()
//	h, _ := r.Create(waycolor.MainPlane)
//	pm := waycolor.NewPixmap(380, 270)
//	r.Paint(h, pm, waycolor.FromRGB(30, 144, 255))
//	r.Destroy(h)
//	r.Close()
type Software struct {
	handles HandleTable
}

// NewSoftware creates a new CPU-based gradient renderer.
func NewSoftware() *Software {
	return &Software{}
}

// Create acquires the surface for kind.
func (r *Software) Create(kind waycolor.Kind) (Handle, error) {
	return r.handles.Acquire(kind)
}

// Paint fills dst with h's gradient field evaluated for base.
// Samples are taken at pixel centers.
func (r *Software) Paint(h Handle, dst *waycolor.Pixmap, base waycolor.Color) error {
	if err := r.handles.Lookup(h); err != nil {
		return err
	}
	if dst == nil {
		return errors.New("nil destination pixmap")
	}
	if dst.Width() == 0 || dst.Height() == 0 {
		return nil
	}

	if h.Kind() == waycolor.MainPlane {
		paintPlane(dst, base)
	} else {
		paintSlider(h.Kind(), dst, base)
	}
	return nil
}

// Destroy releases h.
func (r *Software) Destroy(h Handle) error {
	return r.handles.Release(h)
}

// Close releases all outstanding handles. Close is idempotent.
func (r *Software) Close() error {
	leaked := r.handles.Close()
	if len(leaked) > 0 {
		waycolor.Logger().Warn("software renderer closed with surfaces still acquired",
			"count", len(leaked))
	}
	return nil
}

// paintPlane fills dst with the saturation/value plane. The brightest
// row is evaluated once; every other row is the same colors scaled by
// its value coordinate.
func paintPlane(dst *waycolor.Pixmap, base waycolor.Color) {
	w, h := dst.Width(), dst.Height()

	topR := make([]float64, w)
	topG := make([]float64, w)
	topB := make([]float64, w)
	for x := 0; x < w; x++ {
		u := (float64(x) + 0.5) / float64(w)
		topR[x], topG[x], topB[x] = waycolor.PlaneColorAt(base, u, 1)
	}

	for y := 0; y < h; y++ {
		v := 1 - (float64(y)+0.5)/float64(h)
		row := dst.Row(y)
		for x := 0; x < w; x++ {
			i := x * 4
			row[i+0] = colorByte(topR[x] * v)
			row[i+1] = colorByte(topG[x] * v)
			row[i+2] = colorByte(topB[x] * v)
			row[i+3] = 0xFF
		}
	}
}

// paintSlider fills dst with a one-dimensional channel sweep. The field
// does not vary vertically, so the first scanline is replicated.
func paintSlider(k waycolor.Kind, dst *waycolor.Pixmap, base waycolor.Color) {
	w, h := dst.Width(), dst.Height()

	row := dst.Row(0)
	for x := 0; x < w; x++ {
		t := (float64(x) + 0.5) / float64(w)
		fr, fg, fb := waycolor.SliderColorAt(k, base, t)
		i := x * 4
		row[i+0] = colorByte(fr)
		row[i+1] = colorByte(fg)
		row[i+2] = colorByte(fb)
		row[i+3] = 0xFF
	}

	for y := 1; y < h; y++ {
		copy(dst.Row(y), row)
	}
}

// colorByte converts a [0, 1] component to its 8-bit form.
func colorByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(f * 255))
}

// Verify at compile time that Software implements Renderer.
var _ Renderer = (*Software)(nil)
