// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/lifer0se/waycolor"
)

// BenchmarkSoftwarePaint measures a full CPU repaint of each gradient
// surface at its on-screen size.
func BenchmarkSoftwarePaint(b *testing.B) {
	surfaces := []struct {
		name string
		kind waycolor.Kind
		w, h int
	}{
		{"plane_380x270", waycolor.MainPlane, 380, 270},
		{"slider_h_291x20", waycolor.SliderH, 291, 20},
		{"slider_r_291x20", waycolor.SliderR, 291, 20},
	}

	base := waycolor.FromHSV(200, 60, 70)
	for _, s := range surfaces {
		b.Run(s.name, func(b *testing.B) {
			r := NewSoftware()
			defer r.Close()
			h, err := r.Create(s.kind)
			if err != nil {
				b.Fatalf("Create(%v): %v", s.kind, err)
			}
			dst := waycolor.NewPixmap(s.w, s.h)

			b.ReportAllocs()
			b.SetBytes(int64(s.w * s.h * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := r.Paint(h, dst, base); err != nil {
					b.Fatalf("Paint: %v", err)
				}
			}
		})
	}
}
