// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"

	"github.com/lifer0se/waycolor"
	"github.com/lifer0se/waycolor/render"
)

// ExampleNewSoftware paints the saturation/value plane on the CPU.
func ExampleNewSoftware() {
	r := render.NewSoftware()
	defer r.Close()

	h, err := r.Create(waycolor.MainPlane)
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}

	pm := waycolor.NewPixmap(380, 270)
	if err := r.Paint(h, pm, waycolor.FromRGB(30, 144, 255)); err != nil {
		fmt.Println("paint failed:", err)
		return
	}

	// The bottom edge fades to black; the top-right corner sits a pixel
	// center away from the pure hue (#0080FF at 210 degrees).
	fmt.Println(pm.ColorAt(0, 269).Hex())
	fmt.Println(pm.ColorAt(379, 0).Hex())

	if err := r.Destroy(h); err != nil {
		fmt.Println("destroy failed:", err)
	}
	// Output:
	// #000000
	// #007FFF
}

// ExampleSoftware_Paint paints the hue slider, whose field varies only
// horizontally.
func ExampleSoftware_Paint() {
	r := render.NewSoftware()
	defer r.Close()

	h, _ := r.Create(waycolor.SliderH)
	pm := waycolor.NewPixmap(291, 20)
	if err := r.Paint(h, pm, waycolor.FromHSV(200, 60, 70)); err != nil {
		fmt.Println("paint failed:", err)
		return
	}

	// The center column is hue 180, and every row is identical.
	fmt.Println(pm.ColorAt(145, 10).Hex())
	fmt.Println(pm.ColorAt(145, 0) == pm.ColorAt(145, 19))
	// Output:
	// #00FFFF
	// true
}

// ExampleRenderer shows the acquire, paint, release cycle shared by
// every Renderer implementation.
func ExampleRenderer() {
	var r render.Renderer = render.NewSoftware()

	h, err := r.Create(waycolor.SliderR)
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}

	// A surface has at most one live handle.
	if _, err := r.Create(waycolor.SliderR); err != nil {
		fmt.Println("second create refused")
	}

	if err := r.Destroy(h); err != nil {
		fmt.Println("destroy failed:", err)
		return
	}

	// Destroying the same handle again is an error.
	if err := r.Destroy(h); err != nil {
		fmt.Println("double destroy refused")
	}

	if err := r.Close(); err != nil {
		fmt.Println("close failed:", err)
	}
	// Output:
	// second create refused
	// double destroy refused
}

// ExampleDrawHandle stamps a picker handle onto a pixmap.
func ExampleDrawHandle() {
	pm := waycolor.NewPixmap(64, 64)
	pm.Clear(waycolor.FromRGB(41, 45, 59))

	fill := waycolor.FromRGB(30, 144, 255)
	render.DrawHandle(pm, waycolor.Pt(32, 32), 13, 2.5, fill, fill.Complementary())

	fmt.Println(pm.ColorAt(32, 32).Hex())
	// Output: #1E90FF
}
