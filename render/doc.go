// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints gradient surfaces into pixmaps.
//
// The package defines the Renderer interface shared by the CPU and GPU
// backends, the handle discipline for acquiring surfaces, and the
// overlay primitives drawn on top of finished gradients.
//
// # Core Interfaces
//
//   - Renderer: acquires gradient surfaces and paints them for a base color
//   - Handle: an acquired surface, strictly paired between Create and Destroy
//   - DeviceHandle: GPU device access provided by a host application
//
// # Renderer Implementations
//
//   - Software: CPU evaluation of the gradient fields, no dependencies
//   - gpu.NewRenderer (separate package): WebGPU pipelines with identical output
//
// # Usage
//
//	r := render.NewSoftware()
//	defer r.Close()
//
//	h, err := r.Create(waycolor.MainPlane)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm := waycolor.NewPixmap(380, 270)
//	if err := r.Paint(h, pm, waycolor.FromRGB(30, 144, 255)); err != nil {
//	    log.Fatal(err)
//	}
//	r.Destroy(h)
//
// Overlay primitives then mark the current selection:
//
//	render.DrawHandle(pm, pos, 13, 2.5, current, current.Complementary())
//
// # Thread Safety
//
// Handle accounting is synchronized. Concurrent Paint calls on the same
// renderer require external synchronization.
package render
