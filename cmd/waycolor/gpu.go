//go:build !nogpu

package main

import (
	"github.com/lifer0se/waycolor/gpu"
	"github.com/lifer0se/waycolor/render"
)

// newGPURenderer opens the hardware renderer.
func newGPURenderer() (render.Renderer, error) {
	return gpu.NewRenderer()
}
