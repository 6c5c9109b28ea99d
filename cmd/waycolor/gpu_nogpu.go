//go:build nogpu

package main

import (
	"errors"

	"github.com/lifer0se/waycolor/render"
)

// newGPURenderer reports that this binary was built without GPU
// support.
func newGPURenderer() (render.Renderer, error) {
	return nil, errors.New("built with the nogpu tag; only software rendering is available")
}
