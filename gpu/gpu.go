//go:build !nogpu

// Package gpu provides the WebGPU-backed gradient renderer.
//
// It is the hardware twin of render.Software: the same seven surfaces,
// the same handle discipline, the same output within rounding error.
// Each surface's fragment program is compiled once at construction and
// painted offscreen with 4x MSAA, then read back into the destination
// pixmap.
//
// Rendering runs on the gogpu/wgpu Pure Go WebGPU implementation (zero
// CGO) over Vulkan, Metal, or DX12 depending on the platform. Build
// with the nogpu tag to drop this package and its GPU dependencies.
//
// Usage:
//
//	r, err := gpu.NewRenderer()
//	if err != nil {
//	    // no GPU available; fall back to render.NewSoftware()
//	}
//	defer r.Close()
//
// A host application that already owns a WebGPU device shares it
// instead:
//
//	r, err := gpu.NewRendererOn(handle) // handle implements render.DeviceHandle
package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lifer0se/waycolor"
	gpuimpl "github.com/lifer0se/waycolor/internal/gpu"
	"github.com/lifer0se/waycolor/render"
)

// Renderer is the GPU-backed render.Renderer. One render pipeline per
// gradient surface is built at construction and destroyed exactly once
// by Close.
type Renderer struct {
	handles   render.HandleTable
	arena     *gpuimpl.Arena
	closeOnce sync.Once
}

// NewRenderer creates a GPU renderer on its own device. It fails when
// no GPU backend is available or any surface pipeline cannot be built;
// the error names the failing resource.
func NewRenderer() (*Renderer, error) {
	arena, err := gpuimpl.NewArena()
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	return &Renderer{arena: arena}, nil
}

// NewRendererOn creates a GPU renderer on a device owned by the host
// application. The handle must expose HAL device access
// (gpucontext.HalProvider); nil handles and handles without a device,
// such as render.NullDeviceHandle, are rejected. Closing the renderer
// leaves the shared device alone.
func NewRendererOn(h render.DeviceHandle) (*Renderer, error) {
	if h == nil {
		return nil, errors.New("gpu: nil device handle")
	}
	if h.Device() == nil {
		return nil, errors.New("gpu: device handle has no GPU device")
	}
	arena, err := gpuimpl.NewArenaOn(h)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	return &Renderer{arena: arena}, nil
}

// Create acquires the surface for kind.
func (r *Renderer) Create(kind waycolor.Kind) (render.Handle, error) {
	return r.handles.Acquire(kind)
}

// Paint renders h's gradient field for base into dst on the GPU.
func (r *Renderer) Paint(h render.Handle, dst *waycolor.Pixmap, base waycolor.Color) error {
	if err := r.handles.Lookup(h); err != nil {
		return err
	}
	if dst == nil {
		return errors.New("nil destination pixmap")
	}
	if dst.Width() == 0 || dst.Height() == 0 {
		return nil
	}
	return r.arena.Paint(h.Kind(), dst, base)
}

// Destroy releases h.
func (r *Renderer) Destroy(h render.Handle) error {
	return r.handles.Release(h)
}

// Close releases all outstanding handles and destroys the GPU
// resources. Close is idempotent; the pipelines are destroyed exactly
// once.
func (r *Renderer) Close() error {
	leaked := r.handles.Close()
	if len(leaked) > 0 {
		waycolor.Logger().Warn("gpu renderer closed with surfaces still acquired",
			"count", len(leaked))
	}
	r.closeOnce.Do(r.arena.Close)
	return nil
}

// Verify at compile time that Renderer implements render.Renderer.
var _ render.Renderer = (*Renderer)(nil)
