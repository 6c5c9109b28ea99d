//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// renderTarget holds the offscreen textures a surface paints into: a
// 4x MSAA color texture and a single-sample resolve texture that
// doubles as the readback copy source. Gradient passes carry no
// depth/stencil attachment.
type renderTarget struct {
	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView
	width       uint32
	height      uint32
}

// ensure creates or recreates the textures if the requested dimensions
// differ from the current size. If dimensions match and textures
// exist, this is a no-op.
func (rt *renderTarget) ensure(device hal.Device, w, h uint32) error {
	if rt.width == w && rt.height == h && rt.msaaTex != nil {
		return nil
	}
	rt.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	msaaTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "surface_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	rt.msaaTex = msaaTex

	msaaView, err := device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label: "surface_msaa_color_view",
	})
	if err != nil {
		rt.destroy(device)
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	rt.msaaView = msaaView

	resolveTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "surface_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		rt.destroy(device)
		return fmt.Errorf("create resolve texture: %w", err)
	}
	rt.resolveTex = resolveTex

	resolveView, err := device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label: "surface_resolve_view",
	})
	if err != nil {
		rt.destroy(device)
		return fmt.Errorf("create resolve view: %w", err)
	}
	rt.resolveView = resolveView

	rt.width = w
	rt.height = h
	return nil
}

// destroy releases all texture resources and resets dimensions.
func (rt *renderTarget) destroy(device hal.Device) {
	if rt.resolveView != nil {
		device.DestroyTextureView(rt.resolveView)
		rt.resolveView = nil
	}
	if rt.resolveTex != nil {
		device.DestroyTexture(rt.resolveTex)
		rt.resolveTex = nil
	}
	if rt.msaaView != nil {
		device.DestroyTextureView(rt.msaaView)
		rt.msaaView = nil
	}
	if rt.msaaTex != nil {
		device.DestroyTexture(rt.msaaTex)
		rt.msaaTex = nil
	}
	rt.width = 0
	rt.height = 0
}

// convertBGRAToRGBA swaps the red and blue bytes of count pixels from
// src into dst. Both buffers hold 4 bytes per pixel.
func convertBGRAToRGBA(src, dst []byte, count int) {
	for i := 0; i < count; i++ {
		o := i * 4
		dst[o+0] = src[o+2]
		dst[o+1] = src[o+1]
		dst[o+2] = src[o+0]
		dst[o+3] = src[o+3]
	}
}
