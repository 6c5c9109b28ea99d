//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/lifer0se/waycolor"
)

// Arena owns the GPU resources for all seven gradient surfaces. It is
// the drawing backend behind the public gpu package's Renderer; handle
// bookkeeping lives there, so the arena only knows how to paint.
//
// Every surface pipeline and the shared quad vertex buffer are built
// at construction. A failed shader compile or pipeline build fails the
// constructor with an error naming the surface. Paint calls serialize
// on an internal mutex.
type Arena struct {
	mu sync.Mutex

	dev       deviceState
	quadBuf   hal.Buffer
	pipelines [int(waycolor.SliderV) + 1]surfacePipeline
	target    renderTarget
	closed    bool
}

// NewArena creates an arena on its own GPU device.
func NewArena() (*Arena, error) {
	a := &Arena{}
	if err := a.dev.open(); err != nil {
		return nil, err
	}
	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}
	waycolor.Logger().Info("gpu arena initialized", "adapter", a.dev.adapterName)
	return a, nil
}

// NewArenaOn creates an arena on a device and queue owned by a host
// application. The provider must expose HAL device access; see
// deviceState.openShared. Closing the arena releases its pipelines and
// textures but leaves the shared device alone.
func NewArenaOn(provider any) (*Arena, error) {
	a := &Arena{}
	if err := a.dev.openShared(provider); err != nil {
		return nil, err
	}
	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}
	waycolor.Logger().Info("gpu arena initialized", "adapter", "shared device")
	return a, nil
}

// init validates the shaders, uploads the quad vertex buffer, and
// builds every surface pipeline.
func (a *Arena) init() error {
	// Every shader must pass the naga frontend before any device
	// resources are created; a bad shader fails with the surface name
	// instead of a mid-build pipeline error.
	for _, kind := range waycolor.Kinds {
		src, err := shaderSource(kind)
		if err != nil {
			return err
		}
		if _, err := naga.Compile(src); err != nil {
			return fmt.Errorf("validate %v shader: %w", kind, err)
		}
	}

	quad := quadVertices()
	quadBuf, err := a.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "surface_quad",
		Size:  uint64(len(quad)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create quad vertex buffer: %w", err)
	}
	a.dev.queue.WriteBuffer(quadBuf, 0, quad)
	a.quadBuf = quadBuf

	for _, kind := range waycolor.Kinds {
		if err := a.pipelines[kind].create(a.dev.device, kind); err != nil {
			return err
		}
	}
	return nil
}

// Paint renders kind's gradient field for base into dst. Each call is
// one fenced round trip: uniform upload, MSAA render pass, resolve,
// copy to staging, readback. dst must be a non-empty pixmap.
func (a *Arena) Paint(kind waycolor.Kind, dst *waycolor.Pixmap, base waycolor.Color) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return fmt.Errorf("paint %v: arena closed", kind)
	}
	if !kind.Valid() {
		return fmt.Errorf("paint kind %d: no pipeline", kind)
	}

	w, h := uint32(dst.Width()), uint32(dst.Height())
	if err := a.target.ensure(a.dev.device, w, h); err != nil {
		return err
	}

	p := &a.pipelines[kind]
	a.dev.queue.WriteBuffer(p.uniformBuf, 0, packUniform(base))

	return a.encodeSubmitReadback(p, dst, w, h)
}

// encodeSubmitReadback records the surface render pass, copies the
// resolve texture to a staging buffer, submits, waits, and converts
// the readback into dst.
func (a *Arena) encodeSubmitReadback(p *surfacePipeline, dst *waycolor.Pixmap, w, h uint32) error {
	device, queue := a.dev.device, a.dev.queue

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "surface_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("surface_paint"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "surface_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:          a.target.msaaView,
				ResolveTarget: a.target.resolveView,
				LoadOp:        gputypes.LoadOpClear,
				StoreOp:       gputypes.StoreOpStore,
				ClearValue:    gputypes.Color{R: 0, G: 0, B: 0, A: 0},
			},
		},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, p.bindGroup, nil)
	rp.SetVertexBuffer(0, a.quadBuf, 0)
	rp.Draw(quadVertexCount, 1, 0, 0)
	rp.End()

	// After the MSAA resolve the texture sits in render attachment
	// layout; the buffer copy needs copy-source. Explicit barrier for
	// Vulkan, a no-op on other backends.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: a.target.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	// Buffer copies require a 256-byte aligned row pitch.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "surface_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(a.target.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: a.target.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Transition back so the next paint's resolve finds the layout it
	// expects.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: a.target.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	pixels := int(w) * int(h)
	if alignedBytesPerRow == bytesPerRow {
		convertBGRAToRGBA(readback, dst.Data(), pixels)
	} else {
		tight := make([]byte, uint64(bytesPerRow)*uint64(h))
		for row := uint32(0); row < h; row++ {
			srcOff := int(row) * int(alignedBytesPerRow)
			dstOff := int(row) * int(bytesPerRow)
			copy(tight[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
		}
		convertBGRAToRGBA(tight, dst.Data(), pixels)
	}
	return nil
}

// Close destroys every pipeline, the offscreen textures, the quad
// buffer, and the owned device. Close is idempotent.
func (a *Arena) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true

	device := a.dev.device
	if device != nil {
		for i := range a.pipelines {
			a.pipelines[i].destroy(device)
		}
		a.target.destroy(device)
		if a.quadBuf != nil {
			device.DestroyBuffer(a.quadBuf)
			a.quadBuf = nil
		}
	}
	a.dev.close()
}
