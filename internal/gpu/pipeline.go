//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/lifer0se/waycolor"
)

// uniformSize is the byte size of the surface uniform block.
// Layout: rgba (vec4<f32>) + hsv (vec4<f32>) = 32 bytes.
const uniformSize = 32

// vertexStride is the byte stride per quad vertex: 2 x float32 = 8 bytes.
const vertexStride = 8

// quadVertexCount is the number of vertices in the full-screen quad.
const quadVertexCount = 6

// sampleCount is the MSAA sample count for surface render passes.
const sampleCount = 4

// surfacePipeline holds the GPU resources for one gradient surface:
// the compiled shader, its layouts, the render pipeline, and the
// uniform buffer with its bind group. Each surface owns a full set so
// resources are created once at arena construction and destroyed
// exactly once.
type surfacePipeline struct {
	kind waycolor.Kind

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
	uniformBuf    hal.Buffer
	bindGroup     hal.BindGroup
}

// create compiles kind's shader and builds its render pipeline and
// uniform bindings. Every error names the surface it belongs to. On
// failure the partially created resources are destroyed before
// returning, so a failed surfacePipeline holds nothing.
func (p *surfacePipeline) create(device hal.Device, kind waycolor.Kind) error {
	p.kind = kind

	src, err := shaderSource(kind)
	if err != nil {
		return err
	}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  fmt.Sprintf("%v_shader", kind),
		Source: hal.ShaderSource{WGSL: src},
	})
	if err != nil {
		return fmt.Errorf("compile %v shader: %w", kind, err)
	}
	p.shader = shader

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: fmt.Sprintf("%v_uniform_layout", kind),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create %v uniform layout: %w", kind, err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            fmt.Sprintf("%v_pipe_layout", kind),
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create %v pipeline layout: %w", kind, err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("%v_pipeline", kind),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{
							Format:         gputypes.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create %v pipeline: %w", kind, err)
	}
	p.pipeline = pipeline

	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("%v_uniform", kind),
		Size:  uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create %v uniform buffer: %w", kind, err)
	}
	p.uniformBuf = uniformBuf

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  fmt.Sprintf("%v_bind", kind),
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: p.uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create %v bind group: %w", kind, err)
	}
	p.bindGroup = bindGroup

	return nil
}

// destroy releases the surface's resources in reverse creation order.
// Safe to call on a partially created pipeline; each resource is
// released at most once.
func (p *surfacePipeline) destroy(device hal.Device) {
	if device == nil {
		return
	}
	if p.bindGroup != nil {
		device.DestroyBindGroup(p.bindGroup)
		p.bindGroup = nil
	}
	if p.uniformBuf != nil {
		device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// packUniform encodes base into the shader uniform block. rgba holds
// the normalized RGB components with alpha fixed at one; hsv carries
// the stored HSV terms for the plane program, whose hue axis follows
// the base even when its RGB is achromatic. The slider programs derive
// what they need from rgba.
func packUniform(base waycolor.Color) []byte {
	buf := make([]byte, uniformSize)
	r, g, b := base.RGBNormalized()
	putFloat32(buf[0:], float32(r))
	putFloat32(buf[4:], float32(g))
	putFloat32(buf[8:], float32(b))
	putFloat32(buf[12:], 1)
	putFloat32(buf[16:], float32(base.H())/360)
	putFloat32(buf[20:], float32(base.S())/100)
	putFloat32(buf[24:], float32(base.V())/100)
	putFloat32(buf[28:], 0)
	return buf
}

// quadVertices returns the full-screen quad as two triangles in NDC,
// packed as float32x2 positions.
func quadVertices() []byte {
	verts := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	buf := make([]byte, len(verts)*4)
	for i, v := range verts {
		putFloat32(buf[i*4:], v)
	}
	return buf
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
