//go:build !nogpu

// Package gpu implements the WebGPU gradient surface arena.
//
// This is an internal package; the public entry point is the gpu
// package at the module root, which wraps the arena in the render
// package's Renderer interface. Rendering runs on the gogpu/wgpu Pure
// Go WebGPU implementation (zero CGO) over Vulkan, Metal, or DX12
// depending on the platform.
//
// # Architecture
//
// The arena holds one render pipeline per gradient surface, all built
// at construction from embedded WGSL programs:
//
//	Arena -> surfacePipeline (per kind) -> 4x MSAA pass -> resolve -> readback
//
// Every surface shares a single full-screen quad vertex buffer and the
// same uniform block layout; only the fragment field differs between
// programs. Paint writes the base color into the surface's uniform
// buffer, records one render pass into an offscreen MSAA target,
// resolves, copies the resolved texture into a staging buffer, waits
// on a fence, and converts the BGRA readback into the destination
// pixmap. The offscreen target is reallocated only when the requested
// pixmap size changes.
//
// The fragment programs evaluate the same fields as the software
// renderer in the render package, so the two backends agree within
// rounding error.
//
// # Device Ownership
//
// NewArena creates and owns a GPU instance and device. NewArenaOn
// wraps a device and queue owned by a host application; Close then
// releases the arena's resources but leaves the shared device alone.
package gpu
