// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lifer0se/waycolor"
)

// Sentinel errors returned by Renderer implementations. Callers match
// them with errors.Is; the returned errors carry the surface kind in
// their message.
var (
	// ErrUnknownKind reports a Kind outside the seven known surfaces.
	ErrUnknownKind = errors.New("unknown gradient kind")

	// ErrAcquired reports a Create for a surface whose handle is still
	// outstanding. Each surface has exactly one handle at a time.
	ErrAcquired = errors.New("surface already acquired")

	// ErrReleased reports a Paint or Destroy through a handle that was
	// never acquired or has already been destroyed.
	ErrReleased = errors.New("surface not acquired")

	// ErrClosed reports any operation on a closed renderer.
	ErrClosed = errors.New("renderer closed")
)

// Handle is an acquired gradient surface. It is returned by
// Renderer.Create and stays valid until passed to Renderer.Destroy.
// The zero Handle is invalid.
type Handle struct {
	kind  waycolor.Kind
	valid bool
}

// Kind returns the surface this handle was acquired for.
func (h Handle) Kind() waycolor.Kind { return h.kind }

// Renderer paints gradient surfaces into pixmaps.
//
// A renderer owns one drawing resource per surface kind, created up
// front. Create hands out the surface's handle, Paint fills a pixmap
// with the surface's gradient field for a base color, and Destroy
// returns the handle. Acquire and release are strictly paired: a second
// Create without an intervening Destroy fails with ErrAcquired, and a
// second Destroy fails with ErrReleased.
//
// Two implementations exist: Software evaluates the gradient fields on
// the CPU, and the gpu package provides a WebGPU-backed renderer with
// identical output.
//
// Handle accounting is synchronized, but concurrent Paint calls on the
// same renderer require external synchronization.
type Renderer interface {
	// Create acquires the surface for kind and returns its handle.
	Create(kind waycolor.Kind) (Handle, error)

	// Paint fills dst with the surface's gradient field evaluated for
	// base. The whole pixmap is overwritten at full opacity.
	Paint(h Handle, dst *waycolor.Pixmap, base waycolor.Color) error

	// Destroy releases the handle. The surface can be acquired again
	// afterwards.
	Destroy(h Handle) error

	// Close releases every outstanding handle and the renderer's
	// drawing resources. Close is idempotent; all later operations
	// fail with ErrClosed.
	Close() error
}

// numSurfaces bounds the acquisition table.
const numSurfaces = int(waycolor.SliderV) + 1

// HandleTable tracks which surfaces are currently acquired. It is the
// shared acquire/release bookkeeping for Renderer implementations; the
// Software renderer and the gpu package both build on it. Most callers
// never use it directly.
//
// The zero HandleTable is ready to use.
type HandleTable struct {
	mu       sync.Mutex
	acquired [numSurfaces]bool
	closed   bool
}

// Acquire marks kind as held and returns its handle.
func (t *HandleTable) Acquire(kind waycolor.Kind) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return Handle{}, fmt.Errorf("create %v: %w", kind, ErrClosed)
	}
	if !kind.Valid() {
		return Handle{}, fmt.Errorf("create kind %d: %w", kind, ErrUnknownKind)
	}
	if t.acquired[kind] {
		return Handle{}, fmt.Errorf("create %v: %w", kind, ErrAcquired)
	}
	t.acquired[kind] = true
	return Handle{kind: kind, valid: true}, nil
}

// Lookup verifies that h is currently acquired.
func (t *HandleTable) Lookup(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("paint %v: %w", h.kind, ErrClosed)
	}
	if !h.valid || !t.acquired[h.kind] {
		return fmt.Errorf("paint %v: %w", h.kind, ErrReleased)
	}
	return nil
}

// Release returns h to the table.
func (t *HandleTable) Release(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("destroy %v: %w", h.kind, ErrClosed)
	}
	if !h.valid || !t.acquired[h.kind] {
		return fmt.Errorf("destroy %v: %w", h.kind, ErrReleased)
	}
	t.acquired[h.kind] = false
	return nil
}

// Close marks the table closed and returns the kinds that were still
// acquired. Calling Close again returns nil.
func (t *HandleTable) Close() []waycolor.Kind {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var leaked []waycolor.Kind
	for i, held := range t.acquired {
		if held {
			leaked = append(leaked, waycolor.Kind(i))
			t.acquired[i] = false
		}
	}
	return leaked
}
