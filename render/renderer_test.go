// Copyright 2026 The waycolor Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/lifer0se/waycolor"
)

func TestHandleLifecycle(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	h, err := r.Create(waycolor.MainPlane)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if h.Kind() != waycolor.MainPlane {
		t.Errorf("Kind() = %v, want %v", h.Kind(), waycolor.MainPlane)
	}

	pm := waycolor.NewPixmap(8, 8)
	if err := r.Paint(h, pm, waycolor.FromRGB(255, 0, 0)); err != nil {
		t.Errorf("Paint() = %v", err)
	}
	if err := r.Destroy(h); err != nil {
		t.Errorf("Destroy() = %v", err)
	}
}

func TestCreateTwiceFails(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	if _, err := r.Create(waycolor.SliderH); err != nil {
		t.Fatalf("first Create() = %v", err)
	}
	_, err := r.Create(waycolor.SliderH)
	if !errors.Is(err, ErrAcquired) {
		t.Errorf("second Create() = %v, want ErrAcquired", err)
	}
}

func TestCreateUnknownKind(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	_, err := r.Create(waycolor.Kind(42))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Create(42) = %v, want ErrUnknownKind", err)
	}
}

func TestDestroyTwiceFails(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	h, err := r.Create(waycolor.SliderS)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if err := r.Destroy(h); err != nil {
		t.Fatalf("first Destroy() = %v", err)
	}
	if err := r.Destroy(h); !errors.Is(err, ErrReleased) {
		t.Errorf("second Destroy() = %v, want ErrReleased", err)
	}
}

func TestZeroHandleRejected(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	var h Handle
	if err := r.Destroy(h); !errors.Is(err, ErrReleased) {
		t.Errorf("Destroy(zero) = %v, want ErrReleased", err)
	}
	if err := r.Paint(h, waycolor.NewPixmap(1, 1), waycolor.Color{}); !errors.Is(err, ErrReleased) {
		t.Errorf("Paint(zero) = %v, want ErrReleased", err)
	}
}

func TestPaintAfterDestroyFails(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	h, _ := r.Create(waycolor.SliderR)
	if err := r.Destroy(h); err != nil {
		t.Fatalf("Destroy() = %v", err)
	}
	err := r.Paint(h, waycolor.NewPixmap(4, 4), waycolor.Color{})
	if !errors.Is(err, ErrReleased) {
		t.Errorf("Paint() after Destroy = %v, want ErrReleased", err)
	}
}

func TestReacquireAfterRelease(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	h, _ := r.Create(waycolor.SliderV)
	if err := r.Destroy(h); err != nil {
		t.Fatalf("Destroy() = %v", err)
	}
	if _, err := r.Create(waycolor.SliderV); err != nil {
		t.Errorf("Create() after release = %v", err)
	}
}

func TestAllKindsAcquirable(t *testing.T) {
	r := NewSoftware()
	defer r.Close()

	handles := make([]Handle, 0, len(waycolor.Kinds))
	for _, k := range waycolor.Kinds {
		h, err := r.Create(k)
		if err != nil {
			t.Fatalf("Create(%v) = %v", k, err)
		}
		handles = append(handles, h)
	}
	for _, h := range handles {
		if err := r.Destroy(h); err != nil {
			t.Errorf("Destroy(%v) = %v", h.Kind(), err)
		}
	}
}

func TestClosedRendererRejectsAll(t *testing.T) {
	r := NewSoftware()
	h, _ := r.Create(waycolor.MainPlane)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	if _, err := r.Create(waycolor.SliderR); !errors.Is(err, ErrClosed) {
		t.Errorf("Create() after Close = %v, want ErrClosed", err)
	}
	if err := r.Paint(h, waycolor.NewPixmap(4, 4), waycolor.Color{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Paint() after Close = %v, want ErrClosed", err)
	}
	if err := r.Destroy(h); !errors.Is(err, ErrClosed) {
		t.Errorf("Destroy() after Close = %v, want ErrClosed", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	r := NewSoftware()
	if err := r.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
