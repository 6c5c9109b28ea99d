//go:build !nogpu

package gpu

import (
	"errors"
	"testing"

	"github.com/lifer0se/waycolor"
	"github.com/lifer0se/waycolor/render"
)

func TestNewRendererOnRejectsNilHandle(t *testing.T) {
	if _, err := NewRendererOn(nil); err == nil {
		t.Error("expected error for nil device handle")
	}
}

func TestNewRendererOnRejectsNullHandle(t *testing.T) {
	if _, err := NewRendererOn(render.NullDeviceHandle{}); err == nil {
		t.Error("expected error for null device handle")
	}
}

// TestRendererHandleDiscipline exercises the acquire/release pairing
// on a real GPU renderer. Skipped when no GPU is available.
func TestRendererHandleDiscipline(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}
	defer r.Close()

	h, err := r.Create(waycolor.MainPlane)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := r.Create(waycolor.MainPlane); !errors.Is(err, render.ErrAcquired) {
		t.Errorf("second Create = %v, want ErrAcquired", err)
	}

	pm := waycolor.NewPixmap(32, 24)
	if err := r.Paint(h, pm, waycolor.FromRGB(255, 0, 0)); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if _, _, _, a := pm.RGBAAt(5, 5); a != 255 {
		t.Error("painted pixmap is not opaque")
	}

	if err := r.Destroy(h); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := r.Destroy(h); !errors.Is(err, render.ErrReleased) {
		t.Errorf("second Destroy = %v, want ErrReleased", err)
	}
}

// TestRendererCloseIdempotent closes twice and verifies later calls
// fail with ErrClosed.
func TestRendererCloseIdempotent(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}

	if _, err := r.Create(waycolor.SliderS); err != nil {
		t.Fatal(err)
	}

	// Leaked handle is released by Close.
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := r.Create(waycolor.SliderS); !errors.Is(err, render.ErrClosed) {
		t.Errorf("Create after Close = %v, want ErrClosed", err)
	}
}
