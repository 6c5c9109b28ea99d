//go:build !nogpu

package gpu

import (
	"testing"

	"github.com/lifer0se/waycolor"
	"github.com/lifer0se/waycolor/render"
)

// goldenTolerance is the maximum accepted per-byte delta between the
// GPU and software renderings. The GPU evaluates the fields in float32
// with unorm rounding on store; the software path uses float64.
const goldenTolerance = 2

// TestArenaMatchesSoftware renders every surface on the GPU and on the
// CPU and compares the pixels. Skipped when no GPU is available.
func TestArenaMatchesSoftware(t *testing.T) {
	arena, err := NewArena()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}
	defer arena.Close()

	sw := render.NewSoftware()
	defer sw.Close()

	bases := []waycolor.Color{
		waycolor.FromRGB(30, 144, 255),
		waycolor.FromRGB(22, 22, 33),
		// Achromatic base: the plane keeps the stored hue while the s/v
		// sliders rederive their terms from the gray rgb.
		waycolor.FromHSV(300, 0, 75),
	}

	const w, h = 96, 64
	for _, base := range bases {
		for _, kind := range waycolor.Kinds {
			t.Run(base.Hex()+"/"+kind.String(), func(t *testing.T) {
				gpuPM := waycolor.NewPixmap(w, h)
				if err := arena.Paint(kind, gpuPM, base); err != nil {
					t.Fatalf("GPU paint failed: %v", err)
				}

				cpuPM := waycolor.NewPixmap(w, h)
				handle, err := sw.Create(kind)
				if err != nil {
					t.Fatal(err)
				}
				if err := sw.Paint(handle, cpuPM, base); err != nil {
					t.Fatal(err)
				}
				if err := sw.Destroy(handle); err != nil {
					t.Fatal(err)
				}

				gd, cd := gpuPM.Data(), cpuPM.Data()
				bad := 0
				for i := range gd {
					d := int(gd[i]) - int(cd[i])
					if d < 0 {
						d = -d
					}
					if d > goldenTolerance {
						bad++
					}
				}
				t.Logf("%v: %d of %d bytes beyond tolerance %d", kind, bad, len(gd), goldenTolerance)
				if bad > 0 {
					t.Errorf("%v: GPU and software disagree on %d bytes", kind, bad)
				}
			})
		}
	}
}

// TestArenaResize paints the same surface at two sizes, forcing the
// offscreen target to be reallocated, including a width whose row
// pitch needs copy alignment padding.
func TestArenaResize(t *testing.T) {
	arena, err := NewArena()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}
	defer arena.Close()

	base := waycolor.FromRGB(200, 40, 90)
	for _, size := range [][2]int{{64, 64}, {33, 17}, {128, 16}} {
		pm := waycolor.NewPixmap(size[0], size[1])
		if err := arena.Paint(waycolor.SliderH, pm, base); err != nil {
			t.Fatalf("paint %dx%d: %v", size[0], size[1], err)
		}
		// Left edge of the hue sweep is red regardless of base.
		r, _, b, a := pm.RGBAAt(0, 0)
		if r < 250 || b > 5 || a != 255 {
			t.Errorf("%dx%d: left edge = (%d, _, %d, %d), want red", size[0], size[1], r, b, a)
		}
	}
}

func TestArenaLifecycle(t *testing.T) {
	arena, err := NewArena()
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}

	pm := waycolor.NewPixmap(8, 8)
	if err := arena.Paint(waycolor.Kind(42), pm, waycolor.Color{}); err == nil {
		t.Error("expected error for unknown kind")
	}

	arena.Close()
	arena.Close() // idempotent

	if err := arena.Paint(waycolor.MainPlane, pm, waycolor.Color{}); err == nil {
		t.Error("expected error painting after close")
	}
}
