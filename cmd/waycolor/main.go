// Command waycolor renders the color picker's gradient surfaces for a
// color and prints its value readouts.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/lifer0se/waycolor"
	"github.com/lifer0se/waycolor/picker"
	"github.com/lifer0se/waycolor/render"
)

func main() {
	var (
		hex     = flag.String("color", "", "starting color as #RRGGBB (default the session color)")
		output  = flag.String("output", "waycolor.png", "output file")
		useGPU  = flag.Bool("gpu", false, "render on the GPU")
		pick    = flag.Bool("pick", false, "take the starting color from the screen picker utility")
		verbose = flag.Bool("verbose", false, "log renderer diagnostics")
	)
	flag.Parse()

	if *verbose {
		waycolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := picker.New(picker.WithColor(startColor(*hex, *pick)))

	r, err := newRenderer(*useGPU)
	if err != nil {
		log.Fatalf("Failed to start renderer: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Close renderer: %v", err)
		}
	}()

	frame, err := composeFrame(r, p)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	printReadouts(os.Stdout, p.Color())
	log.Printf("Frame saved to %s (%dx%d)\n", *output, frame.Width(), frame.Height())
}

// startColor resolves the session's starting color from the flags.
func startColor(hex string, pick bool) waycolor.Color {
	if pick {
		c, err := picker.PickScreenColor(context.Background())
		if err != nil {
			log.Fatalf("Failed to pick a screen color: %v", err)
		}
		return c
	}
	if hex == "" {
		return picker.DefaultColor()
	}
	c, ok := waycolor.FromHex(hex)
	if !ok {
		log.Fatalf("Invalid -color %q: want #RRGGBB", hex)
	}
	return c
}

// newRenderer picks the drawing backend.
func newRenderer(useGPU bool) (render.Renderer, error) {
	if useGPU {
		return newGPURenderer()
	}
	return render.NewSoftware(), nil
}

// composeFrame paints every gradient surface into one window frame and
// overlays the selection handles.
func composeFrame(r render.Renderer, p *picker.Picker) (*waycolor.Pixmap, error) {
	layout := p.Layout()
	theme := picker.DefaultTheme()
	c := p.Color()

	bounds := layout.Bounds()
	frame := waycolor.NewPixmap(int(bounds.W()), int(bounds.H()))
	frame.Clear(theme.Bg)

	for _, kind := range waycolor.Kinds {
		rect := layout.SurfaceRect(kind)
		if err := paintSurface(r, kind, rect, c, frame); err != nil {
			return nil, err
		}
		outline := waycolor.Rect{
			Min: rect.Min.Add(waycolor.Pt(-1, -1)),
			Max: rect.Max.Add(waycolor.Pt(1, 1)),
		}
		render.DrawBorder(frame, outline, 1, waycolor.FromRGB(0, 0, 0))
	}

	// Handles draw over the finished surfaces.
	plane := layout.PlaneRect()
	render.DrawHandle(frame, picker.PlaneHandlePos(c, plane),
		layout.MainHandleRadius, layout.MainHandleStroke, c, c.Complementary())
	for _, ch := range waycolor.Channels {
		fill := picker.SliderHandleColor(c, ch)
		render.DrawHandle(frame, picker.SliderHandlePos(c, ch, layout.SliderRect(ch)),
			layout.SliderHandleRadius(), layout.SliderHandleStroke, fill, fill.Complementary())
	}
	return frame, nil
}

// paintSurface renders one gradient into its rectangle on the frame.
func paintSurface(r render.Renderer, kind waycolor.Kind, rect waycolor.Rect, base waycolor.Color, frame *waycolor.Pixmap) error {
	h, err := r.Create(kind)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Destroy(h); err != nil {
			log.Printf("Destroy %v: %v", kind, err)
		}
	}()

	surf := waycolor.NewPixmap(int(rect.W()), int(rect.H()))
	if err := r.Paint(h, surf, base); err != nil {
		return err
	}

	src := surf.Image()
	xdraw.Copy(frame.Image(), image.Pt(int(rect.Min.X), int(rect.Min.Y)), src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// printReadouts writes the value rows for c: each representation as
// integers and as two-decimal fractions of the channel ranges.
func printReadouts(w io.Writer, c waycolor.Color) {
	rn, gn, bn := c.RGBNormalized()
	fmt.Fprintf(w, "Hex:  %s\n", c.Hex())
	fmt.Fprintf(w, "RGB:  %d, %d, %d  (%.2f, %.2f, %.2f)\n", c.R(), c.G(), c.B(), rn, gn, bn)
	fmt.Fprintf(w, "HSV:  %d, %d, %d  (%.2f, %.2f, %.2f)\n", c.H(), c.S(), c.V(),
		c.Normalized(waycolor.ChannelH), c.Normalized(waycolor.ChannelS), c.Normalized(waycolor.ChannelV))
	h, s, l := c.HSL()
	fmt.Fprintf(w, "HSL:  %d, %d, %d  (%.2f, %.2f, %.2f)\n",
		h, s, l, float64(h)/360, float64(s)/100, float64(l)/100)
	cy, m, y, k := c.CMYK()
	fmt.Fprintf(w, "CMYK: %d, %d, %d, %d  (%.2f, %.2f, %.2f, %.2f)\n",
		cy, m, y, k, float64(cy)/100, float64(m)/100, float64(y)/100, float64(k)/100)
}
