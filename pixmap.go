package waycolor

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer in 8-bit RGBA order.
// It is the destination surface gradient renderers paint into.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Row returns the raw bytes of scanline y as a subslice of the pixel
// data. Writes through it modify the pixmap.
func (p *Pixmap) Row(y int) []uint8 {
	i := y * p.width * 4
	return p.data[i : i+p.width*4]
}

// Set writes raw RGBA bytes to a single pixel. Out-of-bounds
// coordinates are ignored.
func (p *Pixmap) Set(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// SetColor sets a single pixel to c at full opacity.
func (p *Pixmap) SetColor(x, y int, c Color) {
	p.Set(x, y, uint8(c.R()), uint8(c.G()), uint8(c.B()), 0xFF)
}

// RGBAAt returns the raw RGBA bytes of a single pixel. Out-of-bounds
// coordinates read as transparent black.
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// ColorAt returns the pixel at (x, y) as a Color, dropping alpha.
func (p *Pixmap) ColorAt(x, y int) Color {
	r, g, b, _ := p.RGBAAt(x, y)
	return FromRGB(int(r), int(g), int(b))
}

// Clear fills the entire pixmap with c at full opacity.
func (p *Pixmap) Clear(c Color) {
	r, g, b := uint8(c.R()), uint8(c.G()), uint8(c.B())
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 0xFF
	}
}

// Image returns an image.RGBA view sharing the pixmap's storage.
// Drawing into the view modifies the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to a freshly allocated image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.Image())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.RGBAAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
