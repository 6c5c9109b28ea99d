package picker

import "github.com/lifer0se/waycolor"

// Layout describes the picker window geometry: the plane at the top,
// six slider rows stacked under it in channel order, and the handle
// sizes. All distances are pixels.
//
// Each gradient sits inside a frame margin; the slider block adds its
// own inner margin, and a slider row reserves a label column on the
// left and a text entry column on the right.
type Layout struct {
	PlaneWidth  float64
	PlaneHeight float64

	SliderHeight float64
	SliderMargin float64

	Spacing     float64
	PanelMargin float64
	FrameMargin float64
	LabelWidth  float64
	TextWidth   float64

	MainHandleRadius   float64
	MainHandleStroke   float64
	SliderHandleStroke float64
}

// DefaultLayout returns the fixed picker geometry: a 380x270 plane
// with 20-pixel slider tracks.
func DefaultLayout() Layout {
	return Layout{
		PlaneWidth:         380,
		PlaneHeight:        270,
		SliderHeight:       20,
		SliderMargin:       12,
		Spacing:            5,
		PanelMargin:        8,
		FrameMargin:        10,
		LabelWidth:         5,
		TextWidth:          50,
		MainHandleRadius:   13,
		MainHandleStroke:   2.5,
		SliderHandleStroke: 2,
	}
}

// PlaneRect returns the saturation/value plane rectangle.
func (l Layout) PlaneRect() waycolor.Rect {
	inset := l.PanelMargin + l.FrameMargin
	return waycolor.RectXYWH(inset, inset, l.PlaneWidth, l.PlaneHeight)
}

// SliderTrackWidth returns the width of a slider's gradient surface:
// the plane width minus the block margins, the label and text columns,
// and the spacing between them.
func (l Layout) SliderTrackWidth() float64 {
	return l.PlaneWidth - 2*l.SliderMargin - 2*l.Spacing - l.LabelWidth - l.TextWidth
}

// SliderRect returns the gradient surface rectangle for ch's slider.
// Rows stack under the plane in channel order.
func (l Layout) SliderRect(ch waycolor.Channel) waycolor.Rect {
	x := l.PanelMargin + l.SliderMargin + l.LabelWidth + l.Spacing + l.FrameMargin
	top := l.PanelMargin + 2*l.FrameMargin + l.PlaneHeight + l.SliderMargin
	pitch := l.SliderHeight + 2*l.FrameMargin
	y := top + float64(ch)*pitch + l.FrameMargin
	return waycolor.RectXYWH(x, y, l.SliderTrackWidth(), l.SliderHeight)
}

// SurfaceRect returns the rectangle for any gradient surface.
func (l Layout) SurfaceRect(k waycolor.Kind) waycolor.Rect {
	if ch, ok := k.Channel(); ok {
		return l.SliderRect(ch)
	}
	return l.PlaneRect()
}

// SliderHandleRadius returns the radius of a slider handle: it fills
// the track height minus the stroke.
func (l Layout) SliderHandleRadius() float64 {
	return (l.SliderHeight - l.SliderHandleStroke) / 2
}

// Bounds returns the full frame enclosing the plane, every slider row,
// and the outer margins, anchored at the origin.
func (l Layout) Bounds() waycolor.Rect {
	w := l.PlaneWidth + 2*l.FrameMargin + 2*l.PanelMargin
	h := l.PanelMargin + 2*l.FrameMargin + l.PlaneHeight + l.SliderMargin
	h += float64(len(waycolor.Channels)) * (l.SliderHeight + 2*l.FrameMargin)
	h += l.SliderMargin + l.PanelMargin
	return waycolor.RectXYWH(0, 0, w, h)
}

// PlaneHandlePos returns where the selection handle sits on the plane
// for color c: saturation maps across, value maps up from the bottom
// edge. This is the inverse of the plane drag mapping.
func PlaneHandlePos(c waycolor.Color, rect waycolor.Rect) waycolor.Point {
	return waycolor.Pt(
		rect.Min.X+rect.W()*c.Normalized(waycolor.ChannelS),
		rect.Min.Y+rect.H()-rect.H()*c.Normalized(waycolor.ChannelV),
	)
}

// SliderHandlePos returns where the handle sits on ch's slider: the
// channel's normalized value across, vertically centered.
func SliderHandlePos(c waycolor.Color, ch waycolor.Channel, rect waycolor.Rect) waycolor.Point {
	return waycolor.Pt(rect.Min.X+rect.W()*c.Normalized(ch), rect.Min.Y+rect.H()/2)
}

// SliderHandleColor returns the fill for ch's slider handle. The hue
// slider shows the pure hue at full saturation and value; every other
// slider shows the current color. Rings use the fill's Complementary.
func SliderHandleColor(c waycolor.Color, ch waycolor.Channel) waycolor.Color {
	if ch == waycolor.ChannelH {
		return waycolor.FromHSV(c.H(), 100, 100)
	}
	return c
}
