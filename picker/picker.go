// Package picker implements the interaction core of the color picker:
// the current color, the drag state machine that maps pointer positions
// on gradient surfaces to color changes, scroll ticks, channel and hex
// text entry, and the fixed window layout.
//
// A Picker is owned by the host event loop and is not safe for
// concurrent use.
package picker

import (
	"math"
	"strconv"

	"github.com/lifer0se/waycolor"
)

// numChannelTexts sizes the per-channel text buffer array, indexed by
// waycolor.Channel.
const numChannelTexts = int(waycolor.ChannelV) + 1

// DefaultColor returns the color a fresh session starts with.
func DefaultColor() waycolor.Color {
	return waycolor.FromRGB(22, 22, 33)
}

// Picker owns the current color together with everything the UI edits
// in place: six channel text buffers, the hex text buffer, and the
// active drag. Every successful mutation funnels through SetColor, so
// after any event the buffers reflect the current color; the one
// exception is a hex string mid-edit, which stays in its buffer until
// it parses.
type Picker struct {
	color waycolor.Color
	texts [numChannelTexts]string
	hex   string

	drag     dragState
	layout   Layout
	onChange func(waycolor.Color)
}

// dragState is the single active drag target. At most one surface
// drags at a time; the rect recorded at pointer-down clamps every
// later position for the rest of the gesture.
type dragState struct {
	active bool
	target waycolor.Kind
	rect   waycolor.Rect
}

// New creates a Picker with the default color and layout, then applies
// opts.
func New(opts ...Option) *Picker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Picker{layout: o.layout}
	// Seed the buffers before the callback attaches; the starting
	// color is not a mutation.
	p.SetColor(o.color)
	p.onChange = o.onChange
	return p
}

// Color returns the current color.
func (p *Picker) Color() waycolor.Color { return p.color }

// Layout returns the session's window geometry.
func (p *Picker) Layout() Layout { return p.layout }

// HexText returns the hex buffer: the canonical encoding of the
// current color, or the text of an unfinished hex edit.
func (p *Picker) HexText() string { return p.hex }

// ChannelText returns ch's text buffer.
func (p *Picker) ChannelText(ch waycolor.Channel) string {
	return p.texts[ch]
}

// SetColor stores c and resynchronizes every text buffer: the hex
// buffer becomes c.Hex() and each channel buffer its channel's integer
// value. The change callback, if any, fires last. All accepted
// mutations funnel through here.
func (p *Picker) SetColor(c waycolor.Color) {
	p.color = c
	p.hex = c.Hex()
	for _, ch := range waycolor.Channels {
		p.texts[ch] = strconv.Itoa(c.Value(ch))
	}
	if p.onChange != nil {
		p.onChange(c)
	}
}

// PointerDown begins a drag on kind when pos lies inside rect and
// applies the position immediately. It reports whether a drag started.
// A down event outside the rect, on a degenerate rect, or while
// another drag is active does nothing.
func (p *Picker) PointerDown(kind waycolor.Kind, pos waycolor.Point, rect waycolor.Rect) bool {
	if p.drag.active || !kind.Valid() {
		return false
	}
	if rect.W() <= 0 || rect.H() <= 0 || !rect.Contains(pos) {
		return false
	}
	p.drag = dragState{active: true, target: kind, rect: rect}
	p.applyDrag(pos)
	return true
}

// PointerMove recomputes the color from pos while a drag is active.
// The position is clamped to the drag's rect, so moves outside keep
// tracking along the edge. Moves while idle are ignored; the return
// reports whether the event was consumed.
func (p *Picker) PointerMove(pos waycolor.Point) bool {
	if !p.drag.active {
		return false
	}
	p.applyDrag(pos)
	return true
}

// PointerUp ends the drag regardless of position. Safe to call while
// idle.
func (p *Picker) PointerUp() {
	p.drag = dragState{}
}

// Dragging returns the surface currently being dragged, if any.
func (p *Picker) Dragging() (waycolor.Kind, bool) {
	return p.drag.target, p.drag.active
}

// applyDrag maps the clamped pointer position to a color mutation for
// the drag target.
func (p *Picker) applyDrag(pos waycolor.Point) {
	rect := p.drag.rect
	pos = rect.Clamp(pos)
	u := (pos.X - rect.Min.X) / rect.W()

	if ch, ok := p.drag.target.Channel(); ok {
		p.SetColor(p.color.WithChannel(ch, round(u*float64(ch.Max()))))
		return
	}
	// Plane: saturation across, value up from the bottom edge, hue
	// held.
	v := 1 - (pos.Y-rect.Min.Y)/rect.H()
	p.SetColor(waycolor.FromHSV(p.color.H(), round(u*100), round(v*100)))
}

// Scroll applies one wheel tick to a slider: the swept channel moves
// one unit in the delta's direction and clamps to its range, so the
// hue stops at 360 rather than wrapping. The plane ignores scroll, as
// does a zero delta. The caller routes the tick to the surface under
// the pointer.
func (p *Picker) Scroll(kind waycolor.Kind, delta float64) bool {
	ch, ok := kind.Channel()
	if !ok || delta == 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	p.SetColor(p.color.WithChannel(ch, p.color.Value(ch)+step))
	return true
}

// SetChannelText commits a channel text edit. The text parses as a
// floating point number taken as an absolute channel value, rounded
// and clamped to the channel's range. Unparsable text leaves the color
// alone and rewrites the buffer from the current value.
func (p *Picker) SetChannelText(ch waycolor.Channel, text string) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) {
		p.SetColor(p.color)
		return
	}
	// Clamp in float space so an overflowing input converts cleanly.
	max := float64(ch.Max())
	f = math.Round(math.Min(math.Max(f, 0), max))
	p.SetColor(p.color.WithChannel(ch, int(f)))
}

// SetHexText commits a hex text edit. A strict #RRGGBB string becomes
// the new color and the buffer is rewritten to the canonical form;
// anything else keeps the color and leaves the typed text in place for
// further editing.
func (p *Picker) SetHexText(text string) {
	p.hex = text
	if c, ok := waycolor.FromHex(text); ok {
		p.SetColor(c)
	}
}

// round converts to the nearest integer. Channel math rounds rather
// than truncates throughout.
func round(f float64) int {
	return int(math.Round(f))
}
