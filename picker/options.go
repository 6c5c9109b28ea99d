package picker

import "github.com/lifer0se/waycolor"

// Option configures a Picker during creation.
//
// Example:
//
//	p := picker.New(
//		picker.WithColor(waycolor.FromRGB(30, 144, 255)),
//		picker.WithOnChange(func(c waycolor.Color) { repaint() }),
//	)
type Option func(*options)

// options holds the configurable pieces of a new Picker.
type options struct {
	color    waycolor.Color
	layout   Layout
	onChange func(waycolor.Color)
}

// defaultOptions returns the default session configuration.
func defaultOptions() options {
	return options{
		color:  DefaultColor(),
		layout: DefaultLayout(),
	}
}

// WithColor sets the session's starting color.
func WithColor(c waycolor.Color) Option {
	return func(o *options) { o.color = c }
}

// WithLayout overrides the window geometry.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

// WithOnChange registers fn to run after every pass through SetColor,
// once the text buffers have been rewritten. The starting color does
// not fire it.
func WithOnChange(fn func(waycolor.Color)) Option {
	return func(o *options) { o.onChange = fn }
}
