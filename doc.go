// Package waycolor provides the color model and gradient engine behind an
// interactive color picker.
//
// # Overview
//
// waycolor keeps one immutable Color value consistent across RGB, HSV, HSL,
// CMYK, and hex representations, and defines the procedural gradient fields
// (a saturation/value plane and per-channel sliders) a picker renders and
// the user drags on. The package is UI-toolkit agnostic: a host feeds it
// pointer, scroll, and text events and receives updated Color values and
// rendered frames.
//
// # Quick Start
//
//	import "github.com/lifer0se/waycolor"
//
//	// Construct colors; every representation stays in sync.
//	c := waycolor.FromRGB(22, 22, 33)
//	fmt.Println(c.Hex())            // "#161621"
//	fmt.Println(c.Value(waycolor.ChannelH)) // hue in degrees
//
//	// Evaluate the saturation/value plane at its top-right corner.
//	r, g, b := waycolor.PlaneColorAt(c, 1, 1)
//
// # Architecture
//
// The module is organized into:
//   - Root package: Color, Channel, Kind, the gradient field functions,
//     and the Pixmap render target
//   - render: the Renderer interface, the software renderer, and the
//     handle-marker overlay
//   - gpu: opt-in GPU renderer backed by wgpu (one pipeline per gradient)
//   - picker: drag state machine, scroll and text entry, and the SetColor
//     choke point that keeps all displayed representations in sync
//
// # Coordinate System
//
// Gradient surfaces use normalized coordinates: u (or t) increases
// left to right, v equals 1 at the TOP edge of the plane so that value
// darkens top to bottom, matching screen layout.
package waycolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
