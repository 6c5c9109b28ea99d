package waycolor

// Channel identifies one scalar component of a color: the RGB bytes or the
// HSV terms. It is a closed enum; every switch over Channel in this module
// handles all six values.
type Channel uint8

const (
	// ChannelR is the red component, 0..255.
	ChannelR Channel = iota
	// ChannelG is the green component, 0..255.
	ChannelG
	// ChannelB is the blue component, 0..255.
	ChannelB
	// ChannelH is the hue in degrees, 0..360.
	ChannelH
	// ChannelS is the saturation percentage, 0..100.
	ChannelS
	// ChannelV is the value (brightness) percentage, 0..100.
	ChannelV

	numChannels = 6
)

// Channels lists all channels in display order (r, g, b, h, s, v).
// The slice is shared; callers must not modify it.
var Channels = []Channel{ChannelR, ChannelG, ChannelB, ChannelH, ChannelS, ChannelV}

// Max returns the upper bound of the channel's integer range.
// The lower bound is always 0.
func (ch Channel) Max() int {
	switch ch {
	case ChannelR, ChannelG, ChannelB:
		return 255
	case ChannelH:
		return 360
	case ChannelS, ChannelV:
		return 100
	}
	return 0
}

// IsRGB reports whether the channel belongs to the RGB representation.
func (ch Channel) IsRGB() bool {
	return ch == ChannelR || ch == ChannelG || ch == ChannelB
}

// String returns the channel's single-letter name.
func (ch Channel) String() string {
	switch ch {
	case ChannelR:
		return "r"
	case ChannelG:
		return "g"
	case ChannelB:
		return "b"
	case ChannelH:
		return "h"
	case ChannelS:
		return "s"
	case ChannelV:
		return "v"
	}
	return "?"
}

// clampChannel restricts value to the channel's valid range.
func clampChannel(ch Channel, value int) int {
	if value < 0 {
		return 0
	}
	if max := ch.Max(); value > max {
		return max
	}
	return value
}
