package picker

import "github.com/lifer0se/waycolor"

// Theme is the picker's dark palette. Hosts map it onto their widget
// styling; the core only uses it for the frame the demo composes.
type Theme struct {
	Fg         waycolor.Color
	Bg         waycolor.Color
	BgDark     waycolor.Color
	BgLight    waycolor.Color
	BgSelected waycolor.Color
	FgSelected waycolor.Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Fg:         waycolor.FromRGB(214, 216, 220),
		Bg:         waycolor.FromRGB(41, 45, 59),
		BgDark:     waycolor.FromRGB(30, 33, 43),
		BgLight:    waycolor.FromRGB(56, 60, 74),
		BgSelected: waycolor.FromRGB(68, 72, 85),
		FgSelected: waycolor.FromRGB(128, 132, 145),
	}
}
