package theme

import (
	"image/color"
)

// Theme defines the colors used to render the sketch window.
type Theme struct {
	Name string

	// Background is the clear color painted behind the shape each frame.
	Background color.RGBA
	// Fill is the solid brush color used for the ellipse.
	Fill color.RGBA
}

// Default returns the hardcoded default theme: a blanched-almond background
// with a red fill.
func Default() *Theme {
	return &Theme{
		Name:       "Default",
		Background: color.RGBA{255, 235, 205, 255},
		Fill:       color.RGBA{255, 0, 0, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:       "Dark",
		Background: color.RGBA{32, 32, 32, 255},
		Fill:       color.RGBA{255, 80, 80, 255},
	}
}

// Lookup resolves a built-in theme by name, falling back to Default for an
// empty or unknown name.
func Lookup(name string) *Theme {
	switch name {
	case "dark":
		return Dark()
	default:
		return Default()
	}
}
