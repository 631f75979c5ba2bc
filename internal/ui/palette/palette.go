package palette

import (
	"image/color"

	"meetingkeeper/internal/core/timekeeper"
)

var (
	Background = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	Panel      = color.NRGBA{R: 30, G: 41, B: 59, A: 255}
	Track      = color.NRGBA{R: 51, G: 65, B: 85, A: 255}
	Text       = color.NRGBA{R: 226, G: 232, B: 240, A: 255}
)

// Fill returns the progress bar color for a token.
func Fill(token timekeeper.Color) color.NRGBA {
	switch token {
	case timekeeper.ColorSky:
		return color.NRGBA{R: 14, G: 165, B: 233, A: 255}
	case timekeeper.ColorGreen:
		return color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	case timekeeper.ColorYellow:
		return color.NRGBA{R: 234, G: 179, B: 8, A: 255}
	case timekeeper.ColorOrange:
		return color.NRGBA{R: 249, G: 115, B: 22, A: 255}
	case timekeeper.ColorRed:
		return color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	default:
		return Track
	}
}

// Readout returns the lighter text color used for the remaining-time readout.
func Readout(token timekeeper.Color) color.NRGBA {
	switch token {
	case timekeeper.ColorRed:
		return color.NRGBA{R: 248, G: 113, B: 113, A: 255}
	case timekeeper.ColorYellow:
		return color.NRGBA{R: 250, G: 204, B: 21, A: 255}
	case timekeeper.ColorSky:
		return color.NRGBA{R: 56, G: 189, B: 248, A: 255}
	default:
		return Text
	}
}
