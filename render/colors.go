package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-arcade/blocks"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHintText   = tcell.NewRGBColor(140, 140, 140) // Dim gray

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbFood      = tcell.NewRGBColor(255, 80, 80) // Normal Red

	RgbScore    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbGameOver = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbPausedBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGhost    = tcell.NewRGBColor(90, 90, 110)   // Muted slate
	RgbMeterOff = tcell.NewRGBColor(40, 40, 40)    // Unfilled meter
	RgbPanelKey = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// piecePalette is indexed by blocks.Color minus one
var piecePalette = [...]tcell.Color{
	tcell.NewRGBColor(0, 200, 200),   // cyan
	tcell.NewRGBColor(255, 215, 0),   // yellow
	tcell.NewRGBColor(160, 32, 240),  // purple
	tcell.NewRGBColor(0, 200, 0),     // green
	tcell.NewRGBColor(255, 80, 80),   // red
	tcell.NewRGBColor(100, 150, 255), // blue
	tcell.NewRGBColor(255, 165, 0),   // orange
}

// PieceColor maps a board color tag to a terminal color. Tags beyond the
// palette wrap around; Empty maps to the background.
func PieceColor(c blocks.Color) tcell.Color {
	if c == blocks.Empty {
		return RgbBackground
	}
	return piecePalette[(int(c)-1)%len(piecePalette)]
}

// GetSpeedMeterColor returns the color for a given position in the speed meter gradient
// progress is 0.0 to 1.0, representing position from start to end
func GetSpeedMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbMeterOff
	}
	if progress > 1.0 {
		progress = 1.0
	}

	// Green → yellow → orange → red
	if progress < 0.333 {
		t := progress / 0.333
		r := int32(34 + (255-34)*t)
		g := int32(139 + (215-139)*t)
		b := int32(34 - 34*t)
		return tcell.NewRGBColor(r, g, b)
	} else if progress < 0.667 {
		t := (progress - 0.333) / 0.334
		r := int32(255)
		g := int32(215 - (215-69)*t)
		return tcell.NewRGBColor(r, g, 0)
	}
	t := (progress - 0.667) / 0.333
	r := int32(255 - (255-139)*t)
	g := int32(69 - 69*t)
	return tcell.NewRGBColor(r, g, 0)
}
