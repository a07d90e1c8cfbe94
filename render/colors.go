package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for bar roles and the overlay
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCompared   = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbSwapped    = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbWritten    = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbFinal      = tcell.NewRGBColor(0, 200, 0)     // Green sorted fill

	RgbOverlayText  = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayBg    = tcell.NewRGBColor(0, 0, 0)
	RgbOverlayAlert = tcell.NewRGBColor(50, 255, 50)
)

// Gradient endpoints for unhighlighted bars, short to tall
var (
	gradientLow  = colorful.Color{R: 0.55, G: 0.55, B: 0.60}
	gradientHigh = colorful.Color{R: 0.95, G: 0.95, B: 1.00}
)

// BarColor returns the resting color for a bar at progress of the tallest
// progress is 0.0 to 1.0; values outside are clamped
func BarColor(progress float64) tcell.Color {
	progress = min(max(progress, 0), 1)
	c := gradientLow.BlendHcl(gradientHigh, progress).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// RoleColor returns the highlight color for a role, or BarColor(progress) for RoleNormal
func RoleColor(role Role, progress float64) tcell.Color {
	switch role {
	case RoleCompared:
		return RgbCompared
	case RoleSwapped:
		return RgbSwapped
	case RoleWritten:
		return RgbWritten
	case RoleFinal:
		return RgbFinal
	}
	return BarColor(progress)
}
