package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette for the runner field.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorActor
	ColorObstacle
	ColorHUD
	ColorAlert
	ColorMuted
)
