package core

// Color is the foreground of a screen cell. The terminal front end maps
// each value to an ANSI palette entry; cells never carry raw escape codes.
type Color uint8

const (
	ColorDefault Color = iota

	// Water
	ColorBlue
	ColorCyan
	ColorBrightCyan

	// Volcano
	ColorRed
	ColorBrightRed
	ColorOrange

	// Swamp
	ColorGreen
	ColorBrightGreen

	// HUD, player and overlays
	ColorYellow
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
	ColorGray
)
