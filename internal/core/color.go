package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles used by the word renderer.
const (
	ColorWord      = ColorWhite
	ColorTyped     = ColorBrightGreen
	ColorHUD       = ColorGray
	ColorFreeze    = ColorBrightCyan
	ColorCase      = ColorOrange
	ColorRelation  = ColorMagenta
	ColorCandidate = ColorBrightYellow
)
