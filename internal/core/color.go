package core

// Color is a semantic foreground role for a screen cell.
// The platform layer maps roles to concrete terminal colors from the theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrid
	ColorMarkX
	ColorMarkO
	ColorWin
	ColorCursor
	ColorDim
)
