package core

// Color is a foreground colour for a screen cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorCyan   // player side
	ColorOrange // enemy side
	ColorYellow
	ColorBrightWhite
)

// SideColor returns the colour used to draw objects owned by a side.
func SideColor(s Side) Color {
	switch s {
	case SidePlayer:
		return ColorCyan
	case SideEnemy:
		return ColorOrange
	default:
		return ColorDefault
	}
}
