package core

// Side tags which half of the arena an object belongs to or which player
// receives credit for a gameplay event.
type Side uint8

const (
	SideNone   Side = iota // unset / unattributed
	SidePlayer             // left half, human player
	SideEnemy              // right half, CPU or second player
)

// String returns the lowercase tag used in logs and events.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Valid reports whether s names one of the two players.
func (s Side) Valid() bool {
	return s == SidePlayer || s == SideEnemy
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideEnemy
	case SideEnemy:
		return SidePlayer
	default:
		return SideNone
	}
}
