// Package event defines the gameplay events exchanged between the ball, the
// collision attributor, the score aggregator and the presentation layer, plus
// the synchronous bus that carries them.
package event

import "github.com/vovakirdan/pongblast/internal/core"

// Kind identifies an event's payload shape.
type Kind int

const (
	KindRallyCrossing Kind = iota + 1
	KindBlockHit
	KindBlockDestroyed
	KindScoreChanged
	KindRallyChanged
	KindBallOut
)

var kindNames = map[Kind]string{
	KindRallyCrossing:  "rally-crossing",
	KindBlockHit:       "block-hit",
	KindBlockDestroyed: "block-destroyed",
	KindScoreChanged:   "score-changed",
	KindRallyChanged:   "rally-changed",
	KindBallOut:        "ball-out",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a tagged payload on the bus. Only types in this package implement it.
type Event interface {
	Kind() Kind
	event()
}

// RallyCrossing is published by the ball when an armed contact is followed by
// a midline crossing.
type RallyCrossing struct {
	By core.Side
}

func (RallyCrossing) Kind() Kind { return KindRallyCrossing }
func (RallyCrossing) event() {}

// BlockHit is published when the ball strikes a live block.
type BlockHit struct {
	Owner core.Side // whose block was hit
	By    core.Side // attacker: the ball's last hitter
}

func (BlockHit) Kind() Kind { return KindBlockHit }
func (BlockHit) event() {}

// BlockDestroyed follows the BlockHit that brought a block to zero hit points.
type BlockDestroyed struct {
	Owner core.Side
	By    core.Side
}

func (BlockDestroyed) Kind() Kind { return KindBlockDestroyed }
func (BlockDestroyed) event() {}

// ScoreChanged carries the consolidated point totals.
type ScoreChanged struct {
	Player int
	Enemy  int
}

func (ScoreChanged) Kind() Kind { return KindScoreChanged }
func (ScoreChanged) event() {}

// RallyChanged carries the current rally count.
type RallyChanged struct {
	Rally int
}

func (RallyChanged) Kind() Kind { return KindRallyChanged }
func (RallyChanged) event() {}

// BallOut is published when the ball leaves the arena past a side boundary.
// Conceded is the side whose boundary the ball crossed.
type BallOut struct {
	Conceded core.Side
}

func (BallOut) Kind() Kind { return KindBallOut }
func (BallOut) event() {}
