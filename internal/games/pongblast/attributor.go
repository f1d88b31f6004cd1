package pongblast

import (
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

// Contact is a paddle as seen by the attributor: a fixed side, plus an
// optional vertical velocity (see verticalMover).
type Contact interface {
	Side() core.Side
}

type verticalMover interface {
	VelocityY() float64
}

// Attributor turns collision notifications from the arena solver into ball
// contacts and attributed block events.
type Attributor struct {
	ball *Ball
	bus  *event.Bus
}

// NewAttributor creates an attributor for ball. bus may be nil.
func NewAttributor(ball *Ball, bus *event.Bus) *Attributor {
	return &Attributor{ball: ball, bus: bus}
}

// OnPaddle handles a ball-vs-paddle collision. The paddle's velocity is read
// if it exposes one and treated as zero otherwise.
func (a *Attributor) OnPaddle(p Contact) {
	if p == nil {
		return
	}
	var velY float64
	if m, ok := p.(verticalMover); ok {
		velY = m.VelocityY()
	}
	a.ball.OnPaddleContact(p.Side(), velY)
	a.ball.RatchetSpeed()
}

// OnBlock handles a ball-vs-block collision. The attacker is the ball's last
// hitter; when none is recorded the block still takes damage but nobody is
// credited. A destroyed block is ignored.
func (a *Attributor) OnBlock(b *Block) {
	if b == nil || !b.Alive() {
		return
	}
	by := a.ball.LastHitBy()
	attributed := by.Valid()
	if attributed {
		a.bus.Publish(event.BlockHit{Owner: b.Owner(), By: by})
	}
	if b.Damage(1) && attributed {
		a.bus.Publish(event.BlockDestroyed{Owner: b.Owner(), By: by})
	}
}
