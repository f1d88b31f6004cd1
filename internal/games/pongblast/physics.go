package pongblast

import (
	"math"

	"github.com/vovakirdan/pongblast/internal/core"
)

// maxSubSteps bounds the per-tick integration loop.
const maxSubSteps = 64

// CollisionHandler receives the contacts the arena resolves.
// *Attributor is the production implementation.
type CollisionHandler interface {
	OnPaddle(p Contact)
	OnBlock(b *Block)
}

// Arena is the rigid-body stand-in: it integrates the ball, bounces it off
// the top and bottom walls, paddles and blocks, and reports each contact.
// The side edges are open.
type Arena struct {
	width     float64
	height    float64
	nudgeMinX float64

	ball    *Ball
	paddles []*Paddle
	grids   []*BlockGrid
	handler CollisionHandler
}

// NewArena wires the solver. handler may be nil.
func NewArena(width, height, nudgeMinX float64, ball *Ball, paddles []*Paddle, grids []*BlockGrid, handler CollisionHandler) *Arena {
	return &Arena{
		width:     width,
		height:    height,
		nudgeMinX: nudgeMinX,
		ball:      ball,
		paddles:   paddles,
		grids:     grids,
		handler:   handler,
	}
}

// Step advances a live ball by dt seconds. Movement is split into sub-steps
// no longer than half the ball radius so it cannot tunnel through a paddle.
func (a *Arena) Step(dt float64) {
	b := a.ball
	if b.State() != BallLive || dt <= 0 {
		return
	}

	dist := b.Velocity().Len() * dt
	steps := 1
	if r := b.Radius() / 2; r > 0 {
		steps = core.Clamp(int(math.Ceil(dist/r)), 1, maxSubSteps)
	}
	sub := dt / float64(steps)

	for range steps {
		b.SetPosition(b.Position().Add(b.Velocity().Scale(sub)))
		a.collideWalls()
		a.collidePaddles()
		a.collideBlocks()
	}
}

func (a *Arena) collideWalls() {
	b := a.ball
	pos, vel, r := b.Position(), b.Velocity(), b.Radius()

	switch {
	case pos.Y-r < 0:
		pos.Y = r
		vel.Y = math.Abs(vel.Y)
	case pos.Y+r > a.height:
		pos.Y = a.height - r
		vel.Y = -math.Abs(vel.Y)
	default:
		return
	}
	b.SetPosition(pos)
	b.SetVelocity(vel)
}

func (a *Arena) collidePaddles() {
	b := a.ball
	for _, p := range a.paddles {
		pb := p.Box()
		bb := b.Box()
		if !bb.Intersects(pb) {
			continue
		}

		approaching := a.bounceOff(pb)
		if approaching && a.handler != nil {
			a.handler.OnPaddle(p)
		}
	}
}

func (a *Arena) collideBlocks() {
	b := a.ball
	for _, g := range a.grids {
		for _, blk := range g.Blocks() {
			if !blk.Alive() || !b.Box().Intersects(blk.Box()) {
				continue
			}

			speed := b.Velocity().Len()
			a.bounceOff(blk.Box())
			a.nudge(blk.Box(), speed)
			if a.handler != nil {
				a.handler.OnBlock(blk)
			}
			return
		}
	}
}

// bounceOff pushes the ball out of o along the axis of least penetration and
// points that velocity component away from o. It reports whether the ball was
// moving into o beforehand.
func (a *Arena) bounceOff(o core.Box) bool {
	b := a.ball
	pos, vel := b.Position(), b.Velocity()
	dx, dy := b.Box().Overlap(o)

	var approaching bool
	if dx < dy {
		sign := sideOf(pos.X, o.Center.X)
		approaching = vel.X*sign < 0
		pos.X += sign * dx
		vel.X = sign * math.Abs(vel.X)
	} else {
		sign := sideOf(pos.Y, o.Center.Y)
		approaching = vel.Y*sign < 0
		pos.Y += sign * dy
		vel.Y = sign * math.Abs(vel.Y)
	}

	b.SetPosition(pos)
	b.SetVelocity(vel)
	return approaching
}

// nudge guarantees a minimum horizontal speed away from a block so the ball
// cannot skim along a column, then restores the pre-collision speed.
func (a *Arena) nudge(o core.Box, speed float64) {
	b := a.ball
	vel := b.Velocity()
	sign := sideOf(b.Position().X, o.Center.X)
	vel.X = sign * math.Max(math.Abs(vel.X), a.nudgeMinX)
	if v, ok := vel.WithLength(speed); ok {
		vel = v
	}
	b.SetVelocity(vel)
}

// OutOfBounds reports whether the ball is past a side edge by more than
// margin, and which side conceded.
func (a *Arena) OutOfBounds(margin float64) (core.Side, bool) {
	x := a.ball.Position().X
	switch {
	case x < -margin:
		return core.SidePlayer, true
	case x > a.width+margin:
		return core.SideEnemy, true
	default:
		return core.SideNone, false
	}
}

func sideOf(v, center float64) float64 {
	if v < center {
		return -1
	}
	return 1
}
