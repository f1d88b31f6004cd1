package pongblast

import (
	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
)

// Paddle is a vertical paddle tied to one side for the whole match.
type Paddle struct {
	side  core.Side
	pos   core.Vec2 // center
	w, h  float64
	speed float64
	minY  float64
	maxY  float64
	velY  float64 // last move's vertical velocity, units per second
}

// NewPaddle creates a paddle centered at (x, y) that stays inside [0, arenaH].
func NewPaddle(side core.Side, x, y float64, cfg config.PaddleConfig, arenaH float64) *Paddle {
	p := &Paddle{
		side:  side,
		w:     cfg.Width,
		h:     cfg.Height,
		speed: cfg.Speed,
		minY:  cfg.Height / 2,
		maxY:  arenaH - cfg.Height/2,
	}
	p.pos = core.V(x, core.ClampF(y, p.minY, p.maxY))
	return p
}

// Move shifts the paddle by axis (-1 up, +1 down) at full speed.
func (p *Paddle) Move(axis int, dt float64) {
	axis = core.Clamp(axis, -1, 1)
	p.setY(p.pos.Y+float64(axis)*p.speed*dt, dt)
}

// Follow eases the paddle toward targetY. catchup is the fraction of the gap
// closed per 60Hz frame.
func (p *Paddle) Follow(targetY, dt, catchup float64) {
	t := core.ClampF(catchup*dt*60, 0, 1)
	p.setY(core.Lerp(p.pos.Y, targetY, t), dt)
}

func (p *Paddle) setY(y, dt float64) {
	prev := p.pos.Y
	p.pos.Y = core.ClampF(y, p.minY, p.maxY)
	if dt > 0 {
		p.velY = (p.pos.Y - prev) / dt
	} else {
		p.velY = 0
	}
}

// Center puts the paddle back at y with no velocity.
func (p *Paddle) Center(y float64) {
	p.pos.Y = core.ClampF(y, p.minY, p.maxY)
	p.velY = 0
}

// Hold stops the paddle for this frame, clearing its velocity.
func (p *Paddle) Hold() {
	p.velY = 0
}

// VelocityY returns the vertical velocity of the most recent move.
func (p *Paddle) VelocityY() float64 { return p.velY }

func (p *Paddle) Side() core.Side { return p.side }

func (p *Paddle) Position() core.Vec2 { return p.pos }

func (p *Paddle) Box() core.Box { return core.BoxAt(p.pos.X, p.pos.Y, p.w, p.h) }

// Controller turns discrete key presses into a continuous -1/0/+1 axis.
// Terminals report presses and repeats but never releases, so a press keeps
// the direction alive for a hold window of ticks.
type Controller struct {
	window int
	hold   int
	dir    int
}

// NewController creates a controller with the given hold window.
func NewController(window int) *Controller {
	return &Controller{window: max(window, 0)}
}

// Update feeds this tick's raw axis and returns the effective one.
func (c *Controller) Update(axis int) int {
	if axis != 0 {
		c.dir = core.Clamp(axis, -1, 1)
		c.hold = c.window
		return c.dir
	}
	if c.hold > 0 {
		c.hold--
		return c.dir
	}
	c.dir = 0
	return 0
}

// Reset drops any latched direction.
func (c *Controller) Reset() {
	c.hold = 0
	c.dir = 0
}
