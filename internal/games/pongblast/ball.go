package pongblast

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

// spinEpsilon is the spin magnitude below which no bias is applied.
const spinEpsilon = 0.01

// BallState is the serve/live cycle of the ball.
type BallState int

const (
	BallServing BallState = iota // Parked at center, waiting for a serve
	BallLive                     // In flight
)

func (s BallState) String() string {
	if s == BallLive {
		return "live"
	}
	return "serving"
}

// Direction is the horizontal direction of a serve.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Ball owns the ball's kinematics, spin and rally attribution.
//
// The arena solver moves the ball and resolves bounces through SetPosition and
// SetVelocity. Everything else reaches the ball through Serve, OnPaddleContact
// and RatchetSpeed.
type Ball struct {
	pos    core.Vec2
	vel    core.Vec2
	spin   float64
	radius float64

	baseSpeed    float64
	maxSpeed     float64
	speedRatchet float64
	maxSpin      float64
	spinDecay    float64
	spinGain     float64
	serveCone    int

	state         BallState
	lastHitBy     core.Side
	rallyEligible bool
	prevX         float64
	hasPrevX      bool

	center core.Vec2
	bus    *event.Bus
	rng    *rand.Rand
}

// NewBall creates a ball parked at center. bus may be nil.
func NewBall(cfg config.BallConfig, center core.Vec2, bus *event.Bus, rng *rand.Rand) *Ball {
	b := &Ball{
		radius:       cfg.Radius,
		baseSpeed:    cfg.BaseSpeed,
		maxSpeed:     math.Max(cfg.MaxSpeed, cfg.BaseSpeed),
		speedRatchet: cfg.SpeedRatchet,
		maxSpin:      cfg.MaxSpin,
		spinDecay:    cfg.SpinDecay,
		spinGain:     cfg.SpinGain,
		serveCone:    cfg.ServeCone,
		center:       center,
		bus:          bus,
		rng:          rng,
	}
	b.ResetToCenter()
	return b
}

// ResetToCenter parks the ball at the arena center and clears all flight state.
func (b *Ball) ResetToCenter() {
	b.pos = b.center
	b.vel = core.Vec2{}
	b.state = BallServing
	b.lastHitBy = core.SideNone
	b.rallyEligible = false
	b.spin = 0
	b.hasPrevX = false
}

// Serve launches the ball toward dir at base speed. The angle is drawn from
// the serve cone in whole degrees. It returns false, doing nothing, unless the
// ball is serving.
//
// The serve is attributed to the receiving side's opponent (left-ward serves
// belong to the enemy) but does not arm a rally award.
func (b *Ball) Serve(dir Direction) bool {
	if b.state != BallServing {
		return false
	}
	if dir != DirLeft {
		dir = DirRight
	}

	deg := 0
	if b.serveCone > 0 {
		deg = b.rng.Intn(2*b.serveCone+1) - b.serveCone
	}
	angle := float64(deg) * math.Pi / 180
	b.vel = core.V(float64(dir)*math.Cos(angle)*b.baseSpeed, math.Sin(angle)*b.baseSpeed)
	b.state = BallLive

	if dir == DirLeft {
		b.lastHitBy = core.SideEnemy
	} else {
		b.lastHitBy = core.SidePlayer
	}
	b.rallyEligible = false
	b.spin = 0
	return true
}

// OnPaddleContact records side as the last hitter, arms one rally award and
// adds spin from the paddle's vertical velocity. The bounce itself is left to
// the arena solver.
func (b *Ball) OnPaddleContact(side core.Side, paddleVelY float64) {
	if !side.Valid() {
		return
	}
	b.lastHitBy = side
	b.rallyEligible = true
	b.spin = core.ClampF(b.spin+paddleVelY*b.spinGain, -b.maxSpin, b.maxSpin)
}

// RatchetSpeed raises the speed by the ratchet increment, clamped to
// [base, max], keeping direction. A ball at rest is left alone.
func (b *Ball) RatchetSpeed() {
	if b.vel.IsZero() {
		return
	}
	speed := core.ClampF(b.vel.Len()+b.speedRatchet, b.baseSpeed, b.maxSpeed)
	if v, ok := b.vel.WithLength(speed); ok {
		b.vel = v
	}
}

// Update runs the per-frame spin bias and midline-crossing check. Position is
// integrated by the arena solver before Update is called.
func (b *Ball) Update(dt float64) {
	if dt < 0 {
		return
	}
	b.applySpin()
	b.checkMidline()
}

func (b *Ball) applySpin() {
	if math.Abs(b.spin) <= spinEpsilon || b.vel.IsZero() {
		return
	}
	speed := core.ClampF(b.vel.Len(), b.baseSpeed, b.maxSpeed)
	spin := core.ClampF(b.spin, -b.maxSpin, b.maxSpin)
	biased := core.V(b.vel.X, b.vel.Y+spin)
	if v, ok := biased.WithLength(speed); ok {
		b.vel = v
	}
	b.spin *= b.spinDecay
}

func (b *Ball) checkMidline() {
	x := b.pos.X
	if !b.hasPrevX {
		b.prevX = x
		b.hasPrevX = true
		return
	}

	c := b.center.X
	crossed := (b.prevX < c && x >= c) || (b.prevX > c && x <= c)
	if crossed && b.rallyEligible && b.lastHitBy.Valid() {
		b.bus.Publish(event.RallyCrossing{By: b.lastHitBy})
		b.rallyEligible = false
	}
	b.prevX = x
}

// SetBaseSpeed changes the serve speed. It is capped at the max speed and
// takes effect from the next serve or clamp.
func (b *Ball) SetBaseSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	b.baseSpeed = math.Min(speed, b.maxSpeed)
}

// SetPosition moves the ball. Used by the arena solver.
func (b *Ball) SetPosition(p core.Vec2) { b.pos = p }

// SetVelocity replaces the velocity. Used by the arena solver.
func (b *Ball) SetVelocity(v core.Vec2) { b.vel = v }

func (b *Ball) Position() core.Vec2 { return b.pos }
func (b *Ball) Velocity() core.Vec2 { return b.vel }
func (b *Ball) Speed() float64 { return b.vel.Len() }
func (b *Ball) Spin() float64 { return b.spin }
func (b *Ball) Radius() float64 { return b.radius }
func (b *Ball) State() BallState { return b.state }
func (b *Ball) LastHitBy() core.Side { return b.lastHitBy }
func (b *Ball) RallyEligible() bool { return b.rallyEligible }
func (b *Ball) BaseSpeed() float64 { return b.baseSpeed }
func (b *Ball) MaxSpeed() float64 { return b.maxSpeed }
func (b *Ball) Box() core.Box { return core.BoxAt(b.pos.X, b.pos.Y, 2*b.radius, 2*b.radius) }
