// Package pongblast implements PongBlast: Pong-style volleys between two
// paddles, each guarding a destructible block grid. Rally crossings, block
// hits and block kills score points through a shared event bus.
package pongblast

import (
	"math/rand"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
	"github.com/vovakirdan/pongblast/internal/registry"
)

// Mode selects who drives the enemy paddle.
type Mode int

const (
	ModeVsCPU  Mode = iota // Enemy paddle follows the ball
	ModeVersus             // Enemy paddle on the arrow keys
)

// configPath and difficultyPreset are set from the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is one PongBlast match. It owns the world objects and drives them in
// a fixed order each tick.
type Game struct {
	mode     Mode
	cfg      config.PongBlastConfig
	injected bool // cfg was supplied by NewWithConfig

	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	// The bus and its long-lived subscribers survive Reset so that external
	// listeners stay attached across matches.
	bus    *event.Bus
	hud    *HUD
	scores *ScoreAggregator

	ball       *Ball
	player     *Paddle
	enemy      *Paddle
	playerCtl  *Controller
	enemyCtl   *Controller
	grids      [2]*BlockGrid // player, enemy
	attributor *Attributor
	arena      *Arena

	tickCount int
	paused    bool
	gameOver  bool
	winner    core.Side
}

// New creates a match that loads its configuration on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode, bus: event.NewBus()}
}

// NewWithConfig creates a match with a fixed configuration.
func NewWithConfig(mode Mode, cfg config.PongBlastConfig) *Game {
	g := New(mode)
	g.cfg = cfg
	g.injected = true
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return "pongblast_versus"
	}
	return "pongblast"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "PongBlast (2 players)"
	}
	return "PongBlast"
}

// Events returns the match's event bus.
func (g *Game) Events() *event.Bus {
	return g.bus
}

// Reset starts a new match: fresh grids, paddles and ball, zeroed scores.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if !g.injected {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultPongBlastConfig()
		}
		config.ApplyPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.buildWorld()

	if g.scores == nil {
		g.hud = NewHUD(g.bus)
		g.scores = NewScoreAggregator(g.bus)
		event.SubscribeTo(g.bus, g.onBallOut)
	} else {
		g.scores.ResetAll()
	}

	g.tickCount = 0
	g.paused = false
	g.gameOver = false
	g.winner = core.SideNone
}

func (g *Game) buildWorld() {
	a := g.cfg.Arena
	center := core.V(a.Width/2, a.Height/2)

	g.ball = NewBall(g.cfg.Ball, center, g.bus, g.rng)

	g.grids[0] = NewBlockGrid(core.SidePlayer, g.cfg.Blocks, a.Width, a.Height)
	g.grids[1] = NewBlockGrid(core.SideEnemy, g.cfg.Blocks, a.Width, a.Height)

	clearance := g.cfg.Paddle.Clearance
	g.player = NewPaddle(core.SidePlayer, g.grids[0].FrontX()+clearance, center.Y, g.cfg.Paddle, a.Height)
	g.enemy = NewPaddle(core.SideEnemy, g.grids[1].FrontX()-clearance, center.Y, g.cfg.Paddle, a.Height)
	g.playerCtl = NewController(g.cfg.Paddle.HoldTicks)
	g.enemyCtl = NewController(g.cfg.Paddle.HoldTicks)

	g.attributor = NewAttributor(g.ball, g.bus)
	g.arena = NewArena(a.Width, a.Height, g.cfg.Blocks.NudgeMinX, g.ball,
		[]*Paddle{g.player, g.enemy}, g.grids[:], g.attributor)
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.FrameSeconds()

	if in.Has(core.ActionServe) && g.ball.State() == BallServing {
		g.serve()
	}

	g.controlPaddles(in, dt)
	g.arena.Step(dt)
	g.ball.Update(dt)

	if g.ball.State() == BallLive {
		if side, out := g.arena.OutOfBounds(g.cfg.Arena.OutMargin); out {
			g.bus.Publish(event.BallOut{Conceded: side})
			g.ball.ResetToCenter()
			g.scores.ResetRally()
		}
	}

	g.checkWin()
	return core.StepResult{State: g.State()}
}

func (g *Game) serve() {
	t := g.scores.Totals()
	g.ball.SetBaseSpeed(g.difficulty.Speed(g.cfg.Ball.BaseSpeed, max(t.Player, t.Enemy), g.tickCount))

	dir := DirRight
	if g.rng.Intn(2) == 0 {
		dir = DirLeft
	}
	if g.ball.Serve(dir) {
		g.scores.ResetRally()
	}
}

func (g *Game) controlPaddles(in core.InputFrame, dt float64) {
	if g.mode == ModeVersus {
		g.player.Move(g.playerCtl.Update(in.Axis(core.ActionUp, core.ActionDown)), dt)
		g.enemy.Move(g.enemyCtl.Update(in.Axis(core.ActionAltUp, core.ActionAltDown)), dt)
		return
	}

	axis := in.Axis(core.ActionUp, core.ActionDown) + in.Axis(core.ActionAltUp, core.ActionAltDown)
	g.player.Move(g.playerCtl.Update(core.Clamp(axis, -1, 1)), dt)

	// Follow-ball CPU: only chases a live ball that is heading its way.
	if g.ball.State() == BallLive && g.ball.Velocity().X > 0 {
		g.enemy.Follow(g.ball.Position().Y, dt, g.cfg.CPU.Catchup)
	} else {
		g.enemy.Hold()
	}
}

// onBallOut applies the out-of-bounds scoring policy.
func (g *Game) onBallOut(e event.BallOut) {
	if g.cfg.Gameplay.ScoreOnOut {
		g.scores.Award(e.Conceded.Opponent(), 1)
	}
}

func (g *Game) checkWin() {
	win := g.cfg.Gameplay.WinScore
	if win <= 0 {
		return
	}
	t := g.scores.Totals()
	switch {
	case t.Player >= win:
		g.gameOver = true
		g.winner = core.SidePlayer
	case t.Enemy >= win:
		g.gameOver = true
		g.winner = core.SideEnemy
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	t := g.scores.Totals()
	return core.GameState{
		Score:         t.Player,
		OpponentScore: t.Enemy,
		GameOver:      g.gameOver,
		Paused:        g.paused,
	}
}

// Ball returns the match ball.
func (g *Game) Ball() *Ball { return g.ball }

// Scores returns the score aggregator.
func (g *Game) Scores() *ScoreAggregator { return g.scores }

// Paddle returns side's paddle, or nil for SideNone.
func (g *Game) Paddle(side core.Side) *Paddle {
	switch side {
	case core.SidePlayer:
		return g.player
	case core.SideEnemy:
		return g.enemy
	default:
		return nil
	}
}

// Grid returns side's block grid, or nil for SideNone.
func (g *Game) Grid(side core.Side) *BlockGrid {
	switch side {
	case core.SidePlayer:
		return g.grids[0]
	case core.SideEnemy:
		return g.grids[1]
	default:
		return nil
	}
}

// Winner returns the side that reached the win score, if any.
func (g *Game) Winner() core.Side { return g.winner }

// Config returns the configuration in effect.
func (g *Game) Config() config.PongBlastConfig { return g.cfg }

// Register both modes with the registry
func init() {
	registry.Register("pongblast", func() registry.Game {
		return New(ModeVsCPU)
	})
	registry.Register("pongblast_versus", func() registry.Game {
		return New(ModeVersus)
	})
}
