package pongblast

import (
	"math"
	"testing"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
)

const frame = 1.0 / 60.0

func liveBall(pos, vel core.Vec2) *Ball {
	b := newTestBall(nil, 1)
	b.Serve(DirRight)
	b.SetPosition(pos)
	b.SetVelocity(vel)
	return b
}

func TestArenaWallBounce(t *testing.T) {
	b := liveBall(core.V(400, 10), core.V(100, -240))
	arena := NewArena(800, 600, 120, b, nil, nil, nil)

	arena.Step(frame)

	if b.Velocity().Y <= 0 {
		t.Errorf("Velocity().Y = %v, expected reflected downward", b.Velocity().Y)
	}
	if b.Position().Y < b.Radius() {
		t.Errorf("Position().Y = %v, expected at least the radius", b.Position().Y)
	}
	if math.Abs(b.Speed()-260) > 1e-9 {
		t.Errorf("Speed() = %v, expected 260", b.Speed())
	}
}

func TestArenaPaddleBounce(t *testing.T) {
	b := liveBall(core.V(330, 300), core.V(-260, 0))
	p := NewPaddle(core.SidePlayer, 300, 300, config.DefaultPongBlastConfig().Paddle, 600)
	rec := &collisionRecorder{}
	arena := NewArena(800, 600, 120, b, []*Paddle{p}, nil, rec)

	for range 20 {
		arena.Step(frame)
	}

	if len(rec.paddles) != 1 {
		t.Fatalf("paddle contacts = %d, expected 1", len(rec.paddles))
	}
	if rec.paddles[0].Side() != core.SidePlayer {
		t.Errorf("contact side = %v, expected player", rec.paddles[0].Side())
	}
	if b.Velocity().X <= 0 {
		t.Errorf("Velocity().X = %v, expected bounce to the right", b.Velocity().X)
	}
	if b.Box().Intersects(p.Box()) {
		t.Error("ball should be pushed out of the paddle")
	}
}

func TestArenaPaddleNoTunnelling(t *testing.T) {
	b := liveBall(core.V(360, 300), core.V(-560, 0))
	p := NewPaddle(core.SidePlayer, 300, 300, config.DefaultPongBlastConfig().Paddle, 600)
	rec := &collisionRecorder{}
	arena := NewArena(800, 600, 120, b, []*Paddle{p}, nil, rec)

	// One coarse tick covers more distance than the paddle is wide.
	arena.Step(0.2)

	if len(rec.paddles) != 1 {
		t.Errorf("paddle contacts = %d, expected 1", len(rec.paddles))
	}
	if b.Position().X < 300 {
		t.Errorf("Position().X = %v, ball passed through the paddle", b.Position().X)
	}
}

func TestArenaBlockBounce(t *testing.T) {
	cfg := config.DefaultPongBlastConfig().Blocks
	grid := NewBlockGrid(core.SideEnemy, cfg, 800, 600)
	b := liveBall(core.V(640, 300), core.V(260, 0))
	rec := &collisionRecorder{}
	arena := NewArena(800, 600, cfg.NudgeMinX, b, nil, []*BlockGrid{grid}, rec)

	for range 10 {
		arena.Step(frame)
	}

	if len(rec.blocks) != 1 {
		t.Fatalf("block contacts = %d, expected 1", len(rec.blocks))
	}
	if col, row := rec.blocks[0].Cell(); col != 0 || row != 2 {
		t.Errorf("hit block (%d, %d), expected (0, 2)", col, row)
	}
	if b.Velocity().X >= 0 {
		t.Errorf("Velocity().X = %v, expected bounce back to the left", b.Velocity().X)
	}
	if math.Abs(b.Speed()-260) > 1e-9 {
		t.Errorf("Speed() = %v, expected 260", b.Speed())
	}
}

func TestArenaBlockNudge(t *testing.T) {
	cfg := config.BlocksConfig{Cols: 1, Rows: 1, CellW: 40, EdgeInset: 18, MarginY: 250, Gap: 2, HP: 3, NudgeMinX: 120}
	grid := NewBlockGrid(core.SideEnemy, cfg, 800, 600)
	b := liveBall(core.V(765, 220), core.V(0, 260))
	rec := &collisionRecorder{}
	arena := NewArena(800, 600, cfg.NudgeMinX, b, nil, []*BlockGrid{grid}, rec)

	for range 10 {
		arena.Step(frame)
		if len(rec.blocks) > 0 {
			break
		}
	}

	if len(rec.blocks) != 1 {
		t.Fatalf("block contacts = %d, expected 1", len(rec.blocks))
	}
	v := b.Velocity()
	if v.Y >= 0 {
		t.Errorf("Velocity().Y = %v, expected bounce upward", v.Y)
	}
	if v.X <= 0 {
		t.Errorf("Velocity().X = %v, expected outward nudge to the right", v.X)
	}
	if math.Abs(v.Len()-260) > 1e-9 {
		t.Errorf("speed = %v, expected pre-collision 260", v.Len())
	}
}

func TestArenaSkipsDeadBlocks(t *testing.T) {
	cfg := config.DefaultPongBlastConfig().Blocks
	grid := NewBlockGrid(core.SideEnemy, cfg, 800, 600)
	for _, blk := range grid.Blocks() {
		blk.Damage(blk.HP())
	}
	b := liveBall(core.V(640, 300), core.V(260, 0))
	rec := &collisionRecorder{}
	arena := NewArena(800, 600, cfg.NudgeMinX, b, nil, []*BlockGrid{grid}, rec)

	for range 60 {
		arena.Step(frame)
	}

	if len(rec.blocks) != 0 {
		t.Errorf("block contacts = %d, expected 0", len(rec.blocks))
	}
	side, out := arena.OutOfBounds(10)
	if !out || side != core.SideEnemy {
		t.Errorf("OutOfBounds() = (%v, %v), expected enemy conceded", side, out)
	}
}

func TestArenaIgnoresServingBall(t *testing.T) {
	b := newTestBall(nil, 1)
	arena := NewArena(800, 600, 120, b, nil, nil, nil)

	arena.Step(frame)

	if b.Position() != arenaCenter {
		t.Errorf("Position() = %v, expected ball parked at center", b.Position())
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		x        float64
		side     core.Side
		expected bool
	}{
		{-11, core.SidePlayer, true},
		{-10, core.SideNone, false},
		{400, core.SideNone, false},
		{810, core.SideNone, false},
		{811, core.SideEnemy, true},
	}

	for _, tc := range tests {
		b := liveBall(core.V(tc.x, 300), core.V(260, 0))
		arena := NewArena(800, 600, 120, b, nil, nil, nil)
		side, out := arena.OutOfBounds(10)
		if side != tc.side || out != tc.expected {
			t.Errorf("OutOfBounds() at x=%v = (%v, %v), expected (%v, %v)", tc.x, side, out, tc.side, tc.expected)
		}
	}
}
