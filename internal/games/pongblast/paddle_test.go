package pongblast

import (
	"math"
	"testing"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
)

func TestPaddleMove(t *testing.T) {
	cfg := config.DefaultPongBlastConfig().Paddle
	dt := 1.0 / 60.0

	tests := []struct {
		name      string
		startY    float64
		axis      int
		expectedY float64
	}{
		{"down", 300, 1, 307},
		{"up", 300, -1, 293},
		{"still", 300, 0, 300},
		{"axis clamped", 300, 5, 307},
		{"top edge", 46, -1, 45},
		{"bottom edge", 555, 1, 555},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(core.SidePlayer, 134, tc.startY, cfg, 600)
			p.Move(tc.axis, dt)
			if math.Abs(p.Position().Y-tc.expectedY) > 1e-9 {
				t.Errorf("Y = %v, expected %v", p.Position().Y, tc.expectedY)
			}
			expectedVel := (tc.expectedY - tc.startY) / dt
			if math.Abs(p.VelocityY()-expectedVel) > 1e-6 {
				t.Errorf("VelocityY() = %v, expected %v", p.VelocityY(), expectedVel)
			}
		})
	}
}

func TestPaddleFollow(t *testing.T) {
	cfg := config.DefaultPongBlastConfig().Paddle
	p := NewPaddle(core.SideEnemy, 666, 300, cfg, 600)

	// catchup 0.8 at 60Hz closes 80% of the gap
	p.Follow(400, 1.0/60.0, 0.8)
	if math.Abs(p.Position().Y-380) > 1e-9 {
		t.Errorf("Y = %v, expected 380", p.Position().Y)
	}
	if p.VelocityY() <= 0 {
		t.Errorf("VelocityY() = %v, expected positive", p.VelocityY())
	}

	// A long frame snaps straight to the target, clamped to the arena
	p.Follow(1000, 1, 0.8)
	if p.Position().Y != 555 {
		t.Errorf("Y = %v, expected 555", p.Position().Y)
	}

	p.Hold()
	if p.VelocityY() != 0 {
		t.Errorf("VelocityY() = %v after Hold, expected 0", p.VelocityY())
	}
}

func TestController(t *testing.T) {
	c := NewController(2)

	steps := []struct {
		in, expected int
	}{
		{0, 0},
		{-1, -1},
		{0, -1},
		{0, -1},
		{0, 0},
		{1, 1},
		{-1, -1},
		{0, -1},
	}

	for i, s := range steps {
		if got := c.Update(s.in); got != s.expected {
			t.Errorf("step %d: Update(%d) = %d, expected %d", i, s.in, got, s.expected)
		}
	}

	c.Reset()
	if got := c.Update(0); got != 0 {
		t.Errorf("Update(0) after Reset = %d, expected 0", got)
	}
}

func TestBlockGridLayout(t *testing.T) {
	cfg := config.DefaultPongBlastConfig().Blocks

	player := NewBlockGrid(core.SidePlayer, cfg, 800, 600)
	enemy := NewBlockGrid(core.SideEnemy, cfg, 800, 600)

	if len(player.Blocks()) != 15 || player.AliveCount() != 15 {
		t.Errorf("player blocks = %d (alive %d), expected 15", len(player.Blocks()), player.AliveCount())
	}
	if player.FrontX() != 118 {
		t.Errorf("player FrontX() = %v, expected 118", player.FrontX())
	}
	if enemy.FrontX() != 682 {
		t.Errorf("enemy FrontX() = %v, expected 682", enemy.FrontX())
	}

	b := enemy.Block(0, 2)
	if b == nil {
		t.Fatal("Block(0, 2) = nil")
	}
	if col, row := b.Cell(); col != 0 || row != 2 {
		t.Errorf("Cell() = (%d, %d), expected (0, 2)", col, row)
	}
	box := b.Box()
	if math.Abs(box.Center.Y-300) > 1e-9 || math.Abs(box.HalfW-19) > 1e-9 {
		t.Errorf("box = %+v, expected centered at y=300 and 38 wide", box)
	}
	if b.Owner() != core.SideEnemy || b.HP() != 3 {
		t.Errorf("owner %v, hp %d, expected enemy with 3", b.Owner(), b.HP())
	}

	if enemy.Block(3, 0) != nil || enemy.Block(0, -1) != nil {
		t.Error("out-of-range Block() should be nil")
	}

	b.Damage(3)
	if enemy.AliveCount() != 14 {
		t.Errorf("AliveCount() = %d, expected 14", enemy.AliveCount())
	}
}
