package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks semantic constraints that the YAML decoder cannot.
func (c PongBlastConfig) Validate() error {
	var errs []string

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, "arena.width and arena.height must be > 0")
	}
	if c.Arena.OutMargin < 0 {
		errs = append(errs, "arena.out_margin must be >= 0")
	}

	b := c.Ball
	if b.Radius <= 0 {
		errs = append(errs, "ball.radius must be > 0")
	}
	if b.BaseSpeed <= 0 {
		errs = append(errs, "ball.base_speed must be > 0")
	}
	if b.MaxSpeed < b.BaseSpeed {
		errs = append(errs, "ball.max_speed must be >= ball.base_speed")
	}
	if b.SpeedRatchet < 0 {
		errs = append(errs, "ball.speed_ratchet must be >= 0")
	}
	if b.MaxSpin < 0 {
		errs = append(errs, "ball.max_spin must be >= 0")
	}
	if b.SpinDecay < 0 || b.SpinDecay >= 1 {
		errs = append(errs, "ball.spin_decay must be in [0,1)")
	}
	if b.ServeCone < 0 || b.ServeCone >= 90 {
		errs = append(errs, "ball.serve_cone must be in [0,90)")
	}

	p := c.Paddle
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, "paddle.width and paddle.height must be > 0")
	}
	if p.Height >= c.Arena.Height {
		errs = append(errs, "paddle.height must be smaller than arena.height")
	}
	if p.Speed <= 0 {
		errs = append(errs, "paddle.speed must be > 0")
	}
	if p.HoldTicks < 0 {
		errs = append(errs, "paddle.hold_ticks must be >= 0")
	}

	g := c.Blocks
	if g.Cols < 1 || g.Rows < 1 {
		errs = append(errs, "blocks.cols and blocks.rows must be >= 1")
	}
	if g.CellW <= g.Gap {
		errs = append(errs, "blocks.cell_w must be larger than blocks.gap")
	}
	if g.HP < 1 {
		errs = append(errs, "blocks.hp must be >= 1")
	}
	if c.Arena.Height-2*g.MarginY <= 0 {
		errs = append(errs, "blocks.margin_y leaves no room for rows")
	}
	if 2*(g.EdgeInset+float64(g.Cols)*g.CellW) >= c.Arena.Width {
		errs = append(errs, "blocks grids overlap the arena midline")
	}

	if c.Gameplay.WinScore < 0 {
		errs = append(errs, "gameplay.win_score must be >= 0")
	}
	if c.CPU.Catchup < 0 {
		errs = append(errs, "cpu.catchup must be >= 0")
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, "difficulty.progression.type must be one of: score, time, none")
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, "difficulty.initial_level must be in [0,1]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
