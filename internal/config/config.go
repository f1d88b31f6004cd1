// Package config provides YAML-based configuration loading, validation and
// difficulty management for PongBlast.
package config

// PongBlastConfig contains all tunables for a match.
type PongBlastConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	CPU        CPUConfig        `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical play field. Rendering scales it to the terminal.
type ArenaConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	OutMargin float64 `yaml:"out_margin"` // Distance past a side edge at which the ball is out
}

// BallConfig defines the ball flight model.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	BaseSpeed    float64 `yaml:"base_speed"`    // Units per second at serve
	MaxSpeed     float64 `yaml:"max_speed"`     // Upper bound for ratcheting
	SpeedRatchet float64 `yaml:"speed_ratchet"` // Added on each paddle contact
	MaxSpin      float64 `yaml:"max_spin"`
	SpinDecay    float64 `yaml:"spin_decay"` // Multiplier applied once per frame
	SpinGain     float64 `yaml:"spin_gain"`  // Fraction of paddle velocity turned into spin
	ServeCone    int     `yaml:"serve_cone"` // Max serve angle from horizontal, degrees
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`      // Units per second
	Clearance float64 `yaml:"clearance"`  // Gap in front of the block grid
	HoldTicks int     `yaml:"hold_ticks"` // Ticks a key press keeps the paddle moving
}

// BlocksConfig defines each side's destructible grid.
type BlocksConfig struct {
	Cols      int     `yaml:"cols"`
	Rows      int     `yaml:"rows"`
	CellW     float64 `yaml:"cell_w"`
	EdgeInset float64 `yaml:"edge_inset"`
	MarginY   float64 `yaml:"margin_y"`
	Gap       float64 `yaml:"gap"`
	HP        int     `yaml:"hp"`
	NudgeMinX float64 `yaml:"nudge_min_x"` // Minimum outward horizontal speed after a block hit
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	ScoreOnOut bool `yaml:"score_on_out"` // Award a point to the opponent when the ball goes out
	WinScore   int  `yaml:"win_score"`    // 0 = endless
}

// CPUConfig defines the follow-ball opponent.
type CPUConfig struct {
	Catchup float64 `yaml:"catchup"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PongBlastConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
