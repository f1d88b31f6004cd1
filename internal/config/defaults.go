package config

import (
	_ "embed"
)

//go:embed defaults/pongblast.yaml
var defaultPongBlastYAML []byte

// DefaultPongBlastConfig returns the hardcoded configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultPongBlastConfig() PongBlastConfig {
	return PongBlastConfig{
		Arena: ArenaConfig{
			Width:     800,
			Height:    600,
			OutMargin: 10,
		},
		Ball: BallConfig{
			Radius:       8,
			BaseSpeed:    260,
			MaxSpeed:     560,
			SpeedRatchet: 24,
			MaxSpin:      60,
			SpinDecay:    0.85,
			SpinGain:     0.10,
			ServeCone:    30,
		},
		Paddle: PaddleConfig{
			Width:     12,
			Height:    90,
			Speed:     420,
			Clearance: 16,
			HoldTicks: 8,
		},
		Blocks: BlocksConfig{
			Cols:      3,
			Rows:      5,
			CellW:     40,
			EdgeInset: 18,
			MarginY:   8,
			Gap:       2,
			HP:        3,
			NudgeMinX: 120,
		},
		Gameplay: GameplayConfig{
			ScoreOnOut: false,
			WinScore:   0,
		},
		CPU: CPUConfig{
			Catchup: 0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongBlastYAML
}
