package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/games/pongblast"
	"github.com/vovakirdan/pongblast/internal/platform/tui"
	"github.com/vovakirdan/pongblast/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVersus     bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a match",
	Long: `Start a PongBlast match. The default mode is player vs CPU.

Controls:
  W/S        - Move left paddle (Up/Down arrows also work vs CPU)
  Up/Down    - Move right paddle (versus mode)
  Space      - Serve
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save screenshot to ~/.pongblast/screenshots
  Ctrl+Y     - Copy the current frame to the clipboard
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options (serve speed):
  easy   - Start at base speed, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pongblast play
  pongblast play pongblast_versus
  pongblast play --versus --difficulty hard
  pongblast play --config ./my-pongblast.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagVersus, "versus", false, "Two local players instead of vs CPU")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "pongblast"
	if flagVersus {
		gameID = "pongblast_versus"
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'pongblast list' to see available modes", err)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := tui.Run(game, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("pongblast: run match: %w", err)
	}
	return nil
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game package before any match is created.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("pongblast: unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}

	pongblast.SetConfigPath(flagConfig)
	pongblast.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
