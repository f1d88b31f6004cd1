package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongblast/internal/platform/tui"
	"github.com/vovakirdan/pongblast/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start PongBlast in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B while paused or after game over to return to the menu.

Examples:
  pongblast menu
  pongblast menu --fps 30 --difficulty easy`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("pongblast: run menu: %w", err)
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		matchCfg := cfg
		if flagSeed == 0 {
			matchCfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, matchCfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("pongblast: run match: %w", err)
		}
		if !back {
			return nil
		}
	}
}
