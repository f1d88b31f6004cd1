package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongblast/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the configuration",
	Long: `Print the embedded default configuration as YAML, or validate a file.

Config files are searched in this order:
  1. --config path
  2. ~/.pongblast/configs/pongblast.yaml
  3. ./configs/pongblast.yaml
  4. built-in defaults

Examples:
  pongblast config > ~/.pongblast/configs/pongblast.yaml
  pongblast config --validate ./my-pongblast.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate a config file instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagValidate == "" {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.Load(flagValidate)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (arena %gx%g, win score %d)\n",
		flagValidate, cfg.Arena.Width, cfg.Arena.Height, cfg.Gameplay.WinScore)
	return nil
}
