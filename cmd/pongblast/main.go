// pongblast is a terminal Pong variant where each side defends a grid of
// destructible blocks.
//
// Usage:
//
//	pongblast list              - List available modes
//	pongblast play [mode]       - Play a match (default: vs CPU)
//	pongblast menu              - Pick a mode interactively
//	pongblast serve             - Start SSH server for remote play
//	pongblast config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible matches
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pongblast",
	Short: "PongBlast - Pong with destructible block walls",
	Long: `PongBlast is a terminal Pong variant. Each side defends a grid of
blocks behind its paddle; rallies and block hits earn points.

Available commands:
  list     - Show all available modes
  play     - Play a match directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  config   - Print the default YAML configuration

Examples:
  pongblast play
  pongblast play --versus
  pongblast play --difficulty hard --seed 42
  pongblast serve --ssh :2222
  pongblast config > ~/.pongblast/configs/pongblast.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("pongblast: --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger opens --log-file for local play. The alternate screen owns the
// terminal, so without a file logs are discarded.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "pongblast")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("pongblast: open log file: %w", err)
	}
	logger, err := newLogger(f, "pongblast")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
