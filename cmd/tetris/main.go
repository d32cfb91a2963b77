// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris play              - Play in the full-screen interface
//	tetris classic           - Play with plain text output
//	tetris list              - List game modes
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Load configuration from a YAML file
//	--log-file <path>   - Write logs to a file (default: no logs)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle for the terminal.

Available commands:
  play     - Full-screen game with colors, pause and restart
  classic  - Plain text game, one full board per move
  list     - Show game modes
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --difficulty hard
  tetris classic --difficulty 7
  tetris config --config ./my-tetris.yaml`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the session logger and a function that closes its file.
// Without --log-file everything is discarded: the game owns the terminal.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger.With("session", uuid.NewString()), func() { f.Close() }, nil
}

// loadConfig loads the configuration named by --config or found on the
// search path, and applies a --difficulty value on top.
func loadConfig(logger *log.Logger, difficulty string) (config.TetrisConfig, error) {
	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	logger.Info("config loaded", "source", source)

	if err := config.ParseDifficulty(difficulty, &cfg.Difficulty); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}

// seed returns --seed, or a clock-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
