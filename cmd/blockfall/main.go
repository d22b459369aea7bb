// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                - Play (same as "blockfall play")
//	blockfall play           - Play the game
//	blockfall list           - List available games
//	blockfall config         - Print the effective configuration as YAML
//	blockfall sim            - Run the game headless and print the final screen
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blockfall",
		Short: "Blockfall - a falling-block puzzle in your terminal",
		Long: `Blockfall drops pieces onto a 10x20 board. Shift and rotate them,
fill rows to clear them, and keep the stack below the top.

Available commands:
  play     - Play the game (default)
  list     - Show all available games
  config   - Print the effective configuration
  sim      - Run a headless simulation

Examples:
  blockfall
  blockfall play --seed 42
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall sim --steps 600 --input aawws`,
		SilenceUsage: true,
		RunE:         runPlay,
	}

	root.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newSimCmd())
	return root
}

// setup loads the configuration, builds the logger and hands both to the
// game package. The returned function closes the log file.
func setup() (config.BlockfallConfig, *log.Logger, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "blockfall",
	})
	if err != nil {
		return config.BlockfallConfig{}, nil, nil, err
	}

	cfg, src, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		closeLog()
		return config.BlockfallConfig{}, nil, nil, err
	}
	logger.Debug("config loaded", "source", src, "rows", cfg.Board.Rows, "columns", cfg.Board.Columns)

	blockfall.SetConfig(cfg)
	blockfall.SetLogger(logger)
	return cfg, logger, closeLog, nil
}
