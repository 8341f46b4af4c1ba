// roids is a vector asteroids game for the terminal, with headless runners
// for scripted simulation and PNG frame export.
//
// Usage:
//
//	roids list              - List available games
//	roids play [game]       - Play in the terminal (default: roids)
//	roids sim               - Run the autopilot headless and print a summary
//	roids frame             - Run the autopilot and save the last frame as PNG
//	roids config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Custom roids.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/games/roids"
	"github.com/vovakirdan/tui-roids/internal/logging"
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
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roids",
	Short: "Roids - vector asteroids in your terminal",
	Long: `Roids is a vector asteroids game: a ship on a wrapping field of
asteroids that split when shot.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  sim      - Headless autopilot run
  frame    - Export a frame as PNG
  config   - Print the default config

Examples:
  roids play
  roids play --seed 42 --config ./roids.yaml
  roids sim --ticks 3600 --profile cpu
  roids frame --ticks 300 --out frame.png`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		roids.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom roids config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(frameCmd)
}

// newLogger builds the logger for a command. Without --log-file, logs go to
// fallback; the terminal host passes io.Discard so the alt screen stays clean.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := logging.New(w, flagLogLevel, "roids")
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// resolveSeed turns the "random" seed 0 into a time-based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
