package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids"
	"github.com/vovakirdan/tui-roids/internal/platform/tui"
	"github.com/vovakirdan/tui-roids/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/A, Right/D  - Turn
  Up/W, Down/S     - Thrust forward / reverse
  Space            - Fire
  R                - Restart (after the ship is destroyed)
  Esc, Q/Ctrl+C    - Quit

Terminals report key presses but not releases; a key counts as released
when its auto-repeat stops.

Examples:
  roids play
  roids play roids --seed 7
  roids play --config ./my-roids.yaml --log-file /tmp/roids.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "roids"
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	roids.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'roids list' to see available games)", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "game", gameID, "cols", width, "rows", height, "fps", flagFPS)
	if err := tui.Run(game, cfg, tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
