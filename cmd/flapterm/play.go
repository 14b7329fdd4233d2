package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flapterm/flapterm/internal/core"
	"github.com/flapterm/flapterm/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  flapterm play
  flapterm play --seed 42 --fps 30`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := core.DefaultRuntimeConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
