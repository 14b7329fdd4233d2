// flapterm is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flapterm play    - Play in the local terminal
//	flapterm serve   - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapterm",
	Short: "Flappy Bird in your terminal",
	Long: `flapterm is a terminal arcade game: guide the bird through the
pipes, one flap at a time.

Examples:
  flapterm play
  flapterm play --seed 42
  flapterm serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
