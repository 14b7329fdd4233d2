package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flapterm/flapterm/internal/config"
	"github.com/flapterm/flapterm/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each connection gets its own independent game session sized to its
terminal. Settings come from a YAML file (--config, then
~/.flapterm/server.yaml, then ./server.yaml); flags set on the command
line override the file.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flapterm/host_key

Examples:
  flapterm serve                   # Listen on :23234
  flapterm serve --ssh :2222
  flapterm serve --config ./server.yaml

Users connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to server settings YAML")
}

func runServe(cmd *cobra.Command, args []string) {
	settings, err := config.LoadServerSettings(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	if flagSSHAddr != "" {
		settings.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		settings.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		settings.IdleTimeoutMinutes = flagIdleTimeout
	}
	if cmd.Flags().Changed("fps") {
		settings.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flapterm SSH server on %s\n", settings.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
