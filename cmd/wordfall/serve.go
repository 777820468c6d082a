package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game on the server's word pack.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordfall/host_key

Examples:
  wordfall serve                           # Listen on :23234 with auto-generated key
  wordfall serve --ssh :2222 --pack en     # Listen on port 2222, English words
  wordfall serve --host-key ./my_host_key  # Use specific host key
  wordfall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd.Flags())
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("wordfall-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	setup, err := loadSetup(logger, false)
	if err != nil {
		return err
	}

	game := setup.cfg
	if flagSpeed > 0 {
		game.Speed.WordSpeed = flagSpeed
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Pack = setup.pack
	cfg.Game = game

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting wordfall SSH server on %s (pack %s)\n", cfg.Address, cfg.Pack.ID)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
