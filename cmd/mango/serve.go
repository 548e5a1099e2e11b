package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Mango Snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu and its own game.
Scores are stored per-server (all users share the same record).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mango/host_key

Examples:
  mango serve                           # Listen on :23234 with auto-generated key
  mango serve --ssh :2222               # Listen on port 2222
  mango serve --host-key ./my_host_key  # Use specific host key
  mango serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Snake = snakeCfg
	cfg.Logger = logger.WithPrefix("mango-ssh")
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting Mango Snake SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	if !server.HasStore() {
		fmt.Println("Scores database unavailable: records will not be kept")
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
