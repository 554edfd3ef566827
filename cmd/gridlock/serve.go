package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlock/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Starts an SSH server so people can play over the network:

  ssh -p 23234 yourhost

Each connection gets its own menu and game session, sized to the
client's terminal. Scores are shared through the server's database.

Examples:
  gridlock serve
  gridlock serve --ssh :2222
  gridlock serve --host-key /etc/gridlock/host_key --db /var/lib/gridlock/scores.db`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddress,
		HostKeyPath: flagHostKeyPath,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
