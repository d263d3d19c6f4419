package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/searchbot/searchbot/internal/logging"
	"github.com/searchbot/searchbot/internal/server"
)

// ServeCmd runs the HTTP control surface.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			RunServe()
		},
	}
}

// RunServe starts the server and blocks until SIGINT/SIGTERM.
func RunServe() {
	if !verbose {
		logging.Disable()
	}

	c := effectiveConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal: %v - shutting down...\n", sig)
		cancel()
	}()

	fmt.Printf("Open http://localhost:%d in your browser\n", c.Port)
	if c.Failsafe.Enabled {
		fmt.Printf("Safety: move the mouse to the %s corner to stop automation\n", c.Failsafe.Corner)
	}

	if err := server.Run(ctx, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
