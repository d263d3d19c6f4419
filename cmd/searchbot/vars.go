package cli

import (
	"github.com/spf13/cobra"

	"github.com/searchbot/searchbot/internal/config"
)

// Shared CLI flags (used across multiple command files)
var (
	portFlag int
	verbose  bool
)

// ServerConfig holds the loaded server configuration (set by main)
var ServerConfig *config.Config

// SetupRootCmd configures the root command with all subcommands and flags
func SetupRootCmd(c *config.Config) *cobra.Command {
	ServerConfig = c

	rootCmd := &cobra.Command{
		Use:   "searchbot",
		Short: "Searchbot - browser search automation",
		Long: `Searchbot types search terms into a browser's address bar via OS-level
input simulation, one term at a time, with a configurable delay between
searches. Chrome runs can rotate through a set of user profiles.

Just type 'searchbot' to start the HTTP control surface.
Use 'searchbot run' to execute a term file directly from the terminal.`,
		Run: func(cmd *cobra.Command, args []string) {
			RunServe()
		},
	}

	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "HTTP port (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(RunCmd())
	rootCmd.AddCommand(ProfilesCmd())

	return rootCmd
}

// effectiveConfig applies flag overrides on top of the loaded config.
func effectiveConfig() config.Config {
	c := *ServerConfig
	if portFlag > 0 {
		c.Port = portFlag
	}
	return c
}
