package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	cli "github.com/searchbot/searchbot/cmd/searchbot"
	"github.com/searchbot/searchbot/internal/config"
	"github.com/searchbot/searchbot/internal/defaults"
)

//go:embed etc/searchbot.yaml
var embeddedConfig []byte

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	c, err := config.LoadFromBytes(embeddedConfig)
	if err != nil {
		fmt.Printf("Failed to load embedded config: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := defaults.EnsureDataDir()
	if err != nil {
		fmt.Printf("Failed to initialize data directory: %v\n", err)
		os.Exit(1)
	}

	// A searchbot.yaml in the data directory overrides the embedded defaults.
	c, err = config.LoadFileOver(c, filepath.Join(dataDir, "searchbot.yaml"))
	if err != nil {
		fmt.Printf("Failed to load config file: %v\n", err)
		os.Exit(1)
	}

	if err := cli.SetupRootCmd(&c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
