package main

import (
	"fmt"
	"os"
	"path/filepath"

	"plens/internal/commands"
	"plens/internal/config"
)

func main() {
	// Create config directory if it doesn't exist
	configDir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	// Load config, applying environment overrides
	cfg, err := config.Load(filepath.Join(configDir, "config.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Execute root command
	if err := commands.Execute(cfg, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
