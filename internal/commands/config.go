package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long:  `Display the configuration file location and the resolved settings, including environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		color.New(color.FgCyan, color.Bold).Println("Configuration")
		fmt.Printf("\tfile:      %s\n", filepath.Join(configDir, "config.yaml"))
		fmt.Printf("\tmodel:     %s\n", globalConfig.Model)
		fmt.Printf("\tbase URL:  %s\n", globalConfig.BaseURL)
		fmt.Printf("\ttimeout:   %ds\n", globalConfig.TimeoutSeconds)
		fmt.Printf("\tdataset:   %s\n", globalConfig.DataPath)
		fmt.Printf("\thistory:   %s\n", globalConfig.HistoryPath)

		if globalConfig.APIKey == "" {
			color.Yellow("\tAPI key:   not set (export GEMINI_API_KEY)\n")
		} else {
			fmt.Printf("\tAPI key:   set (%d characters)\n", len(globalConfig.APIKey))
		}

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(configDir, "config.yaml")
		if err := globalConfig.Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
