package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "screenpairs",
	Short: "CLI client for screenpairs",
	Long: `screenpairs - find the movies two actors made together

Queries a running screenpairsd server for actor suggestions,
shared filmographies, and precomputed popular pairings.

Run 'screenpairsd' to start the server daemon.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Load()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file for local commands (default: discovered)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("screenpairs {{.Version}}\n")
}
