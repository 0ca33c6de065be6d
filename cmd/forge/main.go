// Package main provides the entry point for the Character Forge HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Character Forge HTTP API Server",
	Long:  "Character Forge generates Elder Scrolls characters - custom classes, backstories, names, portraits, and adventure guides - via REST API backed by an LLM provider.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
