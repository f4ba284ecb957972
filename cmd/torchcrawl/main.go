// Package main is the entry point for torchcrawl.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "torchcrawl",
	Short: "A turn-based dungeon crawl lit by a single torch",
	Long: `torchcrawl generates a dungeon of rooms and corridors, populates it with
monsters and lets you explore it one turn at a time in the terminal.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	registerConfigFlags(rootCmd)
	rootCmd.AddCommand(generateCmd)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Telemetry stays off unless an endpoint ends up configured.
func setupOTelEnv() {
	if endpoint := os.Getenv("TORCHCRAWL_OTLP_ENDPOINT"); endpoint != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	// Honeycomb: the .env file may hold an unexpanded variable reference, so
	// the header is built here
	apiKey := os.Getenv("HONEYCOMB_TORCHCRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_TORCHCRAWL_DATASET")
	if dataset == "" {
		dataset = "torchcrawl"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
