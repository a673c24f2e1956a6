package main

import (
	"fmt"
	"os"

	"stt/internal/cli"
	"stt/internal/cli/commands"
	"stt/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "stt",
		Short:   "Singlish translator test suite",
		Long:    `An end-to-end test suite for a Singlish-to-Sinhala web translator. Drives the translator page through a real browser, types phonetic input character by character and asserts on the rendered Sinhala Unicode output.`,
		Version: version,
	}

	// Create initial config with defaults and env overrides
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
