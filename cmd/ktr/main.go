package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ktr/internal/cli"
	"ktr/internal/cli/commands"
	"ktr/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ktr",
		Short:   "KnightsTour regression runner",
		Long:    `Regression-test orchestrator for the KnightsTour hardware design. Compiles and simulates testbenches in parallel against the Questa toolchain, classifies their logs, and verifies logic-tier tours against a recomputed solution.`,
		Version: version,
	}

	var flags cli.Flags

	cfg, err := config.Load(config.Flags{Number: -1})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmds, err := commands.NewCommands(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
