// Package main provides the mediaview CLI for laying out and previewing
// media card scenarios.
//
// Usage:
//
//	mediaview layout [--format text|json|yaml] FILE...   Lay out scenario files
//	mediaview preview [--scale N] FILE                   Draw a scenario in the terminal
//	mediaview init [--force] FILE                        Write an example scenario
//	mediaview version                                    Print version information
//
// Scenario files are YAML (.yaml, .yml) or TOML (.toml).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/mediaview/internal/debug"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var debugLog string

	root := &cobra.Command{
		Use:           "mediaview",
		Short:         "Lay out media cards: attachment, title, description and overlay icon",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugLog == "" {
				return nil
			}
			return debug.Init(debugLog)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "append debug records to this file (overrides "+debug.EnvVar+")")

	root.AddCommand(
		newLayoutCmd(),
		newPreviewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mediaview version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
