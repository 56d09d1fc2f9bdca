// Package main provides splitdemo, a command line tool for split-pane layouts.
//
// Usage:
//
//	splitdemo run [--layout FILE] [--host tcell|tea]   Run an interactive layout
//	splitdemo solve --layout FILE [--width N] [--height N]
//	splitdemo validate --layout FILE [--fix]
//	splitdemo version
//
// Layout files are TOML, YAML or JSON, chosen by extension.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-splitpane/internal/debug"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logPath string

	root := &cobra.Command{
		Use:           "splitdemo",
		Short:         "Run, solve and validate split-pane layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logPath == "" {
				return nil
			}
			return debug.Init(logPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}
	root.PersistentFlags().StringVar(&logPath, "log", "", "write debug logs to `file` (overrides "+debug.EnvVar+")")

	root.AddCommand(
		newRunCmd(),
		newSolveCmd(),
		newValidateCmd(),
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
			fmt.Fprintf(cmd.OutOrStdout(), "splitdemo version %s\n", version)
		},
	}
}
