// Package main provides the entry point for the assetscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for assetscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assetscan",
		Short: "Unused asset scanner for Flutter projects",
		Long: `assetscan audits the assets a Flutter project declares in pubspec.yaml.

It detects which declared assets are never referenced from Dart source code,
reports the wasted bytes, and can optionally delete unused assets and
recompress PNG/JPEG assets in place.

Reference detection is lexical: quoted literal paths in source are matched
against the declared asset list. Paths built at runtime are not detected.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
