// Package main provides the entry point for the valreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for valreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valreport",
		Short: "Render valuation indicators into a static HTML report",
		Long: `valreport turns a small set of valuation indicator values into a single
self-contained HTML report with a headline metric and a historical line chart.

Without a data file it renders the built-in Taiwan market sample.
Use "valreport init" to write an editable data file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewInspectCmd())
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
