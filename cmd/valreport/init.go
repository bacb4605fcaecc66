package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/nao1215/valreport/internal/report"
	"github.com/spf13/cobra"
)

//go:embed templates/report.yaml
var dataTemplate embed.FS

// dataFileName is the default data file name.
const dataFileName = "report.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an editable report data file",
		Long: `Initialize writes a report data file in the current directory.

The generated file contains the built-in Taiwan market sample with comments
describing every field. Edit the values and render it with
"valreport generate --data report.yaml".

Examples:
  # Create report.yaml in current directory
  valreport init

  # Create the data file at a specific path
  valreport init -o data/taiex.yaml

  # Force overwrite existing file
  valreport init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", dataFileName,
		"Output file path for the data file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing data file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("data file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := dataTemplate.ReadFile("templates/report.yaml")
	if err != nil {
		return fmt.Errorf("failed to read data template: %w", err)
	}

	if err := report.WriteFile(outputPath, content); err != nil {
		return fmt.Errorf("data file not written: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created data file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to set:")
	fmt.Fprintln(out, "  - Report and header titles")
	fmt.Fprintln(out, "  - The headline metric and its status")
	fmt.Fprintln(out, "  - The history chart labels and values")
	fmt.Fprintf(out, "\nThen run: valreport generate --data %s\n", outputPath)

	return nil
}
