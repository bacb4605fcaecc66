package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nao1215/valreport/internal/inspect"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <report.html>",
		Short: "Extract the report data from a generated HTML report",
		Long: `Inspect parses a generated HTML report and prints the data it was rendered
from, including the chart labels and values decoded from the embedded script.

The YAML output is a valid data file, so a report can be regenerated from it.

Examples:
  # Print the data of report.html as YAML
  valreport inspect report.html

  # Print it as JSON
  valreport inspect --json report.html

  # Recover a data file from an existing report
  valreport inspect report.html > report.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runInspectCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output JSON instead of YAML")

	return cmd
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	result, err := inspect.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", args[0], err)
	}

	data, err := result.ReportData()
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}
