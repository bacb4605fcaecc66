package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/valreport/internal/config"
	"github.com/nao1215/valreport/internal/log"
	"github.com/nao1215/valreport/internal/model"
	"github.com/nao1215/valreport/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the valuation report",
		Long: `Generate renders report data into a single file.

The HTML report is self-contained except for the Tailwind CSS, Chart.js and
Noto Sans TC references it loads from their CDNs when opened in a browser.
An existing output file is overwritten.

Examples:
  # Render the built-in sample to ./report.html
  valreport generate

  # Render your own data
  valreport generate --data taiex.yaml -o out/report.html

  # Markdown summary instead of HTML
  valreport generate --format markdown -o report.md

  # Render even if the chart has more labels than values
  valreport generate --data draft.yaml --allow-mismatch

Configuration file (.valreport) example:
  output: build/report.html
  format: html
  lang: zh-Hant
  data: taiex.yaml
  allow_length_mismatch: false`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("data", "d", "",
		"Report data file (.yaml, .yml or .json); the built-in sample is used when empty")
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("format", "F", string(config.DefaultFormat),
		"Report format: html, markdown or json")
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Document language tag for the HTML report")
	cmd.Flags().Bool("allow-mismatch", false,
		"Render charts whose label and value counts differ instead of failing")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .valreport in current or home directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	data, err := loadData(cfg, logger)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(cfg.Format,
		report.WithLanguage(cfg.Language),
		report.WithLengthPolicy(cfg.LengthPolicy()),
		report.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("rendering report",
		"title", data.ReportTitle,
		"format", string(cfg.Format),
		"points", data.HistoryChart.Len(),
		"output", cfg.OutputPath,
	)

	if err := report.Generate(renderer, data, cfg.OutputPath); err != nil {
		var ioErr *report.IOError
		if errors.As(err, &ioErr) {
			return fmt.Errorf("report not written: %w", err)
		}
		return fmt.Errorf("invalid report data: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report '%s' generated.\n", cfg.OutputPath)
	return nil
}

// loadData returns the data file contents, or the sample when no file is set.
func loadData(cfg *config.Config, logger *slog.Logger) (*model.ReportData, error) {
	if cfg.DataFile == "" {
		logger.Debug("no data file given, using sample data")
		return model.SampleReportData(), nil
	}

	logger.Debug("loading report data", "path", cfg.DataFile)
	data, err := model.LoadReportData(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file %s: %w", cfg.DataFile, err)
	}
	return data, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and flags.
// Flags given on the command line win over the config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; a discovered one is optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(cf)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		if cfg.DataFile, err = flags.GetString("data"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		format, err := flags.GetString("format")
		if err != nil {
			return nil, err
		}
		cfg.Format = config.Format(strings.ToLower(format))
	}
	if flags.Changed("lang") {
		if cfg.Language, err = flags.GetString("lang"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("allow-mismatch") {
		if cfg.AllowLengthMismatch, err = flags.GetBool("allow-mismatch"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
