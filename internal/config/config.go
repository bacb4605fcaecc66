package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/valreport/internal/model"
	"golang.org/x/text/language"
)

// Format is the output format of a report.
type Format string

const (
	// FormatHTML is a self-contained HTML5 document with a Chart.js chart.
	FormatHTML Format = "html"

	// FormatMarkdown is a GitHub Flavored Markdown summary with tables.
	FormatMarkdown Format = "markdown"

	// FormatJSON is the validated input data as indented JSON.
	FormatJSON Format = "json"
)

// Default configuration values.
const (
	// DefaultOutputPath is written in the current working directory.
	DefaultOutputPath = "report.html"

	// DefaultFormat is the HTML report.
	DefaultFormat = FormatHTML

	// DefaultLanguage is the lang attribute of the generated document.
	// The sample data and fixed headings are Traditional Chinese.
	DefaultLanguage = "zh-Hant"

	// AppName is the application name used for XDG directory paths.
	AppName = "valreport"
)

// Config holds all configuration options for valreport.
// It is populated from the optional config file first and CLI flags second,
// then passed to the renderer explicitly.
type Config struct {
	// OutputPath is the file the report is written to.
	// An existing file is overwritten.
	OutputPath string

	// DataFile is an optional YAML or JSON file holding the report data.
	// When empty, the built-in sample data is rendered.
	DataFile string

	// Format selects the renderer.
	Format Format

	// Language is the BCP 47 tag placed in <html lang>.
	Language string

	// AllowLengthMismatch switches the history chart length check from a hard
	// error to a logged warning. Series are never truncated either way.
	AllowLengthMismatch bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputPath: DefaultOutputPath,
		Format:     DefaultFormat,
		Language:   DefaultLanguage,
	}
}

// ApplyFile overlays the values set in a configuration file.
// Zero values in the file leave the current setting untouched.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.Output != "" {
		c.OutputPath = f.Output
	}
	if f.Format != "" {
		c.Format = Format(strings.ToLower(f.Format))
	}
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.Data != "" {
		c.DataFile = f.Data
	}
	if f.AllowLengthMismatch {
		c.AllowLengthMismatch = true
	}
}

// LengthPolicy returns the model policy matching AllowLengthMismatch.
func (c *Config) LengthPolicy() model.LengthPolicy {
	if c.AllowLengthMismatch {
		return model.LenientLength
	}
	return model.StrictLength
}

// XDGConfigDir returns the XDG config directory for valreport.
// On Linux: ~/.config/valreport
// On macOS: ~/Library/Application Support/valreport
// On Windows: %APPDATA%\valreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// The first problem found is returned.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return ErrEmptyOutput
	}

	switch c.Format {
	case FormatHTML, FormatMarkdown, FormatJSON:
	default:
		return ErrInvalidFormat
	}

	if _, err := language.Parse(c.Language); err != nil {
		return ErrInvalidLanguage
	}

	return nil
}
