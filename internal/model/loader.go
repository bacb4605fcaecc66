package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadReportData reads a ReportData from a YAML or JSON file.
// JSON is decoded with the YAML decoder, which accepts it as a subset.
// The result is not validated; call Validate before rendering.
func LoadReportData(path string) (*ReportData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedDataFormat)
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided data path is intentional
	if err != nil {
		return nil, err
	}
	return ParseReportData(data)
}

// ParseReportData decodes a ReportData from YAML or JSON bytes.
func ParseReportData(data []byte) (*ReportData, error) {
	var rd ReportData
	if err := yaml.Unmarshal(data, &rd); err != nil {
		return nil, fmt.Errorf("failed to parse report data: %w", err)
	}
	return &rd, nil
}
