package report

import (
	"encoding/json"
	"fmt"

	"github.com/nao1215/valreport/internal/model"
)

// JSONRenderer outputs the validated report data as indented JSON.
// This format is designed for tool integration, and the output can be fed
// back to the generator as a data file.
type JSONRenderer struct {
	options
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(opts ...Option) *JSONRenderer {
	return &JSONRenderer{options: newOptions(opts)}
}

// Render returns data as JSON with a trailing newline.
func (r *JSONRenderer) Render(data *model.ReportData) (string, error) {
	if err := r.validate(data); err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render json report: %w", err)
	}
	return string(append(b, '\n')), nil
}
