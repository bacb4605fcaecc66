package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/nao1215/valreport/internal/model"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// htmlTemplate is parsed once; a parse failure is a build defect.
var htmlTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

// HTMLRenderer outputs reports as a single static HTML5 document.
//
// Free text is escaped by html/template. The chart series are encoded with
// encoding/json and embedded as array literals, which keeps label order and
// the shortest exact form of every value (281.2 stays 281.2).
type HTMLRenderer struct {
	options
}

// htmlView is the template input. Free text is passed through as given and
// escaped by the template; numbers and series are preformatted.
type htmlView struct {
	Lang           string
	ReportTitle    string
	HeaderTitle    string
	Subtitle       string
	MainMetric     string
	Status         string
	Description    string
	HistoryHeading string
	HistoryCaption string
	DatasetLabel   template.JS
	Labels         template.JS
	Values         template.JS
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(opts ...Option) *HTMLRenderer {
	return &HTMLRenderer{options: newOptions(opts)}
}

// Render returns the HTML document for data.
func (r *HTMLRenderer) Render(data *model.ReportData) (string, error) {
	if err := r.validate(data); err != nil {
		return "", err
	}

	view, err := r.newView(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.String(), nil
}

// newView converts data into template input.
func (r *HTMLRenderer) newView(data *model.ReportData) (*htmlView, error) {
	labelsJS, err := jsLiteral(data.HistoryChart.Labels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history_chart.labels: %w", err)
	}
	valuesJS, err := jsLiteral(data.HistoryChart.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history_chart.values: %w", err)
	}
	datasetJS, err := jsLiteral(datasetLabel)
	if err != nil {
		return nil, err
	}

	return &htmlView{
		Lang:           r.language,
		ReportTitle:    data.ReportTitle,
		HeaderTitle:    data.HeaderTitle,
		Subtitle:       data.Hero.Subtitle,
		MainMetric:     formatNumber(*data.Hero.MainMetric),
		Status:         data.Hero.Status,
		Description:    data.Hero.Description,
		HistoryHeading: historyHeading,
		HistoryCaption: historyCaption,
		DatasetLabel:   datasetJS,
		Labels:         labelsJS,
		Values:         valuesJS,
	}, nil
}

// jsLiteral encodes v as JSON for use as a JavaScript literal inside a
// <script> element. encoding/json escapes <, > and & as well as U+2028 and
// U+2029, so the result cannot close the script element.
func jsLiteral(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil //nolint:gosec // Output of json.Marshal is a safe JS literal
}
