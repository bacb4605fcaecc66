package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/nao1215/valreport/internal/config"
	"github.com/nao1215/valreport/internal/model"
)

// Fixed text of the history section. The chart describes one indicator, so
// these are part of the report layout rather than the input data.
const (
	historyHeading = "歷史的軌跡：一場估值的雲霄飛車"
	historyCaption = "將當前指標置於歷史長河中，我們發現自2020年後，市場估值似乎進入了一個前所未見的「新常態」。"
	datasetLabel   = "台灣巴菲特指標 (%)"
)

// Renderer defines the interface for report output.
// Implementations validate the data and return the complete document.
type Renderer interface {
	// Render returns the report for data, or an error if data is incomplete.
	// Calling Render twice with identical data returns identical output.
	Render(data *model.ReportData) (string, error)
}

// options holds settings shared by all renderers.
type options struct {
	language string
	policy   model.LengthPolicy
	logger   *slog.Logger
}

// Option configures a renderer.
type Option func(*options)

// WithLanguage sets the document language tag. Only the HTML renderer
// uses it.
func WithLanguage(tag string) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithLengthPolicy sets how mismatched chart series are treated.
func WithLengthPolicy(p model.LengthPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used for warnings such as accepted length
// mismatches.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		language: config.DefaultLanguage,
		policy:   model.StrictLength,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validate runs model validation under the configured policy and logs
// accepted mismatches.
func (o *options) validate(data *model.ReportData) error {
	if err := data.Validate(o.policy); err != nil {
		return err
	}
	if !data.HistoryChart.Balanced() {
		o.logger.Warn("history chart labels and values differ in length; rendering both series in full",
			"labels", len(data.HistoryChart.Labels),
			"values", len(data.HistoryChart.Values),
		)
	}
	return nil
}

// NewRenderer returns the renderer for the given format.
func NewRenderer(format config.Format, opts ...Option) (Renderer, error) {
	switch format {
	case config.FormatHTML:
		return NewHTMLRenderer(opts...), nil
	case config.FormatMarkdown:
		return NewMarkdownRenderer(opts...), nil
	case config.FormatJSON:
		return NewJSONRenderer(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// formatNumber formats v with the fewest digits that parse back to v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
