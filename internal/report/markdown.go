package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/valreport/internal/model"
)

// MarkdownRenderer outputs reports in GitHub Flavored Markdown.
// The history chart becomes a two-column table in chronological order.
//
// Free text is HTML-escaped because Markdown viewers render inline HTML.
type MarkdownRenderer struct {
	options
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(opts ...Option) *MarkdownRenderer {
	return &MarkdownRenderer{options: newOptions(opts)}
}

// Render returns the Markdown document for data.
func (r *MarkdownRenderer) Render(data *model.ReportData) (string, error) {
	if err := r.validate(data); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	r.writeHeader(md, data)
	r.writeHero(md, data)
	r.writeHistory(md, data)
	r.writeFooter(md, data)

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("failed to render markdown report: %w", err)
	}
	return buf.String(), nil
}

// writeHeader writes the report title.
func (r *MarkdownRenderer) writeHeader(md *markdown.Markdown, data *model.ReportData) {
	md.H1(markdownText(data.ReportTitle))
	md.PlainText("")
}

// writeHero writes the headline metric section.
func (r *MarkdownRenderer) writeHero(md *markdown.Markdown, data *model.ReportData) {
	md.H2(markdownText(data.Hero.Subtitle))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Status"},
		Rows: [][]string{
			{"**" + formatNumber(*data.Hero.MainMetric) + "%**", tableCell(data.Hero.Status)},
		},
	})
	md.PlainText("")

	md.PlainText(markdownText(data.Hero.Description))
	md.PlainText("")
}

// writeHistory writes the history series as a table.
// Unbalanced series are padded with "-" so no point is dropped.
func (r *MarkdownRenderer) writeHistory(md *markdown.Markdown, data *model.ReportData) {
	md.H2(historyHeading)
	md.PlainText("")
	md.PlainText(historyCaption)
	md.PlainText("")

	chart := data.HistoryChart
	rows := make([][]string, chart.Len())
	for i := range rows {
		label, value := "-", "-"
		if i < len(chart.Labels) {
			label = tableCell(chart.Labels[i])
		}
		if i < len(chart.Values) {
			value = formatNumber(chart.Values[i])
		}
		rows[i] = []string{label, value}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Period", datasetLabel},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (r *MarkdownRenderer) writeFooter(md *markdown.Markdown, data *model.ReportData) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%s*", markdownText(data.HeaderTitle))
}

// markdownText escapes free text.
func markdownText(s string) string {
	return html.EscapeString(s)
}

// tableCell escapes free text for use inside a table cell.
func tableCell(s string) string {
	return strings.ReplaceAll(markdownText(s), "|", `\|`)
}
