package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/valreport/internal/model"
	"golang.org/x/net/html"
)

// Errors returned by Parse.
var (
	// ErrChartNotFound is returned when no inline script defines both the
	// labels and the data arrays of the history chart.
	ErrChartNotFound = errors.New("history chart data not found in document")

	// ErrInvalidMetric is returned when the hero metric is not a number
	// followed by a percent sign.
	ErrInvalidMetric = errors.New("hero metric is not a percentage")
)

var (
	labelsPattern = regexp.MustCompile(`\blabels:\s*\[`)
	dataPattern   = regexp.MustCompile(`\bdata:\s*\[`)
)

// Result contains everything extracted from a report document.
type Result struct {
	// Lang is the lang attribute of the <html> element.
	Lang string

	// Title is the text of the <title> element.
	Title string

	// HeaderTitle is the text of the navigation header.
	HeaderTitle string

	// Subtitle is the hero section heading.
	Subtitle string

	// MainMetricText is the hero metric as displayed, e.g. "281.2%".
	MainMetricText string

	// Status and Description are the hero paragraphs after the metric.
	Status      string
	Description string

	// Labels and Values are decoded from the chart script.
	Labels []string
	Values []float64

	// Scripts lists external script URLs.
	Scripts []string

	// Stylesheets lists external stylesheet URLs.
	Stylesheets []string
}

// Parse parses a report document.
func Parse(content io.Reader) (*Result, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scripts:     make([]string, 0),
		Stylesheets: make([]string, 0),
	}
	chartFound := false
	var chartErr error

	var walk func(*html.Node, bool)
	walk = func(n *html.Node, inHero bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html":
				result.Lang = getAttr(n, "lang")
			case "title":
				result.Title = textContent(n)
			case "h1":
				if result.HeaderTitle == "" {
					result.HeaderTitle = textContent(n)
				}
			case "section":
				inHero = getAttr(n, "id") == "hero"
			case "h2":
				if inHero {
					result.Subtitle = textContent(n)
				}
			case "p":
				if inHero {
					result.addHeroParagraph(textContent(n))
				}
			case "link":
				if getAttr(n, "rel") == "stylesheet" {
					result.Stylesheets = append(result.Stylesheets, getAttr(n, "href"))
				}
			case "script":
				if src := getAttr(n, "src"); src != "" {
					result.Scripts = append(result.Scripts, src)
				} else if !chartFound && chartErr == nil {
					chartFound, chartErr = result.parseChartScript(textContent(n))
					if chartErr != nil {
						return
					}
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inHero)
		}
	}
	walk(doc, false)

	if chartErr != nil {
		return nil, chartErr
	}
	if !chartFound {
		return nil, ErrChartNotFound
	}
	return result, nil
}

// addHeroParagraph assigns hero paragraphs in document order.
func (r *Result) addHeroParagraph(text string) {
	switch {
	case r.MainMetricText == "":
		r.MainMetricText = text
	case r.Status == "":
		r.Status = text
	case r.Description == "":
		r.Description = text
	}
}

// parseChartScript decodes the labels and data arrays from an inline script.
// The data array is searched for after the end of the labels array, so label
// text can never be mistaken for it. It reports false if the script does not
// define both.
func (r *Result) parseChartScript(script string) (bool, error) {
	labelsAt := labelsPattern.FindStringIndex(script)
	if labelsAt == nil {
		return false, nil
	}

	var labels []string
	labelsEnd, err := decodeArrayAt(script, labelsAt[1]-1, &labels)
	if err != nil {
		return false, fmt.Errorf("failed to decode chart labels: %w", err)
	}

	rest := script[labelsEnd:]
	dataAt := dataPattern.FindStringIndex(rest)
	if dataAt == nil {
		return false, nil
	}

	var values []float64
	if _, err := decodeArrayAt(rest, dataAt[1]-1, &values); err != nil {
		return false, fmt.Errorf("failed to decode chart data: %w", err)
	}

	r.Labels = labels
	r.Values = values
	return true, nil
}

// decodeArrayAt decodes the JSON array that starts at offset in s and
// returns the offset just past it. Anything after the array is ignored.
func decodeArrayAt(s string, offset int, v any) (int, error) {
	dec := json.NewDecoder(strings.NewReader(s[offset:]))
	if err := dec.Decode(v); err != nil {
		return 0, err
	}
	return offset + int(dec.InputOffset()), nil
}

// MainMetric parses the hero metric without its percent sign.
func (r *Result) MainMetric() (float64, error) {
	text, ok := strings.CutSuffix(r.MainMetricText, "%")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, r.MainMetricText)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, r.MainMetricText)
	}
	return v, nil
}

// ReportData converts the result back into report input.
func (r *Result) ReportData() (*model.ReportData, error) {
	metric, err := r.MainMetric()
	if err != nil {
		return nil, err
	}
	return &model.ReportData{
		ReportTitle: r.Title,
		HeaderTitle: r.HeaderTitle,
		Hero: model.Hero{
			Subtitle:    r.Subtitle,
			MainMetric:  model.Float64(metric),
			Status:      r.Status,
			Description: r.Description,
		},
		HistoryChart: model.HistoryChart{
			Labels: r.Labels,
			Values: r.Values,
		},
	}, nil
}

// textContent returns the trimmed text of n and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
