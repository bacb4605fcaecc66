package model

import (
	"fmt"
	"math"
)

// LengthPolicy controls how Validate treats a history chart whose label and
// value series differ in length.
type LengthPolicy int

const (
	// StrictLength rejects mismatched series with a LengthMismatchError.
	StrictLength LengthPolicy = iota

	// LenientLength accepts mismatched series. Both series are still rendered
	// in full; nothing is truncated to make them line up.
	LenientLength
)

// String returns the policy name as used in configuration files.
func (p LengthPolicy) String() string {
	switch p {
	case StrictLength:
		return "strict"
	case LenientLength:
		return "lenient"
	default:
		return "unknown"
	}
}

// ReportData is the input of a single report render.
// It is built once by the caller and must not be modified while a render
// is in progress.
type ReportData struct {
	// ReportTitle is used for the document <title>.
	ReportTitle string `json:"report_title" yaml:"report_title"`

	// HeaderTitle is shown in the sticky navigation header.
	HeaderTitle string `json:"header_title" yaml:"header_title"`

	// Hero is the headline section with the main metric.
	Hero Hero `json:"hero" yaml:"hero"`

	// HistoryChart is the chronological series drawn as a line chart.
	HistoryChart HistoryChart `json:"history_chart" yaml:"history_chart"`
}

// Hero holds the headline metric and its description.
type Hero struct {
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// MainMetric is the headline percentage. A nil pointer means the field
	// was not provided, which is different from an actual 0%.
	MainMetric *float64 `json:"main_metric" yaml:"main_metric"`

	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
}

// HistoryChart holds the label and value series of the history chart.
// Labels[i] describes Values[i]; order is chronological.
type HistoryChart struct {
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// Float64 returns a pointer to v. It is a helper for building Hero values
// in code.
func Float64(v float64) *float64 {
	return &v
}

// Validate checks that every required field is present, that every number is
// finite and that the chart series are consistent under the given policy.
// Fields are checked in document order and the first missing one is reported.
func (d *ReportData) Validate(policy LengthPolicy) error {
	if d == nil {
		return &MissingFieldError{Field: "report"}
	}

	required := []struct {
		field   string
		present bool
	}{
		{"report_title", d.ReportTitle != ""},
		{"header_title", d.HeaderTitle != ""},
		{"hero.subtitle", d.Hero.Subtitle != ""},
		{"hero.main_metric", d.Hero.MainMetric != nil},
		{"hero.status", d.Hero.Status != ""},
		{"hero.description", d.Hero.Description != ""},
		{"history_chart.labels", d.HistoryChart.Labels != nil},
		{"history_chart.values", d.HistoryChart.Values != nil},
	}
	for _, r := range required {
		if !r.present {
			return &MissingFieldError{Field: r.field}
		}
	}

	if !isFinite(*d.Hero.MainMetric) {
		return &InvalidNumberError{Field: "hero.main_metric", Value: *d.Hero.MainMetric}
	}
	for i, v := range d.HistoryChart.Values {
		if !isFinite(v) {
			return &InvalidNumberError{Field: fmt.Sprintf("history_chart.values[%d]", i), Value: v}
		}
	}

	if policy == StrictLength && !d.HistoryChart.Balanced() {
		return &LengthMismatchError{
			Labels: len(d.HistoryChart.Labels),
			Values: len(d.HistoryChart.Values),
		}
	}
	return nil
}

// Balanced reports whether the label and value series have the same length.
func (c HistoryChart) Balanced() bool {
	return len(c.Labels) == len(c.Values)
}

// Len returns the number of points in the chart.
// For unbalanced series it is the length of the longer one.
func (c HistoryChart) Len() int {
	return max(len(c.Labels), len(c.Values))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
