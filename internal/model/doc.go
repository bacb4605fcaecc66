// Package model defines the input data of a valuation report.
//
// ReportData is a plain value object: a title, a headline (hero) metric with
// its description, and a chronological history series. It carries yaml and
// json tags so the same structure can be loaded from a data file or built in
// code with SampleReportData.
//
// Validation lives here rather than in the renderers so that every output
// format (HTML, Markdown, JSON) rejects the same inputs with the same errors.
package model
