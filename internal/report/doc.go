// Package report turns model.ReportData into report documents and writes
// them to disk.
//
// This package contains renderers for different output formats:
//   - HTMLRenderer: A self-contained HTML5 page with a Chart.js line chart
//   - MarkdownRenderer: GitHub Flavored Markdown with hero and history tables
//   - JSONRenderer: The validated input data as indented JSON
//
// Rendering and writing are separate steps. Renderers are pure: they validate
// the input, return the whole document as a string and never touch the file
// system, so a rejected input never leaves a file behind. WriteFile is the
// only place that performs I/O, and every failure there is reported as an
// *IOError.
package report
