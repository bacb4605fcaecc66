// Package main provides the entry point for the valreport CLI.
//
// valreport renders a valuation indicator dataset into a self-contained
// HTML report with a historical line chart.
//
// Usage:
//
//	valreport generate
//	valreport generate --data taiex.yaml -o out/report.html
//	valreport inspect report.html
//
// See --help for all available options.
package main

// main is the entry point for valreport.
func main() {
	Execute()
}
