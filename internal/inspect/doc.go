// Package inspect reads a generated HTML report back into structured data.
//
// The parser walks the document with golang.org/x/net/html, collects the
// visible report fields, and decodes the label and value arrays embedded in
// the chart script. It is used by the "inspect" command and by tests that
// check a report survives a render/parse round trip without losing order or
// precision.
package inspect
