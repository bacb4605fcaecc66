// Package config provides configuration structures and utilities for valreport.
// It defines the output destination and format, the document language, and
// the label/value length policy applied when rendering.
package config
