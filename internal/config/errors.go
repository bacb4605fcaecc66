package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and allow callers to use
// errors.Is() for programmatic handling.
var (
	// ErrEmptyOutput is returned when no output path is configured.
	ErrEmptyOutput = errors.New("invalid output: path must not be empty")

	// ErrInvalidFormat is returned when the report format is not one of
	// html, markdown or json.
	ErrInvalidFormat = errors.New("invalid format: must be html, markdown or json")

	// ErrInvalidLanguage is returned when the document language is not a
	// well-formed BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language: must be a BCP 47 tag such as zh-Hant")
)
