// Package log provides the application logger, built on top of the standard
// slog package.
//
// Report data carries long free-text fields (descriptions, status lines in
// CJK text) that make debug output unreadable when logged verbatim. The
// CompactHandler wraps any slog.Handler and shortens string attributes to a
// fixed number of runes, and replaces newlines so every record stays on one
// line.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("rendering", "description", data.Hero.Description)
//	slog.SetDefault(logger)
package log
