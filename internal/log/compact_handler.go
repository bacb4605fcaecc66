package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMaxRunes is the longest string attribute value, in runes, that is
// logged unchanged.
const DefaultMaxRunes = 80

// Ellipsis is appended to values that were shortened.
const Ellipsis = "…"

// CompactHandler wraps an slog.Handler and shortens string attribute values.
// Values longer than maxRunes are cut on a rune boundary and suffixed with
// Ellipsis. Newlines and carriage returns are replaced with spaces.
type CompactHandler struct {
	handler  slog.Handler
	maxRunes int
}

// NewCompactHandler creates a new CompactHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A maxRunes of zero or
// less selects DefaultMaxRunes.
func NewCompactHandler(handler slog.Handler, maxRunes int) *CompactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxRunes
	}
	return &CompactHandler{handler: handler, maxRunes: maxRunes}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *CompactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle compacts the record's attributes and passes it to the underlying handler.
func (h *CompactHandler) Handle(ctx context.Context, r slog.Record) error {
	compacted := slog.NewRecord(r.Time, r.Level, h.compact(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		compacted.AddAttrs(h.compactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, compacted)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	compacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		compacted[i] = h.compactAttr(a)
	}
	return &CompactHandler{handler: h.handler.WithAttrs(compacted), maxRunes: h.maxRunes}
}

// WithGroup returns a new handler with the given group name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{handler: h.handler.WithGroup(name), maxRunes: h.maxRunes}
}

// compactAttr compacts a single attribute, recursively handling groups.
func (h *CompactHandler) compactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		compacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			compacted[i] = h.compactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(compacted...)}
	case slog.KindString:
		return slog.String(a.Key, h.compact(a.Value.String()))
	default:
		return a
	}
}

// compact flattens newlines and shortens s to maxRunes.
func (h *CompactHandler) compact(s string) string {
	if strings.ContainsAny(s, "\r\n") {
		s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	}
	if utf8.RuneCountInString(s) <= h.maxRunes {
		return s
	}

	n := 0
	for i := range s {
		if n == h.maxRunes {
			return s[:i] + Ellipsis
		}
		n++
	}
	return s
}

// NewLogger creates a new slog.Logger writing compacted text records.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	textHandler := slog.NewTextHandler(w, handlerOptions(verbose))
	return slog.New(NewCompactHandler(textHandler, DefaultMaxRunes))
}

// NewJSONLogger creates a new slog.Logger writing compacted JSON records.
// Useful when the CLI is driven by another program.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, handlerOptions(verbose))
	return slog.New(NewCompactHandler(jsonHandler, DefaultMaxRunes))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
