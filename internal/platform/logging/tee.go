package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler copies each record to the console handler and, when file output
// is configured, to the rolling JSON file. Each sink keeps its own level.
type teeHandler struct {
	sinks []slog.Handler
}

func newTeeHandler(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}

	return &teeHandler{sinks: sinks}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

//nolint:gocritic // slog.Handler passes records by value
func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, r.Level) {
			continue
		}

		if err := sink.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

func (h *teeHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		sinks[i] = fn(sink)
	}

	return &teeHandler{sinks: sinks}
}
