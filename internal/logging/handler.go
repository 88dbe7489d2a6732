package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler fans records out to every handler enabled for their level.
type teeHandler struct {
	handlers []slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, r.Level) {
			errs = append(errs, hh.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &teeHandler{handlers: make([]slog.Handler, len(h.handlers))}
	for i, hh := range h.handlers {
		next.handlers[i] = hh.WithAttrs(attrs)
	}
	return next
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	next := &teeHandler{handlers: make([]slog.Handler, len(h.handlers))}
	for i, hh := range h.handlers {
		next.handlers[i] = hh.WithGroup(name)
	}
	return next
}
