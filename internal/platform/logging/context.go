package logging

import (
	"context"
	"log/slog"
)

// Attribute keys for the ids every request-scoped record carries.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
)

type loggerKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the request logger, or the process default when ctx
// carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return defaultLogger
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithRequestID tags the context logger with the inbound request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withID(ctx, KeyRequestID, requestID)
}

// WithCorrelationID tags the context logger with the correlation id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withID(ctx, KeyCorrelationID, correlationID)
}

// WithTraceID tags the context logger with the active trace id so log lines
// can be joined with the spans exported for the same request.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withID(ctx, KeyTraceID, traceID)
}

func withID(ctx context.Context, key, id string) context.Context {
	if id == "" {
		return ctx
	}

	return WithContext(ctx, FromContext(ctx).With(slog.String(key, id)))
}

// SetDefault installs logger as the fallback for contexts without a logger
// and as the slog package default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
