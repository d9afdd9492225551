package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion.
// Health paths (prefix /-/) and any skipPaths are not logged.
// A nil logger falls back to the logger carried by the request context.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skipMap := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, skip := skipMap[path]; skip || strings.HasPrefix(path, "/-/") {
			c.Next()
			return
		}

		start := time.Now()

		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		reqLogger := requestLogger(c, logger)

		reqLogger.Info("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		reqLogger.Log(c.Request.Context(), level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func requestLogger(c *gin.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return logging.FromContext(c.Request.Context())
	}

	if id := GetRequestID(c); id != "" {
		logger = logger.With(slog.String(logging.KeyRequestID, id))
	}

	if id := GetCorrelationID(c); id != "" {
		logger = logger.With(slog.String(logging.KeyCorrelationID, id))
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		logger = logger.With(slog.String(logging.KeyTraceID, sc.TraceID().String()))
	}

	return logger
}
