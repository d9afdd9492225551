package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonLogger returns a logger at TRACE with redaction, writing JSON to buf.
func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level:       LevelTrace,
		ReplaceAttr: NewReplaceAttr(),
	}))
}

func decodeLine(t *testing.T, line []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(line), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	assert.Same(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Same(t, defaultLogger, FromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestRequestScopedIDs(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), jsonLogger(&buf))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithCorrelationID(ctx, "corr-789")
	ctx = WithTraceID(ctx, "4bf92f3577b34da6a3ce929d0e0e4736")

	FromContext(ctx).InfoContext(ctx, "fetching post")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "req-123", entry[KeyRequestID])
	assert.Equal(t, "corr-789", entry[KeyCorrelationID])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry[KeyTraceID])
}

func TestRequestScopedIDs_EmptyIsSkipped(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(WithTraceID(ctx, "")))
	assert.Same(t, logger, FromContext(WithRequestID(ctx, "")))
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Same(t, custom, FromContext(context.Background()))
	assert.Same(t, custom, slog.Default())
}

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				entry := decodeLine(t, []byte(out))
				assert.Equal(t, "listing posts", entry["msg"])
				assert.Equal(t, "posts-gateway", entry["service_name"])
				assert.Equal(t, "1.2.0", entry["service_version"])
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, `msg="listing posts"`)
				assert.Contains(t, out, "service_name=posts-gateway")
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "listing posts")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{
				Level:   "info",
				Format:  tt.format,
				Service: "posts-gateway",
				Version: "1.2.0",
			}, &buf)
			logger.Info("listing posts")

			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
	logger.Log(context.Background(), LevelTrace, "upstream request")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "upstream request", entry["msg"])
	assert.Equal(t, "DEBUG-4", entry["level"])
}

func TestNewWithWriter_FileCopy(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gateway.log")

	var console bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "text",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 1,
		},
	}, &console)

	logger.Warn("upstream slow")

	assert.Contains(t, console.String(), "upstream slow")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entry := decodeLine(t, content)
	assert.Equal(t, "upstream slow", entry["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := map[slog.Level]log.Level{
		LevelTrace:      log.DebugLevel,
		slog.LevelDebug: log.DebugLevel,
		slog.LevelInfo:  log.InfoLevel,
		slog.LevelWarn:  log.WarnLevel,
		slog.LevelError: log.ErrorLevel,
		slog.Level(12):  log.ErrorLevel,
	}

	for input, want := range tests {
		assert.Equal(t, want, slogToCharmLevel(input), "level %v", input)
	}
}

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error { //nolint:gocritic // slog.Handler signature
	return errors.New("disk full")
}

func TestTeeHandler(t *testing.T) {
	t.Run("single sink is returned as is", func(t *testing.T) {
		sink := slog.NewJSONHandler(io.Discard, nil)
		assert.Same(t, sink, newTeeHandler(sink))
	})

	t.Run("each sink keeps its level", func(t *testing.T) {
		var console, file bytes.Buffer

		logger := slog.New(newTeeHandler(
			slog.NewJSONHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
			slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)).With(slog.String(KeyRequestID, "req-1")).WithGroup("upstream")

		logger.Debug("request completed", slog.Int("status", 200))

		assert.Empty(t, console.String())

		entry := decodeLine(t, file.Bytes())
		assert.Equal(t, "req-1", entry[KeyRequestID])
		assert.Equal(t, map[string]any{"status": float64(200)}, entry["upstream"])
	})

	t.Run("disabled when no sink accepts the level", func(t *testing.T) {
		handler := newTeeHandler(
			slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)

		assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("sink errors are joined", func(t *testing.T) {
		var buf bytes.Buffer

		handler := newTeeHandler(
			failingHandler{slog.NewJSONHandler(io.Discard, nil)},
			slog.NewJSONHandler(&buf, nil),
		)

		err := handler.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "x", 0))

		require.EqualError(t, err, "disk full")
		assert.Contains(t, buf.String(), `"msg":"x"`)
	})
}

func TestRedaction_UpstreamHeaders(t *testing.T) {
	var buf bytes.Buffer

	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc.def.ghi")
	headers.Set("X-Api-Key", "k-123")
	headers.Set("X-Request-Id", "req-7")
	headers.Set("Accept", "application/json")

	jsonLogger(&buf).Log(context.Background(), LevelTrace, "upstream request", slog.Any("headers", headers))

	out := buf.String()
	assert.NotContains(t, out, "abc.def.ghi")
	assert.NotContains(t, out, "k-123")
	assert.Contains(t, out, "req-7")
	assert.Contains(t, out, "application/json")
}

func TestRedaction_CommentEmails(t *testing.T) {
	var buf bytes.Buffer

	body := `[{"postId":1,"id":1,"name":"id labore","email":"Eliseo@gardner.biz","body":"laudantium"}]`

	jsonLogger(&buf).Log(context.Background(), LevelTrace, "upstream response", slog.String("body", body))

	entry := decodeLine(t, buf.Bytes())
	logged, ok := entry["body"].(string)
	require.True(t, ok)

	assert.NotContains(t, logged, "Eliseo@gardner.biz")
	assert.Contains(t, logged, `"email":"`+RedactedEmail+`"`)
	assert.Contains(t, logged, "laudantium")
}

func TestRedaction_CredentialValues(t *testing.T) {
	var buf bytes.Buffer

	jsonLogger(&buf).Info("forwarding", slog.String("auth_header", "Basic dXNlcjpwYXNz"))

	assert.NotContains(t, buf.String(), "dXNlcjpwYXNz")
	assert.Contains(t, buf.String(), "auth_header")
}

func TestErrorChain(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	root := errors.New("connection refused")
	wrapped := fmt.Errorf("fetching posts: %w", root)

	logger.Error("unhandled error", ErrorChain(wrapped))

	entry := decodeLine(t, buf.Bytes())

	group, ok := entry["error"].(map[string]any)
	require.True(t, ok, "error group should be present")
	assert.Equal(t, "fetching posts: connection refused", group["message"])
	assert.Equal(t, "*fmt.wrapError", group["type"])

	chain, ok := group["chain"].([]any)
	require.True(t, ok)
	require.Len(t, chain, 2)
	assert.Contains(t, chain[1], "connection refused")
}

func TestErrorChain_Nil(t *testing.T) {
	attr := ErrorChain(nil)
	assert.Equal(t, "error", attr.Key)
}
