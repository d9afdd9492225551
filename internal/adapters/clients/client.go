package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/posts-gateway/internal/platform/config"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

const (
	// instrumentationName is used for OpenTelemetry tracer and meter.
	instrumentationName = "github.com/jsamuelsen/posts-gateway/internal/adapters/clients"

	// httpStatusCategoryDivisor divides status code to get category (2xx, 4xx, 5xx).
	httpStatusCategoryDivisor = 100

	// defaultTimeout is the default request timeout if not configured.
	defaultTimeout = 30 * time.Second

	// maxErrorBodyBytes caps how much of an error response body is kept.
	maxErrorBodyBytes = 4 << 10
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is the base URL for all requests (e.g., "https://api.example.com").
	BaseURL string

	// ServiceName identifies the downstream service for logging and tracing.
	ServiceName string

	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// Transport configures the shared connection pool.
	Transport config.TransportConfig

	// LogBodies enables response body logging at trace level.
	LogBodies bool

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client is an instrumented HTTP client for downstream services.
// It provides:
//   - OpenTelemetry tracing and metrics
//   - Request/correlation ID propagation
//   - Trace-level wire logging
//
// Failed requests are not retried.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	logBodies   bool
	logger      *slog.Logger

	tracer trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a new instrumented HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(cfg.Transport),
		},
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		logBodies:       cfg.LogBodies,
		logger:          logger,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// newTransport builds the pooled transport, falling back to config defaults for zero values.
func newTransport(cfg config.TransportConfig) *http.Transport {
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = config.DefaultTransportMaxIdleConns
	}

	if cfg.MaxIdleConnsPerHost <= 0 {
		cfg.MaxIdleConnsPerHost = config.DefaultTransportMaxIdleConnsPerHost
	}

	if cfg.IdleConnTimeout <= 0 {
		cfg.IdleConnTimeout = config.DefaultTransportIdleConnTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = cfg.MaxIdleConns
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	transport.IdleConnTimeout = cfg.IdleConnTimeout

	return transport
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// Do executes an HTTP request with tracing, metrics, and logging.
// A non-nil error means no response was received; it wraps ErrRequestFailed.
// Status codes are not inspected; the caller owns the response body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	c.injectHeaders(ctx, req)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logger.Log(ctx, logging.LevelTrace, "upstream request",
		slog.String("url", req.URL.String()),
		slog.Any("headers", req.Header),
	)

	resp, err := c.http.Do(req.WithContext(ctx))
	duration := time.Since(startTime)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, "error")
		logger.Error("request failed",
			slog.Duration("duration", duration),
			logging.ErrorChain(err),
		)

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	statusCategory := fmt.Sprintf("%dxx", resp.StatusCode/httpStatusCategoryDivisor)
	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, statusCategory)

	c.traceResponse(ctx, logger, resp)

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

// Get performs an HTTP GET request.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// GetJSON performs a GET and decodes a 2xx JSON body into v.
//
// It returns *StatusError for 4xx/5xx responses, an error wrapping
// ErrRequestFailed when no response arrived, and one wrapping ErrDecode when
// the body is not valid JSON. An empty or null body leaves v untouched and
// reports found=false.
func (c *Client) GetJSON(ctx context.Context, path string, v any) (found bool, err error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return false, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug("failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return false, NewStatusError(resp.StatusCode, resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}

	if err := json.Unmarshal(trimmed, v); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return true, nil
}

// Check verifies the downstream answers the given path with a non-5xx status.
func (c *Client) Check(ctx context.Context, path string) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return NewStatusError(resp.StatusCode, resp.Status, "")
	}

	return nil
}

// traceResponse logs response metadata and, if enabled, the body at trace level.
// The body is buffered and restored so callers can still read it.
func (c *Client) traceResponse(ctx context.Context, logger *slog.Logger, resp *http.Response) {
	if !logger.Enabled(ctx, logging.LevelTrace) {
		return
	}

	attrs := []any{
		slog.Int("status", resp.StatusCode),
		slog.Any("headers", resp.Header),
	}

	if c.logBodies && resp.Body != nil {
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))

		if err == nil {
			attrs = append(attrs, slog.String("body", string(body)))
		}
	}

	logger.Log(ctx, logging.LevelTrace, "upstream response", attrs...)
}

// injectHeaders adds request ID and correlation ID to the request.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}
}

// buildURL constructs the full URL from base URL and path.
func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// recordMetrics records request metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}
