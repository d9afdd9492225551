//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients/acl"
	gatewayhttp "github.com/jsamuelsen/posts-gateway/internal/adapters/http"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/posts-gateway/internal/app"
	"github.com/jsamuelsen/posts-gateway/internal/platform/config"
	"github.com/jsamuelsen/posts-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen/posts-gateway/internal/ports"
)

// upstreamRequest is one request seen by the fake upstream.
type upstreamRequest struct {
	Path          string
	RequestID     string
	CorrelationID string
}

// fakeUpstream stands in for the public posts API. Responses are keyed by
// path plus raw query; unknown keys answer 404 with an empty JSON object.
type fakeUpstream struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	requests  []upstreamRequest
}

type fakeResponse struct {
	status int
	body   string
	delay  time.Duration
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{responses: make(map[string]fakeResponse)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	f.mu.Lock()
	f.requests = append(f.requests, upstreamRequest{
		Path:          key,
		RequestID:     r.Header.Get("X-Request-ID"),
		CorrelationID: r.Header.Get("X-Correlation-ID"),
	})
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		resp = fakeResponse{status: http.StatusNotFound, body: "{}"}
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (f *fakeUpstream) respond(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[path] = fakeResponse{status: status, body: body}
}

func (f *fakeUpstream) respondJSON(path string, v any) {
	data, _ := json.Marshal(v)
	f.respond(path, http.StatusOK, string(data))
}

func (f *fakeUpstream) respondSlowly(path string, delay time.Duration, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[path] = fakeResponse{status: http.StatusOK, body: body, delay: delay}
}

// hits returns how many requests reached path.
func (f *fakeUpstream) hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, r := range f.requests {
		if r.Path == path {
			n++
		}
	}

	return n
}

func (f *fakeUpstream) lastRequest() (upstreamRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return upstreamRequest{}, false
	}

	return f.requests[len(f.requests)-1], true
}

func (f *fakeUpstream) close() {
	f.server.Close()
}

// gatewayOptions tunes the in-process gateway.
type gatewayOptions struct {
	commentsRoute  app.CommentsRoute
	clientTimeout  time.Duration
	requestTimeout time.Duration
}

// newGateway wires the production stack against upstreamURL and serves it
// from an httptest server.
func newGateway(upstreamURL string, opts gatewayOptions) (*httptest.Server, error) {
	if opts.clientTimeout == 0 {
		opts.clientTimeout = 5 * time.Second
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	upstream, err := clients.New(&clients.Config{
		BaseURL:     upstreamURL,
		ServiceName: "fake-upstream",
		Timeout:     opts.clientTimeout,
		Transport: config.TransportConfig{
			MaxIdleConns:        config.DefaultTransportMaxIdleConns,
			MaxIdleConnsPerHost: config.DefaultTransportMaxIdleConnsPerHost,
			IdleConnTimeout:     config.DefaultTransportIdleConnTimeout,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	postClient := acl.NewPostClient(acl.PostClientConfig{Client: upstream, Logger: logger})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(postClient); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	gatewayhttp.SetupRouter(engine, gatewayhttp.RouterConfig{
		Logger:        logger,
		ServiceName:   "posts-gateway-it",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("it", "it", "it"), reg),
		PostHandler: handlers.NewPostHandler(app.NewPostService(app.PostServiceConfig{
			PostClient:    postClient,
			Logger:        logger,
			CommentsRoute: opts.commentsRoute,
		})),
		Problems: telemetry.NewProblemRecorder(reg),
		Timeout:  opts.requestTimeout,
	})

	return httptest.NewServer(engine), nil
}

// samplePosts is a small upstream data set shared by the suites.
var samplePosts = []map[string]any{
	{"userId": 1, "id": 1, "title": "first", "body": "one"},
	{"userId": 1, "id": 2, "title": "second", "body": "two"},
	{"userId": 2, "id": 3, "title": "third", "body": "three"},
}

func sampleComments(postID int) []map[string]any {
	return []map[string]any{
		{"postId": postID, "id": postID*10 + 1, "name": "a", "email": "a@example.com", "body": "x"},
		{"postId": postID, "id": postID*10 + 2, "name": "b", "email": "b@example.com", "body": "y"},
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}

	return true
}
