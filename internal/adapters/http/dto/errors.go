// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ContentTypeProblemJSON is the media type of every error response.
	ContentTypeProblemJSON = "application/problem+json"

	// DefaultTitle is used when an error carries no title of its own.
	DefaultTitle = "API Error Occurred"

	// DefaultDetail is used when an error carries no usable message.
	DefaultDetail = "API Error occurred. Please contact support or administrator."

	// ProblemTypeBlank is the problem type for plain HTTP status semantics.
	ProblemTypeBlank = "about:blank"
)

// ProblemDetail is the error document written for every failed request.
// It follows the problem-details shape: type, title, status, detail, instance.
type ProblemDetail struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"traceId,omitempty"`
}

// NewProblemDetail creates a problem document.
// Blank title and detail fall back to DefaultTitle and DefaultDetail.
func NewProblemDetail(status int, title, detail string) *ProblemDetail {
	if title == "" {
		title = DefaultTitle
	}

	if detail == "" {
		detail = DefaultDetail
	}

	return &ProblemDetail{
		Type:   ProblemTypeBlank,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithTraceID adds a trace ID to the problem document.
func (p *ProblemDetail) WithTraceID(traceID string) *ProblemDetail {
	p.TraceID = traceID
	return p
}

// WithInstance records the request path that failed.
func (p *ProblemDetail) WithInstance(instance string) *ProblemDetail {
	p.Instance = instance
	return p
}

// WriteProblem writes p with the problem+json content type and aborts the chain.
// Nothing is written if the response has already started.
func WriteProblem(c *gin.Context, p *ProblemDetail) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	if p.Instance == "" && c.Request != nil {
		p.WithInstance(c.Request.URL.Path)
	}

	if p.TraceID == "" {
		p.WithTraceID(GetTraceID(c))
	}

	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(p.Status, p)
}

// GetTraceID returns the active trace ID, falling back to the request ID.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			return span.SpanContext().TraceID().String()
		}
	}

	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	if c.Request != nil {
		return c.Request.Header.Get("X-Request-ID")
	}

	return ""
}

// IsValidStatus reports whether code is a status this server can write.
func IsValidStatus(code int) bool {
	return http.StatusText(code) != ""
}
