package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that reads X-Request-ID or generates a UUID.
// The ID is echoed on the response, attached to the context logger, and
// stored on the request context so upstream calls carry it.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderRequestID,
		contextKey: ContextKeyRequestID,
		enrichers:  enrichers(logging.WithRequestID, ContextWithRequestID),
	})
}

// GetRequestID extracts the request ID from the gin.Context.
// Returns empty string if not set.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}
