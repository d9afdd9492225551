package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout returns middleware that puts a deadline on the request context.
// Upstream calls made with that context fail once it expires, and the
// resulting error is rendered like any other upstream failure. A
// non-positive timeout or a path in skipPaths leaves the context untouched.
func Timeout(timeout time.Duration, skipPaths ...string) gin.HandlerFunc {
	skipMap := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipMap[c.Request.URL.Path]; skip || timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
