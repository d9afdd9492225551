package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/posts-gateway/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for post requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything SetupRouter wires together.
type RouterConfig struct {
	// Logger is used for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	PostHandler   *handlers.PostHandler

	// Problems counts rendered problem responses. May be nil.
	Problems *telemetry.ProblemRecorder

	// Timeout is the deadline put on post requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs middleware and routes on engine.
// Middleware runs in this order:
//  1. Recovery, rendered through the error translator
//  2. Request ID
//  3. Correlation ID
//  4. Tracing and HTTP metrics
//  5. Logging
//  6. Error rendering
//
// Unknown paths answer 404 and known paths with the wrong method answer 405,
// both as problem documents.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(RenderError(cfg.Problems)),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
		ErrorHandler(cfg.Problems),
	)

	engine.NoRoute(NoRoute)
	engine.NoMethod(NoMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	if cfg.PostHandler != nil {
		posts := engine.Group("")
		posts.Use(middleware.Timeout(cfg.Timeout))
		cfg.PostHandler.RegisterRoutes(posts)
	}
}
