package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

// PanicError carries a recovered panic value as an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// Recovery returns middleware that turns a panic into a *PanicError and hands
// it to render. Apply it first so it covers every later handler.
//
// Error middleware installed after Recovery never sees the panic, so render
// must write the response itself. A nil render writes a bare 500 problem.
func Recovery(render func(c *gin.Context, err error)) gin.HandlerFunc {
	if render == nil {
		render = writeInternalProblem
	}

	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			)

			render(c, &PanicError{Value: r})
		}()

		c.Next()
	}
}

func writeInternalProblem(c *gin.Context, err error) {
	dto.WriteProblem(c, dto.NewProblemDetail(http.StatusInternalServerError, dto.DefaultTitle, err.Error()))
}
