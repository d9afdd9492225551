package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/posts-gateway/internal/domain"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
	"github.com/jsamuelsen/posts-gateway/internal/platform/telemetry"
)

// ErrMethodNotAllowed is raised when a route exists but not for the request method.
var ErrMethodNotAllowed = errors.New("method not allowed")

// errorKind classifies an error reaching the request boundary.
type errorKind int

const (
	kindUnknown errorKind = iota
	kindTransport
	kindDomain
	kindMethodNotAllowed
)

// classifiedError is an error together with the variant it was classified as.
type classifiedError struct {
	kind      errorKind
	statusErr *clients.StatusError
	domainErr *domain.Error
	err       error
}

// classify picks exactly one variant, in precedence order:
// raw upstream status, domain error, method not allowed, unknown.
func classify(err error) classifiedError {
	domainErr, isDomain := domain.AsError(err)

	if statusErr, ok := clients.AsStatusError(err); ok && !isDomain {
		return classifiedError{kind: kindTransport, statusErr: statusErr, err: err}
	}

	if isDomain {
		return classifiedError{kind: kindDomain, domainErr: domainErr, err: err}
	}

	if errors.Is(err, ErrMethodNotAllowed) {
		return classifiedError{kind: kindMethodNotAllowed, err: err}
	}

	return classifiedError{kind: kindUnknown, err: err}
}

// TranslateError maps any error to a problem document and logs it.
// It never fails; unknown errors become 500 with the default title.
func TranslateError(ctx context.Context, err error) *dto.ProblemDetail {
	logger := logging.FromContext(ctx)

	if err == nil {
		err = errors.New("")
	}

	ce := classify(err)

	switch ce.kind {
	case kindTransport:
		status := ce.statusErr.StatusCode
		if !dto.IsValidStatus(status) {
			logInvalidStatus(ctx, logger, status)
			status = http.StatusInternalServerError
		}

		return dto.NewProblemDetail(status, dto.DefaultTitle, detailOrDefault(ce.statusErr.Error()))

	case kindDomain:
		level := slog.LevelWarn
		if domain.IsUnavailable(ce.domainErr) {
			level = slog.LevelError
		}

		logger.Log(ctx, level, "domain error occurred",
			slog.String("title", ce.domainErr.Title),
			slog.Int("status_code", ce.domainErr.StatusCode),
			logging.ErrorChain(ce.domainErr),
		)

		status := ce.domainErr.StatusCode
		if !ce.domainErr.HasStatus() || !dto.IsValidStatus(status) {
			logInvalidStatus(ctx, logger, status)
			status = http.StatusInternalServerError
		}

		return dto.NewProblemDetail(status, ce.domainErr.Title, detailOrDefault(ce.domainErr.Detail))

	case kindMethodNotAllowed:
		return dto.NewProblemDetail(http.StatusMethodNotAllowed, dto.DefaultTitle, detailOrDefault(ce.err.Error()))

	case kindUnknown:
		logger.ErrorContext(ctx, "unhandled error occurred", logging.ErrorChain(ce.err))

		return dto.NewProblemDetail(http.StatusInternalServerError, dto.DefaultTitle, detailOrDefault(ce.err.Error()))

	default:
		return dto.NewProblemDetail(http.StatusInternalServerError, dto.DefaultTitle, dto.DefaultDetail)
	}
}

// RespondWithError translates err and writes it as the response.
func RespondWithError(c *gin.Context, err error) *dto.ProblemDetail {
	problem := TranslateError(c.Request.Context(), err)
	dto.WriteProblem(c, problem)

	return problem
}

// RenderError returns a function that writes err as a problem document and
// counts it. It is shared by ErrorHandler and the panic recovery middleware.
func RenderError(recorder *telemetry.ProblemRecorder) func(c *gin.Context, err error) {
	return func(c *gin.Context, err error) {
		problem := RespondWithError(c, err)
		recorder.Record(problem.Status, problem.Title)
	}
}

// ErrorHandler returns middleware that renders the last error recorded with
// c.Error as a problem document. Handlers report failures through c.Error and
// return; this is the only place error statuses are chosen.
func ErrorHandler(recorder *telemetry.ProblemRecorder) gin.HandlerFunc {
	render := RenderError(recorder)

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		render(c, c.Errors.Last().Err)
	}
}

// NoRoute reports an unknown path as a 404 problem.
func NoRoute(c *gin.Context) {
	_ = c.Error(domain.NewNotFoundError("No handler found for " + c.Request.Method + " " + c.Request.URL.Path))
}

// NoMethod reports a known path requested with the wrong method as 405.
func NoMethod(c *gin.Context) {
	_ = c.Error(&methodNotAllowedError{method: c.Request.Method})
}

type methodNotAllowedError struct {
	method string
}

func (e *methodNotAllowedError) Error() string {
	return "Request method '" + e.method + "' is not supported"
}

func (e *methodNotAllowedError) Is(target error) bool {
	return target == ErrMethodNotAllowed
}

// detailOrDefault returns msg, or the default detail when msg is blank.
func detailOrDefault(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return dto.DefaultDetail
	}

	return msg
}

func logInvalidStatus(ctx context.Context, logger *slog.Logger, status int) {
	logger.InfoContext(ctx, "Error Code from Exception could not be mapped to a valid HttpStatus Code - "+strconv.Itoa(status))
}
