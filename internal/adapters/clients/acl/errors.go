package acl

import (
	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/domain"
)

// ErrorMessages holds the detail text used when one upstream operation fails.
type ErrorMessages struct {
	// NotFound is the detail for an upstream 404.
	// When empty, a 404 is reported like any other failure status.
	NotFound string

	// Failure prefixes the client error message for every other failure.
	Failure string
}

// MapHTTPError translates an error from [clients.Client] into a [domain.Error].
//
//   - *clients.StatusError 404 with msgs.NotFound set → "Resource Not Found", 404
//   - any other *clients.StatusError → "API Error" with the upstream status
//   - transport and decode failures → "API Error" with no status
//
// The original error is kept as the cause. A nil err returns nil.
func MapHTTPError(err error, msgs ErrorMessages) error {
	if err == nil {
		return nil
	}

	statusErr, ok := clients.AsStatusError(err)
	if !ok {
		return domain.NewAPIError(msgs.Failure+err.Error(), 0, err)
	}

	if statusErr.IsNotFound() && msgs.NotFound != "" {
		return domain.NewResourceNotFoundError(msgs.NotFound, err)
	}

	return domain.NewAPIError(msgs.Failure+statusErr.Error(), statusErr.StatusCode, err)
}
