package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
)

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in service-specific adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// GetJSON fetches path and decodes the body into target.
// Failures are returned as [domain.Error] built from msgs.
// found is false when the upstream answered with an empty body.
func (a *BaseAdapter) GetJSON(ctx context.Context, path string, target any, msgs ErrorMessages) (bool, error) {
	found, err := a.client.GetJSON(ctx, path, target)
	if err != nil {
		logging.FromContext(ctx).Warn("upstream call failed",
			slog.String("downstream", a.serviceName),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return false, MapHTTPError(err, msgs)
	}

	return found, nil
}

// Translator converts one external DTO into a domain value.
type Translator[External any, Domain any] func(ext External) Domain

// TranslateSlice applies translate to every item, preserving order.
// The result is never nil, so an empty upstream list encodes as [].
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) []D {
	result := make([]D, 0, len(items))

	for _, item := range items {
		result = append(result, translate(item))
	}

	return result
}
