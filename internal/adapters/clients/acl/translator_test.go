package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/domain"
)

var testMessages = ErrorMessages{
	NotFound: "Cannot find a Post with id 1",
	Failure:  "Error fetching post: ",
}

func TestMapHTTPError_Nil(t *testing.T) {
	assert.NoError(t, MapHTTPError(nil, testMessages))
}

func TestMapHTTPError_NotFound(t *testing.T) {
	cause := clients.NewStatusError(http.StatusNotFound, "404 Not Found", "{}")

	err := MapHTTPError(cause, testMessages)

	requireDomainError(t, err, domain.TitleResourceNotFound, http.StatusNotFound, "Cannot find a Post with id 1")
	assert.ErrorIs(t, err, cause)
}

func TestMapHTTPError_NotFoundWithoutMessage(t *testing.T) {
	cause := clients.NewStatusError(http.StatusNotFound, "", "")

	err := MapHTTPError(cause, ErrorMessages{Failure: "Error fetching post: "})

	requireDomainError(t, err, domain.TitleAPIError, http.StatusNotFound, "Error fetching post: 404 Not Found")
}

func TestMapHTTPError_OtherStatuses(t *testing.T) {
	for _, status := range []int{400, 401, 403, 409, 429, 500, 502, 503, 504} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			err := MapHTTPError(clients.NewStatusError(status, "", ""), testMessages)

			domainErr, ok := domain.AsError(err)
			require.True(t, ok)
			assert.Equal(t, domain.TitleAPIError, domainErr.Title)
			assert.Equal(t, status, domainErr.StatusCode)
			assert.Equal(t, fmt.Sprintf("Error fetching post: %d %s", status, http.StatusText(status)), domainErr.Detail)
		})
	}
}

func TestMapHTTPError_TransportFailure(t *testing.T) {
	cause := fmt.Errorf("%w: %w", clients.ErrRequestFailed, context.DeadlineExceeded)

	err := MapHTTPError(cause, testMessages)

	domainErr, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.TitleAPIError, domainErr.Title)
	assert.Equal(t, 0, domainErr.StatusCode)
	assert.Equal(t, "Error fetching post: request failed: context deadline exceeded", domainErr.Detail)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTranslateSlice(t *testing.T) {
	double := func(n int) string { return strconv.Itoa(n * 2) }

	t.Run("preserves order", func(t *testing.T) {
		assert.Equal(t, []string{"2", "4", "6"}, TranslateSlice([]int{1, 2, 3}, double))
	})

	t.Run("nil input yields empty non-nil slice", func(t *testing.T) {
		got := TranslateSlice([]int(nil), double)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestBaseAdapter_Accessors(t *testing.T) {
	client, err := clients.New(&clients.Config{ServiceName: "upstream", BaseURL: "http://localhost"})
	require.NoError(t, err)

	adapter := NewBaseAdapter(client, "upstream")

	assert.Same(t, client, adapter.Client())
	assert.Equal(t, "upstream", adapter.ServiceName())
	assert.False(t, errors.Is(MapHTTPError(errors.New("x"), testMessages), domain.ErrNotFound))
}
