package logging

import (
	"errors"
	"fmt"
	"log/slog"
)

// maxChainDepth bounds how many wrapped errors ErrorChain records.
const maxChainDepth = 16

// ErrorChain returns a group attribute describing err and every error it wraps.
// It is meant for server-side diagnostics only; callers never see it.
//
//	logger.Error("unhandled error", logging.ErrorChain(err))
func ErrorChain(err error) slog.Attr {
	if err == nil {
		return slog.Group("error")
	}

	chain := make([]string, 0, 1)
	for cur := err; cur != nil && len(chain) < maxChainDepth; cur = errors.Unwrap(cur) {
		chain = append(chain, fmt.Sprintf("%T: %s", cur, cur.Error()))
	}

	return slog.Group("error",
		slog.String("message", err.Error()),
		slog.String("type", fmt.Sprintf("%T", err)),
		slog.Any("chain", chain),
	)
}
