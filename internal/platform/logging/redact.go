package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// RedactedEmail replaces commenter addresses in upstream bodies logged at TRACE.
const RedactedEmail = "[email]"

var (
	// emailPattern matches the addresses found in comment payloads.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// credentialPattern matches Authorization-style header values.
	credentialPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`)
)

// sensitiveHeaders are dropped from the request and response header dumps the
// upstream client writes at TRACE. Names are in canonical header form.
var sensitiveHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
}

// RedactOptions returns the masq rules applied to every record.
func RedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+2)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithRegex(credentialPattern),
		// Keep the rest of the body readable; only the addresses go.
		masq.WithRegex(emailPattern, masq.RedactString(func(s string) string {
			return emailPattern.ReplaceAllString(s, RedactedEmail)
		})),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook applying RedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), opts...)...)
}
