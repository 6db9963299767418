// Package providers contains the built-in search backends: the
// DuckDuckGo HTML endpoint scraper, the ArXiv Atom API client, and an
// offline file-backed provider for tests and air-gapped use.
package providers

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/hyperifyio/websearch"
)

const defaultUserAgent = "websearch/1.0 (+https://github.com/hyperifyio/websearch)"

// transportError maps a failed HTTP round trip onto the error taxonomy.
// Deadline and network timeouts become TimeoutError so callers can see
// the deadline that was exceeded; anything else is a status-less
// HTTPError.
func transportError(err error, timeout time.Duration) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &websearch.TimeoutError{TimeoutMS: int(timeout.Milliseconds())}
	}
	return &websearch.HTTPError{Message: err.Error()}
}

// excerpt bounds a response body for inclusion in an HTTPError.
func excerpt(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
