package websearch

import "fmt"

// The error types below form a closed taxonomy. Providers return
// HTTPError, TimeoutError, ParseError, InvalidInputError or OtherError;
// Search returns InvalidInputError for caller mistakes and wraps every
// provider failure into a ProviderError. All of them are flat value
// structs, so copying a value is a complete clone and classification
// can be re-derived from the value alone.

// InvalidInputError reports a malformed caller request. It never
// originates from transport and is never wrapped further.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Message }

// HTTPError is a transport-level failure from a backend. StatusCode is
// zero when no HTTP response was received.
type HTTPError struct {
	StatusCode   int
	Message      string
	ResponseBody string
}

func (e *HTTPError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Message)
	}
	return "HTTP error: " + e.Message
}

// TimeoutError reports that a backend exceeded its own deadline.
type TimeoutError struct {
	TimeoutMS int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %dms", e.TimeoutMS)
}

// ParseError reports a backend response that could not be decoded into
// the normalized result shape.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return "failed to parse response: " + e.Message }

// ProviderError is the envelope Search returns for any failed provider
// call. Message carries the provider name, the original error text and
// a troubleshooting hint; the structured cause is not chained past it.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// OtherError covers backend-specific failures with no dedicated kind.
type OtherError struct {
	Message string
}

func (e *OtherError) Error() string { return e.Message }
