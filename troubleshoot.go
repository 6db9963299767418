package websearch

import (
	"errors"
	"fmt"
)

// troubleshoot derives a remediation hint for a failed provider call.
// It depends only on its two inputs. HTTP status classes win over the
// per-provider fallbacks; a zero status (no response received) falls
// through to the fallbacks like any non-HTTP error.
func troubleshoot(providerName string, err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode == 401 || httpErr.StatusCode == 403:
			return "This is likely an authentication issue. Check your API key and make sure it's valid and has the correct permissions."
		case httpErr.StatusCode == 400:
			return "This is likely due to invalid request parameters. Check your query and other search options."
		case httpErr.StatusCode == 429:
			return "You've exceeded the rate limit for this API. Try again later or reduce your request frequency."
		case httpErr.StatusCode >= 500 && httpErr.StatusCode <= 599:
			return "The search provider is experiencing server issues. Try again later."
		}
	}

	switch providerName {
	case "duckduckgo":
		return "You may be making too many requests to DuckDuckGo. Try adding a delay between requests or reduce your request frequency."
	case "arxiv":
		return "ArXiv may be temporarily unavailable. Try again later or reduce your request frequency."
	default:
		return fmt.Sprintf("Check your %s configuration and make sure your search request is valid.", providerName)
	}
}
