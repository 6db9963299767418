// Package websearch provides a uniform search surface over pluggable
// backends. A caller builds Options with a query and a bound Provider,
// calls Search, and receives normalized results regardless of which
// backend produced them.
package websearch

import "context"

// SafeSearch controls how aggressively a provider filters adult content.
// Providers that have no such knob may ignore it.
type SafeSearch string

const (
	SafeSearchOff      SafeSearch = "off"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchStrict   SafeSearch = "strict"
)

// SortBy selects result ordering for providers that support sorting.
type SortBy string

const (
	SortByRelevance       SortBy = "relevance"
	SortBySubmittedDate   SortBy = "submitteddate"
	SortByLastUpdatedDate SortBy = "lastupdateddate"
)

// SortOrder selects the direction of a sorted result list.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ParseSafeSearch maps a textual safe-search setting onto the
// enumeration. The empty string is valid and means "unset".
func ParseSafeSearch(s string) (SafeSearch, error) {
	switch SafeSearch(s) {
	case "", SafeSearchOff, SafeSearchModerate, SafeSearchStrict:
		return SafeSearch(s), nil
	}
	return "", &InvalidInputError{Message: "unknown safe_search value: " + s}
}

// ParseSortBy maps a textual sort field onto the enumeration.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case "", SortByRelevance, SortBySubmittedDate, SortByLastUpdatedDate:
		return SortBy(s), nil
	}
	return "", &InvalidInputError{Message: "unknown sort_by value: " + s}
}

// ParseSortOrder maps a textual sort direction onto the enumeration.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortAscending, SortDescending:
		return SortOrder(s), nil
	}
	return "", &InvalidInputError{Message: "unknown sort_order value: " + s}
}

// Result is a single normalized search hit from any provider.
// URL is carried verbatim; it is never validated or rewritten here.
type Result struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet,omitempty"`
	Domain        string `json:"domain,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	Provider      string `json:"provider,omitempty"`
	// Raw optionally retains the backend-native payload for debugging.
	Raw any `json:"raw,omitempty"`
}

// Options describes one search request. Provider is required; Query may
// be empty only when IDList is set (for backends that look papers up by
// identifier). All other fields are optional hints that a provider may
// ignore when it has no equivalent.
type Options struct {
	Query string
	// IDList is a comma-separated list of provider-specific identifiers,
	// e.g. ArXiv paper IDs.
	IDList string
	// MaxResults bounds the result list. Enforcement is up to the
	// provider; Search itself never truncates.
	MaxResults int
	Language   string
	Region     string
	SafeSearch SafeSearch
	SortBy     SortBy
	SortOrder  SortOrder
	Debug      DebugOptions
	Provider   Provider
}

// Provider is the capability contract a search backend implements.
// Implementations must not mutate the options they receive and must
// manage their own request timeouts; Search imposes none. A provider
// that reuses one instance across concurrent calls must be safe for
// concurrent read-only use.
type Provider interface {
	// Search performs one search and returns normalized results. A
	// provider without ID-lookup support must reject an empty query
	// combined with a non-empty IDList rather than return nothing.
	Search(ctx context.Context, opts *Options) ([]Result, error)
	// Name returns a stable lowercase identifier used for logging and
	// troubleshooting lookup.
	Name() string
}
