package websearch

import (
	"context"
	"fmt"
)

// Search queries the provider bound in opts and returns its results
// unmodified: no truncation, filtering or re-sorting happens here.
// The only validation performed is that either Query or IDList is set;
// everything else is the provider's concern. On provider failure the
// error is classified once and returned as a ProviderError carrying
// the original message and a troubleshooting hint.
func Search(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Provider == nil {
		return nil, &InvalidInputError{Message: "a search provider is required"}
	}
	if opts.Query == "" && opts.IDList == "" {
		return nil, &InvalidInputError{Message: "a search query or ID list is required"}
	}

	opts.Debug.emit("performing search",
		fmt.Sprintf("provider: %s, query: %s", opts.Provider.Name(), opts.Query))
	if opts.Debug.LogRequests {
		opts.Debug.emit("request options", describeOptions(&opts))
	}

	results, err := opts.Provider.Search(ctx, &opts)
	if err != nil {
		hint := troubleshoot(opts.Provider.Name(), err)
		detailed := fmt.Sprintf("Search with provider '%s' failed: %v\n\nTroubleshooting: %s",
			opts.Provider.Name(), err, hint)
		opts.Debug.emit("search error", detailed)
		return nil, &ProviderError{Message: detailed}
	}

	if opts.Debug.LogResponses {
		opts.Debug.emit("search response", fmt.Sprintf("received %d results", len(results)))
	}
	return results, nil
}

func describeOptions(opts *Options) string {
	return fmt.Sprintf(
		"max_results: %d, id_list: %q, language: %q, region: %q, safe_search: %q, sort_by: %q, sort_order: %q",
		opts.MaxResults, opts.IDList, opts.Language, opts.Region,
		opts.SafeSearch, opts.SortBy, opts.SortOrder)
}
