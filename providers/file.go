package providers

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/hyperifyio/websearch"
)

// FileProvider serves results from a local JSON file for offline and
// testing use. The file holds an array of result objects using the
// normalized field names ({"title": ..., "url": ..., "snippet": ...}).
type FileProvider struct {
	Path string
}

func (f *FileProvider) Name() string { return "file" }

func (f *FileProvider) Search(_ context.Context, opts *websearch.Options) ([]websearch.Result, error) {
	if opts.Query == "" && opts.IDList != "" {
		return nil, &websearch.InvalidInputError{Message: "file provider does not support ID-based lookup"}
	}
	if strings.TrimSpace(f.Path) == "" {
		return nil, &websearch.OtherError{Message: "file provider path is empty"}
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &websearch.OtherError{Message: err.Error()}
	}
	var raw []websearch.Result
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &websearch.ParseError{Message: err.Error()}
	}

	q := strings.ToLower(strings.TrimSpace(opts.Query))
	out := make([]websearch.Result, 0, len(raw))
	for _, r := range raw {
		if r.URL == "" || r.Title == "" {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Snippet), q) {
			r.Provider = f.Name()
			out = append(out, r)
			if opts.MaxResults > 0 && len(out) >= opts.MaxResults {
				break
			}
		}
	}
	return out, nil
}
