package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/websearch"
	"github.com/hyperifyio/websearch/internal/fetch"
	"github.com/hyperifyio/websearch/providers"
)

// Run executes one search per cfg and renders the outcome to w.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	prov, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg, prov)
	if err != nil {
		return err
	}

	results, err := websearch.Search(ctx, opts)
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(results)).Str("provider", prov.Name()).Msg("search completed")

	switch cfg.Format {
	case "", FormatTable:
		RenderTable(w, results, prov.Name(), cfg.ShowRaw)
	case FormatSimple:
		RenderSimple(w, results)
	case FormatJSON:
		return RenderJSON(w, results)
	case FormatPDF:
		out := cfg.OutputPath
		if out == "" {
			out = "results.pdf"
		}
		if err := WritePDF(results, prov.Name(), out); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", out).Msg("wrote PDF output")
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return nil
}

func buildProvider(cfg Config) (websearch.Provider, error) {
	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		PerRequestTimeout: cfg.Timeout,
	}
	switch cfg.Provider {
	case "", "duckduckgo":
		d := providers.NewDuckDuckGo()
		d.Client = client
		return d, nil
	case "arxiv":
		a := providers.NewArxiv()
		a.Client = client
		return a, nil
	case "file":
		return &providers.FileProvider{Path: cfg.SearchFile}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func buildOptions(cfg Config, prov websearch.Provider) (websearch.Options, error) {
	safe, err := websearch.ParseSafeSearch(cfg.SafeSearch)
	if err != nil {
		return websearch.Options{}, err
	}
	sortBy, err := websearch.ParseSortBy(cfg.SortBy)
	if err != nil {
		return websearch.Options{}, err
	}
	sortOrder, err := websearch.ParseSortOrder(cfg.SortOrder)
	if err != nil {
		return websearch.Options{}, err
	}

	opts := websearch.Options{
		Query:      cfg.Query,
		MaxResults: cfg.MaxResults,
		Language:   cfg.Language,
		Region:     cfg.Region,
		SafeSearch: safe,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Provider:   prov,
		Debug: websearch.DebugOptions{
			Enabled:     cfg.Debug,
			LogRequests: cfg.Debug,
		},
	}
	// ID lookup replaces the free-text query for the arxiv provider.
	if prov.Name() == "arxiv" && cfg.ArxivIDs != "" {
		opts.Query = ""
		opts.IDList = cfg.ArxivIDs
	}
	return opts, nil
}
