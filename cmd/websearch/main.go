package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/websearch/internal/cli"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		provider   string
		maxResults int
		lang       string
		region     string
		safeSearch string
		arxivIDs   string
		sortBy     string
		sortOrder  string
		format     string
		outputPath string
		searchFile string
		userAgent  string
		timeout    time.Duration
		configPath string
		debug      bool
		showRaw    bool
		verbose    bool
	)

	flag.StringVar(&provider, "provider", cli.DefaultProvider, "Search provider (duckduckgo, arxiv or file)")
	flag.IntVar(&maxResults, "max", cli.DefaultMaxResults, "Maximum number of results")
	flag.StringVar(&lang, "lang", "", "Optional language hint, e.g. 'en' or 'fi'")
	flag.StringVar(&region, "region", "", "Optional region hint, e.g. 'US' or 'DE'")
	flag.StringVar(&safeSearch, "safesearch", "", "Safe search setting (off, moderate or strict)")
	flag.StringVar(&arxivIDs, "arxiv.ids", "", "Comma-separated ArXiv paper IDs (replaces the query for the arxiv provider)")
	flag.StringVar(&sortBy, "sort.by", "", "Sort field (relevance, submitteddate or lastupdateddate)")
	flag.StringVar(&sortOrder, "sort.order", "", "Sort order (ascending or descending)")
	flag.StringVar(&format, "format", cli.DefaultFormat, "Output format (table, simple, json or pdf)")
	flag.StringVar(&outputPath, "output", "", "Output file path for pdf format")
	flag.StringVar(&searchFile, "search.file", os.Getenv("WEBSEARCH_FILE"), "Path to JSON file for the offline file provider")
	flag.StringVar(&userAgent, "ua", os.Getenv("WEBSEARCH_UA"), "Custom User-Agent for provider requests")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (e.g. 15s); 0 uses the default")
	flag.StringVar(&configPath, "config", os.Getenv("WEBSEARCH_CONFIG"), "Path to YAML/JSON config file")
	flag.BoolVar(&debug, "debug", false, "Enable search diagnostics")
	flag.BoolVar(&showRaw, "raw", false, "Show raw provider payloads in table output")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" && arxivIDs == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query is required")
		fmt.Fprintln(os.Stderr, `Usage: websearch [flags] "your search query"`)
		fmt.Fprintln(os.Stderr, "Try: websearch -h")
		os.Exit(1)
	}

	cfg := cli.Config{
		Query:      query,
		Provider:   provider,
		MaxResults: maxResults,
		Language:   lang,
		Region:     region,
		SafeSearch: safeSearch,
		ArxivIDs:   arxivIDs,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Format:     format,
		OutputPath: outputPath,
		SearchFile: searchFile,
		UserAgent:  userAgent,
		Timeout:    timeout,
		Debug:      debug,
		ShowRaw:    showRaw,
		Verbose:    verbose,
	}

	cli.ApplyEnvToConfig(&cfg)
	if path := resolveConfigPath(configPath); path != "" {
		fc, err := cli.LoadConfigFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to load config file")
			os.Exit(1)
		}
		cli.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose || cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cli.Run(context.Background(), cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("search failed")
		os.Exit(1)
	}
}

// resolveConfigPath returns the explicit path when given, otherwise
// ~/.websearch.yaml when it exists.
func resolveConfigPath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".websearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
