// Package cli holds the websearch command's configuration layering and
// result rendering. The precedence is flags, then environment, then an
// optional config file, then built-in defaults.
package cli

import "time"

// Config holds the resolved runtime configuration for one invocation.
type Config struct {
	Query string

	// Provider selects the backend: duckduckgo, arxiv or file.
	Provider string

	MaxResults int
	Language   string
	Region     string
	SafeSearch string

	// ArxivIDs is a comma-separated paper-ID list; when set with the
	// arxiv provider it replaces the free-text query.
	ArxivIDs  string
	SortBy    string
	SortOrder string

	// Format selects the rendering: table, simple, json or pdf.
	Format string
	// OutputPath is the target file for pdf output.
	OutputPath string
	// ShowRaw includes the retained backend payload in table output.
	ShowRaw bool

	// SearchFile points the file provider at its JSON fixture.
	SearchFile string

	UserAgent string
	Timeout   time.Duration

	Debug   bool
	Verbose bool
}

const (
	DefaultProvider   = "duckduckgo"
	DefaultMaxResults = 10
	DefaultFormat     = "table"
)
