package cli

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Provider == "" || cfg.Provider == DefaultProvider {
		if v := os.Getenv("WEBSEARCH_PROVIDER"); v != "" {
			cfg.Provider = v
		}
	}
	if cfg.Language == "" {
		cfg.Language = os.Getenv("WEBSEARCH_LANG")
	}
	if cfg.Region == "" {
		cfg.Region = os.Getenv("WEBSEARCH_REGION")
	}
	if cfg.Format == "" || cfg.Format == DefaultFormat {
		if v := os.Getenv("WEBSEARCH_FORMAT"); v != "" {
			cfg.Format = v
		}
	}
	if cfg.SearchFile == "" {
		cfg.SearchFile = os.Getenv("WEBSEARCH_FILE")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("WEBSEARCH_UA")
	}
	if cfg.Timeout == 0 {
		if v := os.Getenv("WEBSEARCH_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfg.Timeout = d
			}
		}
	}
	if cfg.MaxResults == 0 || cfg.MaxResults == DefaultMaxResults {
		if v := os.Getenv("WEBSEARCH_MAX"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.MaxResults = n
			}
		}
	}
}
