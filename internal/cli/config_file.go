package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional configuration file schema. Nested
// sections map naturally to the flag names.
type FileConfig struct {
	Provider string `yaml:"provider" json:"provider"`
	Max      int    `yaml:"max" json:"max"`
	Language string `yaml:"language" json:"language"`
	Region   string `yaml:"region" json:"region"`

	SafeSearch string `yaml:"safeSearch" json:"safeSearch"`

	Sort struct {
		By    string `yaml:"by" json:"by"`
		Order string `yaml:"order" json:"order"`
	} `yaml:"sort" json:"sort"`

	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`

	Search struct {
		File string `yaml:"file" json:"file"`
	} `yaml:"search" json:"search"`

	HTTP struct {
		UA      string        `yaml:"ua" json:"ua"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"http" json:"http"`

	Debug   bool `yaml:"debug" json:"debug"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any
// fields still at their defaults. Flags and env should already have
// been applied; this lets the file supply the remaining values without
// overriding explicit settings.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Provider == "" || cfg.Provider == DefaultProvider {
		if fc.Provider != "" {
			cfg.Provider = fc.Provider
		}
	}
	if cfg.MaxResults == 0 || cfg.MaxResults == DefaultMaxResults {
		if fc.Max > 0 {
			cfg.MaxResults = fc.Max
		}
	}
	if cfg.Language == "" {
		cfg.Language = fc.Language
	}
	if cfg.Region == "" {
		cfg.Region = fc.Region
	}
	if cfg.SafeSearch == "" {
		cfg.SafeSearch = fc.SafeSearch
	}
	if cfg.SortBy == "" {
		cfg.SortBy = fc.Sort.By
	}
	if cfg.SortOrder == "" {
		cfg.SortOrder = fc.Sort.Order
	}
	if cfg.Format == "" || cfg.Format == DefaultFormat {
		if fc.Format != "" {
			cfg.Format = fc.Format
		}
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.SearchFile == "" {
		cfg.SearchFile = fc.Search.File
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.HTTP.UA
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = fc.HTTP.Timeout
	}
	if !cfg.Debug {
		cfg.Debug = fc.Debug
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
