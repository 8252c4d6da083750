// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Inputs
	Input    string `json:"input,omitempty"`     // Path to a job posting text file or raw scrape dump
	JobURL   string `json:"job_url,omitempty"`   // URL to fetch a job posting from
	Resource string `json:"resources,omitempty"` // Directory overriding the embedded reference tables

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the education fallback
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for JavaScript-rendered boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed diagnostics
	JSONLogs    bool   `json:"json_logs,omitempty"`    // Emit structured JSON logs
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Limits
	TopN      int `json:"top_n,omitempty"`      // Matches returned by the match command
	BatchSize int `json:"batch_size,omitempty"` // Concurrent texts during batch extraction
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration values. Required fields are enforced by
// CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'input' and 'job_url' are mutually exclusive")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Resource != "" {
		if _, err := os.Stat(c.Resource); os.IsNotExist(err) {
			return fmt.Errorf("config error: resource directory not found: %s", c.Resource)
		}
	}
	return nil
}

// MergeWithDefaults fills empty fields from defaults. Bool fields are ORed:
// set on either side means set.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Resource == "" {
		result.Resource = defaults.Resource
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSONLogs = result.JSONLogs || defaults.JSONLogs

	if result.TopN == 0 {
		if defaults.TopN > 0 {
			result.TopN = defaults.TopN
		} else {
			result.TopN = 20
		}
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}

	return result
}
