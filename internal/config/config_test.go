package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"job_url": "https://www.camhr.com/a/job/1",
		"use_browser": true,
		"top_n": 5,
		"database_url": "postgres://localhost/jobs"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://www.camhr.com/a/job/1", cfg.JobURL)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{broken"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	input := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(input, []byte("text"), 0644))

	valid := &Config{Input: input, TopN: 10}
	assert.NoError(t, valid.Validate())

	both := &Config{Input: input, JobURL: "https://example.com"}
	assert.Error(t, both.Validate())

	negative := &Config{TopN: -1}
	assert.Error(t, negative.Validate())

	missingInput := &Config{Input: filepath.Join(t.TempDir(), "nope.txt")}
	assert.Error(t, missingInput.Validate())

	missingResources := &Config{Resource: filepath.Join(t.TempDir(), "nope")}
	assert.Error(t, missingResources.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{JobURL: "https://example.com/job"}

	merged := cfg.MergeWithDefaults(Config{
		DatabaseURL: "postgres://localhost/jobs",
		BatchSize:   25,
		Verbose:     true,
	})

	assert.Equal(t, "https://example.com/job", merged.JobURL)
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
	assert.Equal(t, 25, merged.BatchSize)
	// Bools are ORed; set on either side means set.
	assert.True(t, merged.Verbose)
	assert.False(t, merged.UseBrowser)
	// TopN falls back to the built-in default when neither side sets it.
	assert.Equal(t, 20, merged.TopN)
}

func TestMergeWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{TopN: 5, DatabaseURL: "postgres://custom/db"}

	merged := cfg.MergeWithDefaults(Config{TopN: 50, DatabaseURL: "postgres://default/db"})

	assert.Equal(t, 5, merged.TopN)
	assert.Equal(t, "postgres://custom/db", merged.DatabaseURL)
}
