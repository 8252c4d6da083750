package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEducationPrompts(t *testing.T) {
	level, err := Get("education.json", "level")
	require.NoError(t, err)
	assert.Contains(t, level, "education level")
	assert.Contains(t, level, "{{.Text}}")

	major, err := Get("education.json", "major")
	require.NoError(t, err)
	assert.Contains(t, major, "field of study")
	assert.Contains(t, major, "{{.Text}}")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("education.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "level")
	require.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("education.json", "nope")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Level for: {{.Text}}", map[string]string{"Text": "BSc required"})
	assert.Equal(t, "Level for: BSc required", out)

	// Unknown placeholders stay untouched.
	out = Format("{{.Other}} stays", map[string]string{"Text": "x"})
	assert.Equal(t, "{{.Other}} stays", out)
}

func TestCacheSurvivesClear(t *testing.T) {
	ClearCache()
	first, err := Get("education.json", "level")
	require.NoError(t, err)

	ClearCache()
	second, err := Get("education.json", "level")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
