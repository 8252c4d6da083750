package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultConfig(), testStore(t), nil, nil)
}

func TestEngineExtractSkills(t *testing.T) {
	e := newTestEngine(t)

	got := e.ExtractSkills(context.Background(), "Experience with C++ and SQL required.")

	assert.Equal(t, []string{"c++", "sql"}, got)
}

func TestEngineExtractSkillsEmptyInput(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, []string{}, e.ExtractSkills(context.Background(), ""))
	assert.Equal(t, []string{}, e.ExtractSkills(context.Background(), "   \n\t"))
}

func TestEngineDegradesWithoutProvider(t *testing.T) {
	e := newTestEngine(t)

	// Lexical strategies alone still find vocabulary and soft skills.
	got := e.ExtractSkills(context.Background(),
		"Requirements:\n- Python\n- Communication\nProficiency in excel.")

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "excel")
	assert.Contains(t, got, "communication")
}

func TestEngineStats(t *testing.T) {
	e := newTestEngine(t)

	skills, stats := e.ExtractSkillsStats(context.Background(), "Experience with C++ and SQL required.")

	require.Len(t, stats.ByStrategy, 6)
	assert.Contains(t, stats.ByStrategy[StrategyKnownTerms], "c++")
	assert.Contains(t, stats.ByStrategy[StrategyKnownTerms], "sql")
	assert.Empty(t, stats.ByStrategy[StrategyKeyphrase])

	// c++ is found by both the known-term matcher and the direct scanner.
	assert.Equal(t,
		strategyWeights[StrategyKnownTerms]+strategyWeights[StrategyDirectScan],
		stats.Weights["c++"])
	assert.Equal(t, strategyWeights[StrategyKnownTerms], stats.Weights["sql"])

	assert.Equal(t, skills, stats.Skills)
	assert.Equal(t, len(skills), stats.Final)
	assert.GreaterOrEqual(t, stats.Fused, stats.Final)
}

func TestEngineBatchMatchesSingle(t *testing.T) {
	e := newTestEngine(t)

	texts := []string{
		"Experience with C++ and SQL required.",
		"Requirements:\n- Python\n- Excel",
		"",
		"Strong teamwork and communication.",
	}

	batch := e.ExtractSkillsBatch(context.Background(), texts)

	require.Len(t, batch, len(texts))
	for i, text := range texts {
		assert.Equal(t, e.ExtractSkills(context.Background(), text), batch[i], "text %d", i)
	}
}

func TestEngineBatchEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.ExtractSkillsBatch(context.Background(), nil))
}
