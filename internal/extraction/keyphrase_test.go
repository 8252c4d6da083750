package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalinh/jobmatch/internal/capability"
)

type stubKeyphraser struct {
	phrases []capability.Keyphrase
	err     error
	calls   int
}

func (s *stubKeyphraser) ExtractKeyphrases(_ context.Context, _ string, _ capability.KeyphraseOptions) ([]capability.Keyphrase, error) {
	s.calls++
	return s.phrases, s.err
}

type stubTagger struct {
	tokens map[string][]capability.Token
}

func (s *stubTagger) Tag(_ context.Context, phrase string) ([]capability.Token, error) {
	return s.tokens[phrase], nil
}

func TestKeyphraseStrategyFilters(t *testing.T) {
	provider := &stubKeyphraser{phrases: []capability.Keyphrase{
		{Phrase: "financial modeling", Score: 0.82},
		{Phrase: "low score phrase", Score: 0.10},
		{Phrase: "strong communication skills required here", Score: 0.90},
		{Phrase: "excellent writing", Score: 0.75},
	}}
	k := NewKeyphraseStrategy(provider, nil, DefaultConfig(), nil)

	got := k.Extract(context.Background(), "some posting text")

	assert.Contains(t, got, "financial modeling")
	assert.NotContains(t, got, "low score phrase")
	// Five-word qualifier prose is verbose.
	assert.NotContains(t, got, "strong communication skills required here")
	// Qualifier-led two-word phrase is verbose too.
	assert.NotContains(t, got, "excellent writing")
}

func TestKeyphraseStrategyPOSFilter(t *testing.T) {
	provider := &stubKeyphraser{phrases: []capability.Keyphrase{
		{Phrase: "manage quickly", Score: 0.9},
		{Phrase: "database design", Score: 0.9},
	}}
	tagger := &stubTagger{tokens: map[string][]capability.Token{
		"manage quickly": {
			{Text: "manage", Pos: capability.PosVerb},
			{Text: "quickly", Pos: capability.PosAdverb},
		},
		"database design": {
			{Text: "database", Pos: capability.PosNoun},
			{Text: "design", Pos: capability.PosNoun},
		},
	}}
	k := NewKeyphraseStrategy(provider, tagger, DefaultConfig(), nil)

	got := k.Extract(context.Background(), "text")

	assert.Equal(t, []string{"database design"}, got)
}

func TestKeyphraseStrategyDisablesAfterFailure(t *testing.T) {
	provider := &stubKeyphraser{err: errors.New("model load failed")}
	k := NewKeyphraseStrategy(provider, nil, DefaultConfig(), nil)

	assert.Empty(t, k.Extract(context.Background(), "text"))
	assert.Empty(t, k.Extract(context.Background(), "text"))

	// The latch prevents the second provider call.
	assert.Equal(t, 1, provider.calls)
}

func TestKeyphraseStrategyNilProvider(t *testing.T) {
	k := NewKeyphraseStrategy(nil, nil, DefaultConfig(), nil)
	assert.Empty(t, k.Extract(context.Background(), "text"))
}
