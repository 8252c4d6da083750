// Package capability defines the boundary to external NLP capabilities:
// semantic keyphrase extraction, named-entity recognition, part-of-speech
// tagging, and free-text generation. The extraction engine depends only on
// these interfaces; concrete providers are injected at construction time.
package capability

import "context"

// Keyphrase is a candidate phrase with a relevance score in [0,1].
type Keyphrase struct {
	Phrase string
	Score  float64
}

// KeyphraseOptions configure a keyphrase extraction call.
type KeyphraseOptions struct {
	NgramMin  int
	NgramMax  int
	Diversity float64
	TopN      int
}

// KeyphraseExtractor returns scored candidate phrases for a text.
type KeyphraseExtractor interface {
	ExtractKeyphrases(ctx context.Context, text string, opts KeyphraseOptions) ([]Keyphrase, error)
}

// Entity is a typed span returned by a named-entity recognizer.
// Text preserves the original casing of the span.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer returns typed entity spans for a text, restricted to the
// given label allowlist. RecognizeBatch must be semantically equivalent to
// calling Recognize once per input, in order; providers may use a more
// efficient execution path internally.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string, labels []string) ([]Entity, error)
	RecognizeBatch(ctx context.Context, texts []string, labels []string) ([][]Entity, error)
}

// PartOfSpeech classes used by the keyphrase filter.
const (
	PosNoun       = "NOUN"
	PosProperNoun = "PROPN"
	PosAdjective  = "ADJ"
	PosVerb       = "VERB"
	PosAdverb     = "ADV"
)

// Token is a word with its part-of-speech class.
type Token struct {
	Text string
	Pos  string
}

// POSTagger tags the words of a short phrase. Optional: when absent the
// keyphrase filter is permissive.
type POSTagger interface {
	Tag(ctx context.Context, phrase string) ([]Token, error)
}

// TextGenerator produces free text from a prompt. Used by the education
// resolver as a last-resort fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error)
}

// Provider bundles every external capability the engine can use. Any field
// may be nil; the owning component degrades to an empty contribution.
type Provider struct {
	Keyphrases KeyphraseExtractor
	Entities   EntityRecognizer
	POS        POSTagger
	Generator  TextGenerator
}

// Disabled returns a provider with every capability absent. Extraction then
// relies solely on the lexical strategies.
func Disabled() *Provider {
	return &Provider{}
}
