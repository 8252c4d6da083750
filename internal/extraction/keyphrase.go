package extraction

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/capability"
	"github.com/chalinh/jobmatch/internal/postprocess"
)

// qualifierWords mark requirement phrasing rather than skill names.
var qualifierWords = map[string]struct{}{
	"strong": {}, "good": {}, "excellent": {}, "solid": {},
	"proven": {}, "required": {}, "preferred": {}, "minimum": {},
	"relevant": {}, "demonstrated": {}, "extensive": {},
}

// KeyphraseStrategy filters semantically scored phrases from the keyphrase
// capability. The first provider failure latches the strategy off for the
// lifetime of the engine; extraction continues on the lexical strategies.
type KeyphraseStrategy struct {
	provider capability.KeyphraseExtractor
	tagger   capability.POSTagger
	cfg      Config
	log      *zap.Logger
	disabled atomic.Bool
}

func NewKeyphraseStrategy(provider capability.KeyphraseExtractor, tagger capability.POSTagger, cfg Config, log *zap.Logger) *KeyphraseStrategy {
	if log == nil {
		log = zap.NewNop()
	}
	return &KeyphraseStrategy{provider: provider, tagger: tagger, cfg: cfg, log: log}
}

func (k *KeyphraseStrategy) Name() string { return StrategyKeyphrase }

func (k *KeyphraseStrategy) Extract(ctx context.Context, text string) []string {
	if k.provider == nil || k.disabled.Load() || text == "" {
		return nil
	}

	phrases, err := k.provider.ExtractKeyphrases(ctx, text, capability.KeyphraseOptions{
		NgramMin:  k.cfg.KeyphraseNgramMin,
		NgramMax:  k.cfg.KeyphraseNgramMax,
		Diversity: k.cfg.KeyphraseDiversity,
		TopN:      k.cfg.KeyphraseTopN,
	})
	if err != nil {
		k.disabled.Store(true)
		k.log.Warn("keyphrase capability failed, strategy disabled for this engine",
			zap.Error(err))
		return nil
	}

	found := make(map[string]struct{})
	for _, kp := range phrases {
		if kp.Score < k.cfg.KeyphraseThreshold {
			continue
		}
		phrase := postprocess.CleanSkill(strings.ToLower(kp.Phrase))
		if len(phrase) < 2 || len(phrase) > 40 {
			continue
		}
		if isVerbosePhrase(phrase) {
			continue
		}
		if !k.posAccepts(ctx, phrase) {
			continue
		}
		if !IsLikelySkill(phrase) {
			continue
		}
		found[phrase] = struct{}{}
	}
	return sortedSet(found)
}

// isVerbosePhrase rejects requirement prose: long phrases and anything
// built around qualifier words. A two-word phrase that merely contains a
// qualifier without leading with it stays.
func isVerbosePhrase(phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) > 4 || len(phrase) > 40 {
		return true
	}
	hasQualifier := false
	for _, w := range words {
		if _, ok := qualifierWords[w]; ok {
			hasQualifier = true
			break
		}
	}
	if !hasQualifier {
		return false
	}
	if len(words) <= 2 {
		if _, leads := qualifierWords[words[0]]; !leads {
			return false
		}
	}
	return true
}

// posAccepts keeps phrases anchored on a noun and not led by a verb or
// adverb. Permissive by default: no tagger or a tagger error keeps the
// phrase.
func (k *KeyphraseStrategy) posAccepts(ctx context.Context, phrase string) bool {
	if k.tagger == nil {
		return true
	}
	tokens, err := k.tagger.Tag(ctx, phrase)
	if err != nil || len(tokens) == 0 {
		return true
	}

	hasNoun := false
	for _, t := range tokens {
		if t.Pos == capability.PosNoun || t.Pos == capability.PosProperNoun {
			hasNoun = true
			break
		}
	}
	if !hasNoun {
		return false
	}
	switch tokens[0].Pos {
	case capability.PosVerb, capability.PosAdverb:
		return false
	}
	return true
}
