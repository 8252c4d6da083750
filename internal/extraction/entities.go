package extraction

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/capability"
	"github.com/chalinh/jobmatch/internal/postprocess"
	"github.com/chalinh/jobmatch/internal/refdata"
)

// EntityStrategy keeps named entities that are either vocabulary members or
// short spans cased like product names. Only PRODUCT, ORG, and GPE labels
// are requested by default.
type EntityStrategy struct {
	provider capability.EntityRecognizer
	store    *refdata.Store
	labels   []string
	log      *zap.Logger
}

func NewEntityStrategy(provider capability.EntityRecognizer, store *refdata.Store, cfg Config, log *zap.Logger) *EntityStrategy {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntityStrategy{provider: provider, store: store, labels: cfg.EntityLabels, log: log}
}

func (e *EntityStrategy) Name() string { return StrategyEntities }

func (e *EntityStrategy) Extract(ctx context.Context, text string) []string {
	if e.provider == nil || text == "" {
		return nil
	}
	entities, err := e.provider.Recognize(ctx, text, e.labels)
	if err != nil {
		e.log.Warn("entity capability failed, skipping entity candidates", zap.Error(err))
		return nil
	}
	return e.filter(entities)
}

// ExtractBatch recognizes entities for many texts in one provider call.
// Results align with the inputs by index. A provider failure yields empty
// results for every text.
func (e *EntityStrategy) ExtractBatch(ctx context.Context, texts []string) [][]string {
	out := make([][]string, len(texts))
	if e.provider == nil || len(texts) == 0 {
		return out
	}
	batches, err := e.provider.RecognizeBatch(ctx, texts, e.labels)
	if err != nil || len(batches) != len(texts) {
		e.log.Warn("entity batch capability failed, skipping entity candidates",
			zap.Int("texts", len(texts)), zap.Error(err))
		return out
	}
	for i, entities := range batches {
		out[i] = e.filter(entities)
	}
	return out
}

func (e *EntityStrategy) filter(entities []capability.Entity) []string {
	found := make(map[string]struct{})
	for _, ent := range entities {
		span := postprocess.CleanSkill(ent.Text)
		lower := strings.ToLower(span)
		if lower == "" {
			continue
		}
		if e.store.HasSkill(lower) {
			found[lower] = struct{}{}
			continue
		}
		// Unknown entities are only trusted when short and cased like a
		// proper product or organization name.
		if len(lower) >= 2 && len(lower) <= 30 && hasUppercase(ent.Text) {
			found[lower] = struct{}{}
		}
	}
	return sortedSet(found)
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
