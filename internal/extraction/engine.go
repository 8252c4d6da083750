// Package extraction fuses six complementary strategies into one skill
// extraction engine for job posting text.
package extraction

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chalinh/jobmatch/internal/capability"
	"github.com/chalinh/jobmatch/internal/postprocess"
	"github.com/chalinh/jobmatch/internal/refdata"
)

// Engine runs every strategy over a text, fuses the candidate sets, and
// refines them through the post-processing pipeline. Engines are safe for
// concurrent use; all state is read-only after construction.
type Engine struct {
	cfg        Config
	strategies []Strategy
	pipeline   *postprocess.Pipeline
	log        *zap.Logger
}

// Stats is the diagnostics view of one extraction: per-strategy candidates,
// fused weights, and the size of every pipeline stage.
type Stats struct {
	ByStrategy map[string][]string
	// Weights holds, per fused skill, the summed trust weight of the
	// strategies that proposed it. Diagnostics only.
	Weights    map[string]int
	Fused      int
	Normalized int
	Validated  int
	Final      int
	Skills     []string
}

// NewEngine wires the fixed strategy set over the reference store and the
// capability provider. A nil provider disables the semantic strategies.
func NewEngine(cfg Config, store *refdata.Store, provider *capability.Provider, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if provider == nil {
		provider = capability.Disabled()
	}

	return &Engine{
		cfg: cfg,
		strategies: []Strategy{
			NewKnownTermMatcher(store),
			NewDirectScanner(store),
			NewSectionParser(store, cfg),
			NewKeyphraseStrategy(provider.Keyphrases, provider.POS, cfg, log),
			NewEntityStrategy(provider.Entities, store, cfg, log),
			NewSoftSkillMatcher(store),
		},
		pipeline: postprocess.NewPipeline(cfg.MinSkillLength, cfg.MaxSkillLength, store.Blacklist, store.Synonyms),
		log:      log,
	}
}

// ExtractSkills returns the sorted unique skills of one text. Empty input
// yields an empty slice; no input makes extraction fail.
func (e *Engine) ExtractSkills(ctx context.Context, text string) []string {
	skills, _ := e.extract(ctx, text)
	return skills
}

// ExtractSkillsStats extracts and additionally reports per-strategy and
// per-stage diagnostics.
func (e *Engine) ExtractSkillsStats(ctx context.Context, text string) ([]string, Stats) {
	return e.extract(ctx, text)
}

// ExtractSkillsBatch extracts skills for every text, order preserved.
// Element i equals ExtractSkills(texts[i]); texts run concurrently up to
// the configured batch width.
func (e *Engine) ExtractSkillsBatch(ctx context.Context, texts []string) [][]string {
	results := make([][]string, len(texts))
	if len(texts) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	limit := e.cfg.BatchSize
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, text := range texts {
		g.Go(func() error {
			results[i] = e.ExtractSkills(gctx, text)
			return nil
		})
	}
	// Workers never return errors; extraction degrades instead of failing.
	_ = g.Wait()
	return results
}

func (e *Engine) extract(ctx context.Context, text string) ([]string, Stats) {
	stats := Stats{
		ByStrategy: make(map[string][]string),
		Weights:    make(map[string]int),
		Skills:     []string{},
	}
	if strings.TrimSpace(text) == "" {
		return []string{}, stats
	}

	for _, strategy := range e.strategies {
		candidates := strategy.Extract(ctx, text)
		stats.ByStrategy[strategy.Name()] = candidates

		weight := strategyWeights[strategy.Name()]
		for _, candidate := range candidates {
			stats.Weights[strings.ToLower(candidate)] += weight
		}
	}

	fused := make([]string, 0, len(stats.Weights))
	for skill := range stats.Weights {
		fused = append(fused, skill)
	}
	stats.Fused = len(fused)

	skills, sizes := e.pipeline.Run(fused)
	stats.Normalized = sizes.Normalized
	stats.Validated = sizes.Validated
	stats.Final = sizes.Deduplicate
	stats.Skills = skills

	e.log.Debug("skills extracted",
		zap.Int("fused", stats.Fused),
		zap.Int("final", stats.Final))
	return skills, stats
}
