package postprocess

// Pipeline chains the three refinement stages and records the size of each
// intermediate result for diagnostics.
type Pipeline struct {
	Normalizer   *Normalizer
	Validator    *Validator
	Deduplicator *Deduplicator
}

// StageSizes reports how many candidates survived each stage of one Run.
type StageSizes struct {
	Input       int
	Normalized  int
	Validated   int
	Deduplicate int
}

// NewPipeline wires the stages over the shared reference tables.
func NewPipeline(minLength, maxLength int, blacklist map[string]struct{}, synonyms map[string][]string) *Pipeline {
	return &Pipeline{
		Normalizer:   NewNormalizer(),
		Validator:    NewValidator(minLength, maxLength, blacklist),
		Deduplicator: NewDeduplicator(synonyms),
	}
}

// Run refines fused candidates into the final sorted skill list.
func (p *Pipeline) Run(skills []string) ([]string, StageSizes) {
	sizes := StageSizes{Input: len(skills)}

	normalized := p.Normalizer.Normalize(skills)
	sizes.Normalized = len(normalized)

	validated := p.Validator.Validate(normalized)
	sizes.Validated = len(validated)

	deduplicated := p.Deduplicator.Deduplicate(validated)
	sizes.Deduplicate = len(deduplicated)

	return deduplicated, sizes
}
