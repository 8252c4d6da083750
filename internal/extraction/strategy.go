package extraction

import "context"

// Strategy names, used as keys in per-strategy diagnostics.
const (
	StrategyKnownTerms = "known_terms"
	StrategyDirectScan = "direct_scan"
	StrategySections   = "sections"
	StrategyKeyphrase  = "keyphrase"
	StrategyEntities   = "entities"
	StrategySoftSkills = "soft_skills"
)

// strategyWeights rank strategies by precision. Weights influence
// diagnostics only; fused output is the set union of all candidates.
var strategyWeights = map[string]int{
	StrategyKnownTerms: 12,
	StrategyDirectScan: 11,
	StrategySections:   9,
	StrategyKeyphrase:  6,
	StrategyEntities:   5,
	StrategySoftSkills: 4,
}

// Strategy is one extraction approach. Extract returns lowercase candidate
// skills; a strategy that cannot run returns an empty slice, never an error.
// The engine composes the fixed set of strategies; no external strategies
// are registered.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) []string
}
