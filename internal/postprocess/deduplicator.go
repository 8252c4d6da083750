package postprocess

import (
	"sort"
	"strings"
)

// Deduplicator removes exact duplicates, canonicalizes synonyms to their
// main term, and collapses skills subsumed by a longer skill.
type Deduplicator struct {
	// canonical maps every lowercase surface form, main terms included, to
	// its lowercase main term.
	canonical map[string]string
}

// NewDeduplicator indexes the synonym map (main term to alternate surface
// forms) for constant-time canonicalization.
func NewDeduplicator(synonyms map[string][]string) *Deduplicator {
	canonical := make(map[string]string)
	for main, alts := range synonyms {
		mainLower := strings.ToLower(main)
		canonical[mainLower] = mainLower
		for _, alt := range alts {
			canonical[strings.ToLower(alt)] = mainLower
		}
	}
	return &Deduplicator{canonical: canonical}
}

// Deduplicate applies the three passes in order and returns the result
// alphabetically sorted. The operation is idempotent.
func (d *Deduplicator) Deduplicate(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	unique := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if main, ok := d.canonical[lower]; ok {
			lower = main
		}
		unique[lower] = struct{}{}
	}

	merged := make([]string, 0, len(unique))
	for s := range unique {
		merged = append(merged, s)
	}

	kept := collapseSubsumed(merged)
	sort.Strings(kept)
	return kept
}

// collapseSubsumed drops a skill when its words form a proper subset of a
// longer kept skill's significant words. Role words do not count as
// significant, so "sales" survives next to "sales manager" while "python"
// collapses into "python programming".
func collapseSubsumed(skills []string) []string {
	sort.Slice(skills, func(i, j int) bool {
		if len(skills[i]) != len(skills[j]) {
			return len(skills[i]) > len(skills[j])
		}
		return skills[i] < skills[j]
	})

	kept := make([]string, 0, len(skills))
	for _, skill := range skills {
		words := wordSet(skill)
		subsumed := false
		for _, longer := range kept {
			if isProperSubset(words, significantWords(longer)) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, skill)
		}
	}
	return kept
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// significantWords is the word set minus job-role suffix words.
func significantWords(s string) map[string]struct{} {
	set := wordSet(s)
	for _, role := range jobRoleSuffixes {
		delete(set, role)
	}
	return set
}

func isProperSubset(sub, super map[string]struct{}) bool {
	if len(sub) >= len(super) {
		return false
	}
	for w := range sub {
		if _, ok := super[w]; !ok {
			return false
		}
	}
	return true
}
