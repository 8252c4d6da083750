// Package postprocess refines fused skill candidates in three ordered
// stages: normalization, validation, and deduplication.
package postprocess

import (
	"regexp"
	"sort"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^\w\s\-/.+#&]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// CleanSkill strips characters outside {alphanumeric, whitespace, hyphen,
// slash, period, plus, hash, ampersand} and collapses whitespace runs.
func CleanSkill(skill string) string {
	if skill == "" {
		return ""
	}
	skill = disallowedChars.ReplaceAllString(skill, "")
	skill = whitespaceRuns.ReplaceAllString(skill, " ")
	return strings.TrimSpace(skill)
}

// NormalizeText lowercases and collapses whitespace.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Normalizer cleans and lowercases candidates, drops entries shorter than
// two characters, and returns the unique survivors sorted.
type Normalizer struct{}

func NewNormalizer() *Normalizer { return &Normalizer{} }

func (n *Normalizer) Normalize(skills []string) []string {
	unique := make(map[string]struct{})
	for _, skill := range skills {
		normalized := n.NormalizeOne(skill)
		if len(normalized) < 2 {
			continue
		}
		unique[normalized] = struct{}{}
	}

	out := make([]string, 0, len(unique))
	for s := range unique {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NormalizeOne cleans and lowercases a single candidate.
func (n *Normalizer) NormalizeOne(skill string) string {
	return NormalizeText(CleanSkill(skill))
}
