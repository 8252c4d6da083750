package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var (
	bulletMarkers = regexp.MustCompile(`^[\s\-*•\d.]+\s*`)
	headerLike    = regexp.MustCompile(`^[\w\s]+:`)
	lineBreaks    = regexp.MustCompile(`[\n\r]+`)
	inlineSeps    = regexp.MustCompile(`[;,]`)
)

// ExtractSection locates a case-insensitive section header anywhere in a
// line and returns the remainder of that line plus the run of lines up to
// the next header-like line or end of text. Returns "" when the header is
// absent.
func ExtractSection(text, header string) string {
	lower := strings.ToLower(text)
	header = strings.ToLower(header)

	lines := strings.Split(lower, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		idx := strings.Index(trimmed, header)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(trimmed[idx+len(header):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))

		captured := []string{rest}
		for _, next := range lines[i+1:] {
			if headerLike.MatchString(strings.TrimSpace(next)) {
				break
			}
			captured = append(captured, next)
		}
		return strings.TrimSpace(strings.Join(captured, "\n"))
	}
	return ""
}

// ParseListItems splits a captured section into candidate items: one item
// per line with bullet/number markers stripped, then further split on
// commas and semicolons to recover inline lists.
func ParseListItems(text string) []string {
	var items []string
	for _, line := range lineBreaks.Split(text, -1) {
		line = bulletMarkers.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, sub := range inlineSeps.Split(line, -1) {
			sub = strings.TrimSpace(sub)
			if sub != "" {
				items = append(items, sub)
			}
		}
	}
	return items
}

// stopWords are common function words; more than two of them marks an item
// as a sentence fragment rather than a skill name.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "for": {}, "with": {},
	"in": {}, "to": {}, "of": {}, "a": {}, "an": {},
}

var modalPhrases = []string{"will", "can", "must", "should", "able to", "required to"}

// IsLikelySkill is the heuristic gate for free-form candidates: rejects
// empty, over-long, stop-word-heavy, and modal-verb-bearing items.
func IsLikelySkill(text string) bool {
	if len(text) < 2 {
		return false
	}
	if len(text) > 50 {
		return false
	}

	stopCount := 0
	for _, word := range strings.Fields(text) {
		if _, ok := stopWords[word]; ok {
			stopCount++
		}
	}
	if stopCount > 2 {
		return false
	}

	for _, modal := range modalPhrases {
		if strings.Contains(text, modal) {
			return false
		}
	}
	return true
}

// sortedSet returns the set's members alphabetically sorted.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
