package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/chalinh/jobmatch/internal/refdata"
)

var alnumOnly = regexp.MustCompile(`^[a-z0-9 ]+$`)

type termPattern struct {
	term string
	re   *regexp.Regexp
}

// KnownTermMatcher scans text against the whole skill vocabulary with
// per-term boundary-aware patterns. Highest-precision strategy.
type KnownTermMatcher struct {
	patterns []termPattern
}

// NewKnownTermMatcher compiles one pattern per vocabulary term. Terms made
// of letters, digits, and spaces use word boundaries; terms carrying symbols
// such as "c++" or "c#" use explicit delimiter classes, since a word
// boundary does not exist after a symbol character.
func NewKnownTermMatcher(store *refdata.Store) *KnownTermMatcher {
	m := &KnownTermMatcher{patterns: make([]termPattern, 0, len(store.VocabularyTerms))}
	for _, term := range store.VocabularyTerms {
		quoted := regexp.QuoteMeta(term)
		var expr string
		if alnumOnly.MatchString(term) {
			expr = `\b` + quoted + `\b`
		} else {
			expr = `(?:^|[\s,;(])` + quoted + `(?:[\s,;)]|$)`
		}
		m.patterns = append(m.patterns, termPattern{term: term, re: regexp.MustCompile(expr)})
	}
	return m
}

func (m *KnownTermMatcher) Name() string { return StrategyKnownTerms }

// Extract returns every vocabulary term present in the text.
func (m *KnownTermMatcher) Extract(_ context.Context, text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	found := make(map[string]struct{})
	for _, p := range m.patterns {
		if p.re.MatchString(lower) {
			found[p.term] = struct{}{}
		}
	}
	return sortedSet(found)
}
