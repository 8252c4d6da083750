package extraction

import (
	"context"
	"strings"

	"github.com/chalinh/jobmatch/internal/refdata"
)

// SoftSkillMatcher finds interpersonal skills by substring containment on
// the lowercased text. The soft-skill list is short and phrase-like, so
// containment is precise enough without boundary patterns.
type SoftSkillMatcher struct {
	skills []string
}

func NewSoftSkillMatcher(store *refdata.Store) *SoftSkillMatcher {
	return &SoftSkillMatcher{skills: store.SoftSkills}
}

func (m *SoftSkillMatcher) Name() string { return StrategySoftSkills }

func (m *SoftSkillMatcher) Extract(_ context.Context, text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	found := make(map[string]struct{})
	for _, skill := range m.skills {
		if strings.Contains(lower, skill) {
			found[skill] = struct{}{}
		}
	}
	return sortedSet(found)
}
