package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftSkillMatcher(t *testing.T) {
	m := NewSoftSkillMatcher(testStore(t))

	got := m.Extract(context.Background(), "Good Communication and strong Teamwork, problem solving mindset")

	assert.Equal(t, []string{"communication", "problem solving", "teamwork"}, got)
}

func TestSoftSkillMatcherEmpty(t *testing.T) {
	m := NewSoftSkillMatcher(testStore(t))
	assert.Empty(t, m.Extract(context.Background(), ""))
	assert.Empty(t, m.Extract(context.Background(), "we sell vegetables"))
}
