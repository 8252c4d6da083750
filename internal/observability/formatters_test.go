package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalinh/jobmatch/internal/education"
	"github.com/chalinh/jobmatch/internal/extraction"
	"github.com/chalinh/jobmatch/internal/matching"
	"github.com/chalinh/jobmatch/internal/store"
)

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtraction(extraction.Stats{
		ByStrategy: map[string][]string{
			extraction.StrategyKnownTerms: {"python", "sql"},
		},
		Fused:      3,
		Normalized: 3,
		Validated:  2,
		Final:      2,
		Skills:     []string{"python", "sql"},
	})

	out := buf.String()
	assert.Contains(t, out, "Skill Extraction")
	assert.Contains(t, out, "known_terms")
	assert.Contains(t, out, "Fused:      3")
	assert.Contains(t, out, "- python")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintEducation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEducation(education.Education{Level: "bachelor's degree"})

	out := buf.String()
	assert.Contains(t, out, "Education Requirement")
	assert.Contains(t, out, "Level: bachelor's degree")
	assert.Contains(t, out, "Major: -")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]matching.Match{
		{
			Posting:       store.Posting{Title: "web developer", Company: "Acme"},
			Score:         0.87,
			SkillScore:    1.0,
			MissingSkills: []string{"docker"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Top 1 Matches")
	assert.Contains(t, out, "1. web developer at Acme (0.87)")
	assert.Contains(t, out, "missing: docker")
}
