package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSkill(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps symbol skills", "C++", "C++"},
		{"keeps hash", "c#", "c#"},
		{"strips parentheses", "python (3.x)", "python 3.x"},
		{"collapses whitespace", "  data   analysis ", "data analysis"},
		{"keeps slash and ampersand", "ui/ux & design", "ui/ux & design"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSkill(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "sql server", NormalizeText("  SQL   Server "))
	assert.Equal(t, "", NormalizeText(""))
}

func TestNormalizerDropsShortAndDeduplicates(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize([]string{"Python", "python", "SQL", "a", "", "C++"})

	assert.Equal(t, []string{"c++", "python", "sql"}, got)
}

func TestNormalizeOne(t *testing.T) {
	n := NewNormalizer()
	assert.Equal(t, "node.js", n.NormalizeOne("  Node.js! "))
}
