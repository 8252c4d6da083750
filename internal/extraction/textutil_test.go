package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	text := "About Us:\nWe build things.\n\nRequirements:\n- Python\n- SQL\n\nBenefits:\nFree lunch."

	section := ExtractSection(text, "requirements")

	assert.Contains(t, section, "python")
	assert.Contains(t, section, "sql")
	assert.NotContains(t, section, "free lunch")
}

func TestExtractSectionMissingHeader(t *testing.T) {
	assert.Equal(t, "", ExtractSection("no sections here", "requirements"))
}

func TestExtractSectionStopsAtNextHeader(t *testing.T) {
	text := "skills: excel, word\nhow to apply:\nsend cv"

	section := ExtractSection(text, "skills")

	assert.Equal(t, "excel, word", section)
}

func TestExtractSectionMidLineHeader(t *testing.T) {
	text := "Join our team. Key skills: excel, word\nhow to apply:\nsend cv"

	section := ExtractSection(text, "skills")

	assert.Equal(t, "excel, word", section)
}

func TestParseListItems(t *testing.T) {
	section := "- Python, SQL\n* Excel\n1. Accounting; Bookkeeping\n\n"

	items := ParseListItems(section)

	assert.Equal(t, []string{"Python", "SQL", "Excel", "Accounting", "Bookkeeping"}, items)
}

func TestIsLikelySkill(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"python", true},
		{"data analysis", true},
		{"x", false},
		{"the ability to work in a team for the benefit of all", false},
		{"must have driving license", false},
		{"able to communicate", false},
		{"financial reporting", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLikelySkill(tt.text), tt.text)
	}
}
