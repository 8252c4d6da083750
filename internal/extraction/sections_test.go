package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionParserVocabularyItems(t *testing.T) {
	p := NewSectionParser(testStore(t), DefaultConfig())

	text := "Job Description:\nDo things.\n\nRequirements:\n- Python\n- SQL\n- Strong interpersonal communication abilities across teams\n\nHow to apply:\nEmail us."

	got := p.Extract(context.Background(), text)

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "sql")
	// Long free-form prose fails the free-form gate.
	assert.NotContains(t, got, "strong interpersonal communication abilities across teams")
}

func TestSectionParserFreeFormItems(t *testing.T) {
	p := NewSectionParser(testStore(t), DefaultConfig())

	text := "Requirements:\n- cash handling\n- pos systems"

	got := p.Extract(context.Background(), text)

	assert.Contains(t, got, "cash handling")
	assert.Contains(t, got, "pos systems")
}

func TestSectionParserNoSection(t *testing.T) {
	p := NewSectionParser(testStore(t), DefaultConfig())
	assert.Empty(t, p.Extract(context.Background(), "We are a fast growing company."))
}
