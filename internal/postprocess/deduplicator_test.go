package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDeduplicator() *Deduplicator {
	return NewDeduplicator(map[string][]string{
		"microsoft office": {"ms office", "microsoft office suite", "office suite"},
		"javascript":       {"js", "java script"},
	})
}

func TestDeduplicateCanonicalizesSynonyms(t *testing.T) {
	d := newTestDeduplicator()

	got := d.Deduplicate([]string{"ms office", "microsoft office", "JS"})

	assert.Equal(t, []string{"javascript", "microsoft office"}, got)
}

func TestDeduplicateCollapsesSubsumed(t *testing.T) {
	d := newTestDeduplicator()

	got := d.Deduplicate([]string{"python", "python programming", "sql"})

	assert.Equal(t, []string{"python programming", "sql"}, got)
}

func TestDeduplicateKeepsRoleQualifiedPairs(t *testing.T) {
	d := newTestDeduplicator()

	// "manager" carries no skill meaning, so "sales" is not subsumed by
	// "sales manager".
	got := d.Deduplicate([]string{"sales", "sales manager"})

	assert.Equal(t, []string{"sales", "sales manager"}, got)
}

func TestDeduplicateExactDuplicates(t *testing.T) {
	d := newTestDeduplicator()

	got := d.Deduplicate([]string{"sql", "SQL", "sql"})

	assert.Equal(t, []string{"sql"}, got)
}

func TestDeduplicateIdempotent(t *testing.T) {
	d := newTestDeduplicator()

	once := d.Deduplicate([]string{"python", "python programming", "ms office", "sales", "sales manager"})
	twice := d.Deduplicate(once)

	assert.Equal(t, once, twice)
}

func TestDeduplicateEmpty(t *testing.T) {
	d := newTestDeduplicator()
	assert.Equal(t, []string{}, d.Deduplicate(nil))
}
