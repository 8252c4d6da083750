package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalinh/jobmatch/internal/refdata"
)

func testStore(t *testing.T) *refdata.Store {
	t.Helper()
	return refdata.Load(refdata.Options{})
}

func TestKnownTermMatcherWordBoundaries(t *testing.T) {
	m := NewKnownTermMatcher(testStore(t))

	got := m.Extract(context.Background(), "We use Java and MySQL in production.")

	assert.Contains(t, got, "java")
	assert.Contains(t, got, "mysql")
	// "javascript" must not fire on "java".
	assert.NotContains(t, got, "javascript")
}

func TestKnownTermMatcherSymbolTerms(t *testing.T) {
	m := NewKnownTermMatcher(testStore(t))

	got := m.Extract(context.Background(), "Experience with C++ and C# required")

	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "c#")
}

func TestKnownTermMatcherNoSubstringHits(t *testing.T) {
	m := NewKnownTermMatcher(testStore(t))

	// "go" inside "google" and "r" inside "requirements" must not match.
	got := m.Extract(context.Background(), "google requirements")

	assert.NotContains(t, got, "go")
	assert.NotContains(t, got, "r")
}

func TestKnownTermMatcherEmptyText(t *testing.T) {
	m := NewKnownTermMatcher(testStore(t))
	assert.Empty(t, m.Extract(context.Background(), ""))
}
