package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalinh/jobmatch/internal/education"
	"github.com/chalinh/jobmatch/internal/extraction"
	"github.com/chalinh/jobmatch/internal/refdata"
)

const rawDump = `[
  {
    "job_id": 421,
    "raw": {
      "pubdate": "2024-03-01",
      "expdate": "2024-04-01 00:00:00",
      "title": "Web Developer",
      "workyears": 2,
      "address": "St 271",
      "requirement": "Bachelor's degree in computer science. Experience with PHP and MySQL.",
      "description": "Build internal tools.",
      "jobLangs": [
        {"languageId": {"label": "English"}, "languageLevelId": {"label": "Good"}},
        {"languageId": {"label": ""}, "languageLevelId": {"label": "Good"}}
      ],
      "employer": {
        "company": "Acme Co",
        "locationId": {"label": "Phnom Penh"},
        "industrialId": {"label": "Information Technology"}
      }
    }
  }
]`

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	store := refdata.Load(refdata.Options{})
	engine := extraction.NewEngine(extraction.DefaultConfig(), store, nil, nil)
	resolver := education.NewResolver(store, nil, nil)
	return NewNormalizer(engine, resolver, nil)
}

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(rawDump))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "421", records[0].JobID.String())
	assert.Equal(t, "Web Developer", records[0].Raw.Title)
	assert.Equal(t, 2, records[0].Raw.WorkYears)
	assert.Len(t, records[0].Raw.JobLangs, 2)
}

func TestReadRecordsInvalidJSON(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(rawDump))
	require.NoError(t, err)

	posting := testNormalizer(t).Normalize(context.Background(), records[0])

	assert.Equal(t, "421", posting.JobID)
	assert.Equal(t, "web developer", posting.Title)
	assert.Equal(t, "Acme Co", posting.Company)
	assert.Equal(t, "phnom penh", posting.Location)
	assert.Equal(t, "Information Technology", posting.Industry)
	assert.Equal(t, 2, posting.MinYearsExperience)

	assert.Contains(t, posting.Skills, "php")
	assert.Contains(t, posting.Skills, "mysql")
	assert.Equal(t, "bachelor's degree", posting.EducationLevel)
	assert.Equal(t, "computer science", posting.EducationMajor)

	// The language entry with an empty label is skipped.
	require.Len(t, posting.Languages, 1)
	assert.Equal(t, "english", posting.Languages[0].Name)
	assert.Equal(t, "good", posting.Languages[0].Level)

	require.NotNil(t, posting.PubDate)
	assert.Equal(t, "2024-03-01", posting.PubDate.Format("2006-01-02"))
	require.NotNil(t, posting.ExpDate)
	assert.Equal(t, "2024-04-01", posting.ExpDate.Format("2006-01-02"))
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	n := testNormalizer(t)
	records := []RawRecord{
		{JobID: "1", Raw: RawJob{Title: "First"}},
		{JobID: "2", Raw: RawJob{Title: "Second"}},
	}

	postings := n.NormalizeAll(context.Background(), records)

	require.Len(t, postings, 2)
	assert.Equal(t, "1", postings[0].JobID)
	assert.Equal(t, "2", postings[1].JobID)
	assert.Equal(t, []string{}, postings[0].Skills)
}

func TestParseDate(t *testing.T) {
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
	assert.NotNil(t, parseDate("2024-01-15"))
	assert.NotNil(t, parseDate("2024-01-15 08:30:00"))
	assert.NotNil(t, parseDate("2024-01-15T08:30:00Z"))
}
