// Package ingest turns raw scraped job records into analyzed postings by
// running the extraction engine and the education resolver over their text.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/education"
	"github.com/chalinh/jobmatch/internal/extraction"
	"github.com/chalinh/jobmatch/internal/store"
)

// labeled is the {id, label} shape the job board API uses for enumerated
// fields.
type labeled struct {
	Label string `json:"label"`
}

// RawJobLang is one language requirement as scraped.
type RawJobLang struct {
	Language labeled `json:"languageId"`
	Level    labeled `json:"languageLevelId"`
}

// RawEmployer is the employer block as scraped.
type RawEmployer struct {
	Company    string  `json:"company"`
	Location   labeled `json:"locationId"`
	Industrial labeled `json:"industrialId"`
}

// RawJob is the payload of one scraped posting.
type RawJob struct {
	PubDate     string       `json:"pubdate"`
	ExpDate     string       `json:"expdate"`
	Title       string       `json:"title"`
	WorkYears   int          `json:"workyears"`
	Address     string       `json:"address"`
	Requirement string       `json:"requirement"`
	Description string       `json:"description"`
	JobLangs    []RawJobLang `json:"jobLangs"`
	Employer    RawEmployer  `json:"employer"`
}

// RawRecord is one scraped job with its source identity.
type RawRecord struct {
	JobID json.Number `json:"job_id"`
	Raw   RawJob      `json:"raw"`
}

// ReadRecords decodes a raw scrape dump, an array of records.
func ReadRecords(r io.Reader) ([]RawRecord, error) {
	var records []RawRecord
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse raw records: %w", err)
	}
	return records, nil
}

// Normalizer converts raw records into postings.
type Normalizer struct {
	engine   *extraction.Engine
	resolver *education.Resolver
	log      *zap.Logger
}

func NewNormalizer(engine *extraction.Engine, resolver *education.Resolver, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{engine: engine, resolver: resolver, log: log}
}

// Normalize analyzes one record. Skills come from the requirement and
// description combined; education is resolved from the requirement alone,
// where it is stated.
func (n *Normalizer) Normalize(ctx context.Context, rec RawRecord) store.Posting {
	raw := rec.Raw
	combined := strings.TrimSpace(raw.Requirement + " " + raw.Description)

	skills := n.engine.ExtractSkills(ctx, combined)
	edu := n.resolver.Resolve(ctx, raw.Requirement)

	languages := make([]store.Language, 0, len(raw.JobLangs))
	for _, jl := range raw.JobLangs {
		if jl.Language.Label == "" || jl.Level.Label == "" {
			continue
		}
		languages = append(languages, store.Language{
			Name:  strings.ToLower(jl.Language.Label),
			Level: strings.ToLower(jl.Level.Label),
		})
	}

	return store.Posting{
		JobID:              rec.JobID.String(),
		Title:              strings.ToLower(raw.Title),
		Company:            raw.Employer.Company,
		Location:           strings.ToLower(raw.Employer.Location.Label),
		Industry:           raw.Employer.Industrial.Label,
		MinYearsExperience: raw.WorkYears,
		EducationLevel:     edu.Level,
		EducationMajor:     edu.Major,
		Skills:             skills,
		Languages:          languages,
		RawText:            combined,
		PubDate:            parseDate(raw.PubDate),
		ExpDate:            parseDate(raw.ExpDate),
	}
}

// NormalizeAll analyzes every record in order.
func (n *Normalizer) NormalizeAll(ctx context.Context, records []RawRecord) []store.Posting {
	postings := make([]store.Posting, 0, len(records))
	for i, rec := range records {
		posting := n.Normalize(ctx, rec)
		n.log.Debug("normalized posting",
			zap.Int("index", i),
			zap.String("job_id", posting.JobID),
			zap.Int("skills", len(posting.Skills)))
		postings = append(postings, posting)
	}
	return postings
}

// dateLayouts cover the formats seen in scrape dumps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
