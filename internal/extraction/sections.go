package extraction

import (
	"context"
	"strings"

	"github.com/chalinh/jobmatch/internal/postprocess"
	"github.com/chalinh/jobmatch/internal/refdata"
)

// sectionHeaders are the synonyms used for skill and requirement sections
// in job postings, checked in order.
var sectionHeaders = []string{
	"requirements",
	"requirement",
	"qualifications",
	"qualification",
	"skills required",
	"required skills",
	"skills",
	"technical skills",
	"competencies",
	"what you need",
	"what we're looking for",
	"you should have",
	"must have",
}

// SectionParser extracts candidates from the requirement sections of a
// posting: the section body is split into list items and each item is kept
// when it is a vocabulary term or passes the short free-form gate.
type SectionParser struct {
	store *refdata.Store
	cfg   Config
}

func NewSectionParser(store *refdata.Store, cfg Config) *SectionParser {
	return &SectionParser{store: store, cfg: cfg}
}

func (p *SectionParser) Name() string { return StrategySections }

func (p *SectionParser) Extract(_ context.Context, text string) []string {
	if text == "" {
		return nil
	}

	found := make(map[string]struct{})
	for _, header := range sectionHeaders {
		section := ExtractSection(text, header)
		if section == "" {
			continue
		}
		for _, item := range ParseListItems(section) {
			item = postprocess.CleanSkill(strings.ToLower(item))
			if len(item) < p.cfg.SectionMinLength || len(item) > p.cfg.SectionMaxLength {
				continue
			}
			if p.store.HasSkill(item) {
				found[item] = struct{}{}
				continue
			}
			// Free-form items are held to a tighter bar than vocabulary
			// hits: short, few words, and skill-shaped.
			if len(item) <= 30 && len(strings.Fields(item)) <= 4 && IsLikelySkill(item) {
				found[item] = struct{}{}
			}
		}
	}
	return sortedSet(found)
}
