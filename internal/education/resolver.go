// Package education resolves the required education level and field of
// study from job posting text.
package education

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/capability"
	"github.com/chalinh/jobmatch/internal/prompts"
	"github.com/chalinh/jobmatch/internal/refdata"
)

// Canonical education levels, ordered low to high.
const (
	LevelHighSchool = "high school"
	LevelAssociate  = "associate"
	LevelBachelor   = "bachelor's degree"
	LevelMaster     = "master's degree"
	LevelPhD        = "phd"
)

// Education is the resolved requirement. Empty fields mean the text did not
// state that component.
type Education struct {
	Level string
	Major string
}

// levelPatterns form the primary cascade, checked in declaration order with
// first match winning. The exclude pattern vetoes individual occurrences;
// "diploma in X" names a field of study, not a secondary-school diploma,
// but a bare "diploma" elsewhere in the same text still counts.
var levelPatterns = []struct {
	level   string
	re      *regexp.Regexp
	exclude *regexp.Regexp
}{
	{LevelHighSchool, regexp.MustCompile(`high\s+school|secondary\s+school|form\s+\d+|grade\s+12`), nil},
	{LevelHighSchool, regexp.MustCompile(`\bdiploma\b`), regexp.MustCompile(`diploma\s+in`)},
	{LevelAssociate, regexp.MustCompile(`associate'?s?\s+degree|a\.s\.|associate\s+in`), nil},
	{LevelBachelor, regexp.MustCompile(`bachelor'?s?(?:\s+(?:degree|diploma))?|\bba\b|b\.s\b|b\.sc\b|\bbs\s+degree|bachelor\s+(?:in|of)|\bbeng\b|\bbsc\b|undergraduate\s+degree`), nil},
	{LevelMaster, regexp.MustCompile(`master'?s?(?:\s+(?:degree|diploma))?|\bmsc\b|m\.s\b|m\.sc\b|graduate\s+degree|\bma\b|master\s+(?:in|of)|postgraduate\s+degree|\bmba\b|\bmeng\b`), nil},
	{LevelPhD, regexp.MustCompile(`ph\.?d\.?|doctorate|doctoral|doctor\s+of\s+philosophy`), nil},
}

// Resolver extracts education requirements. The generator is a last-resort
// fallback; a nil generator limits resolution to the lexical cascade.
type Resolver struct {
	store      *refdata.Store
	gen        capability.TextGenerator
	log        *zap.Logger
	taxonomyRe []taxonomyPattern
}

type taxonomyPattern struct {
	major string
	re    *regexp.Regexp
}

// NewResolver precompiles whole-word patterns for every taxonomy major
// longer than three characters.
func NewResolver(store *refdata.Store, gen capability.TextGenerator, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{store: store, gen: gen, log: log}
	for _, major := range store.MajorList {
		if len(major) > 3 {
			r.taxonomyRe = append(r.taxonomyRe, taxonomyPattern{
				major: major,
				re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(major) + `\b`),
			})
		}
	}
	return r
}

// Resolve extracts level and major. It never returns an error; unresolved
// components stay empty.
func (r *Resolver) Resolve(ctx context.Context, text string) Education {
	if strings.TrimSpace(text) == "" {
		return Education{}
	}
	lower := strings.ToLower(text)

	level := r.resolveLevel(lower)
	major := r.resolveMajor(lower)

	// The generator only runs when the lexical cascade produced nothing at
	// all; a partially resolved text stays partial except for the level.
	if level == "" && r.gen != nil {
		level = r.levelFromGenerator(ctx, text)
		if major == "" {
			major = r.majorFromGenerator(ctx, text)
		}
	}

	if major != "" {
		major = r.validateMajor(cleanMajor(major))
	}
	return Education{Level: level, Major: major}
}

// ResolveBatch resolves every text, order preserved.
func (r *Resolver) ResolveBatch(ctx context.Context, texts []string) []Education {
	out := make([]Education, len(texts))
	for i, text := range texts {
		out[i] = r.Resolve(ctx, text)
	}
	return out
}

func (r *Resolver) resolveLevel(lower string) string {
	for _, p := range levelPatterns {
		if !p.re.MatchString(lower) {
			continue
		}
		// Every excluded occurrence also matches the main pattern, so the
		// level holds only when at least one occurrence survives exclusion.
		if p.exclude != nil &&
			len(p.exclude.FindAllString(lower, -1)) >= len(p.re.FindAllString(lower, -1)) {
			continue
		}
		return p.level
	}

	// Contextual inference around a bare "degree" mention.
	if strings.Contains(lower, "degree") {
		for _, y := range []string{"3 year", "4 year", "4-year", "three year", "four year"} {
			if strings.Contains(lower, y) {
				return LevelBachelor
			}
		}
		for _, y := range []string{"2 year", "2-year", "two year"} {
			if strings.Contains(lower, y) {
				return LevelAssociate
			}
		}
		for _, t := range []string{"graduate degree", "postgraduate", "post-graduate"} {
			if strings.Contains(lower, t) {
				if strings.Contains(lower, "phd") || strings.Contains(lower, "doctoral") {
					return LevelPhD
				}
				return LevelMaster
			}
		}
	}

	// Implicit bachelor's, common in requirement prose.
	for _, phrase := range []string{"bachelor", "undergraduate", "4 years"} {
		if strings.Contains(lower, phrase) {
			return LevelBachelor
		}
	}
	return ""
}

func (r *Resolver) levelFromGenerator(ctx context.Context, text string) string {
	tmpl, err := prompts.Get("education.json", "level")
	if err != nil {
		r.log.Warn("level prompt unavailable", zap.Error(err))
		return ""
	}
	answer, err := r.gen.Generate(ctx, prompts.Format(tmpl, map[string]string{"Text": truncate(text, 500)}), 20)
	if err != nil {
		r.log.Warn("level generation failed", zap.Error(err))
		return ""
	}
	return parseLevelAnswer(answer)
}

// parseLevelAnswer maps a free-text answer onto the fixed label set by
// keyword presence, most specific labels first.
func parseLevelAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch {
	case containsAny(answer, "bachelor", "ba", "bs", "undergraduate"):
		return LevelBachelor
	case containsAny(answer, "master", "ms", "ma", "postgraduate"):
		return LevelMaster
	case containsAny(answer, "phd", "doctorate", "doctoral"):
		return LevelPhD
	case containsAny(answer, "high school", "secondary"):
		return LevelHighSchool
	case strings.Contains(answer, "associate"):
		return LevelAssociate
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
