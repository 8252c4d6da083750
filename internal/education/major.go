package education

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/chalinh/jobmatch/internal/prompts"
)

// majorPatterns capture the field of study from direct degree phrasing,
// abbreviation-prefixed forms, and "X or related field" forms.
var majorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:degree|diploma|bachelor'?s?|master'?s?|phd)\s+(?:in|of)\s+([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`(?:ba|bs|bsc|beng|ma|ms|msc|mba|meng)\s+(?:in|of)?\s*([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`major[\s:]+([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`field\s+of\s+(?:study[\s:]+)?([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`study[\s:]+([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`graduated\s+(?:in|with|from)\s+([a-z][a-z\s&/,-]{2,50})(?:\s+or|\s+and|,|\.|$|related)`),
	regexp.MustCompile(`([a-z][a-z\s&/,-]{2,40})\s+or\s+related\s+field`),
}

var fieldIndicators = []struct {
	re     *regexp.Regexp
	source string
}{
	{regexp.MustCompile(`(?:knowledge|experience|background)\s+in\s+([a-z][a-z\s&/,-]{3,40})`), "experience"},
	{regexp.MustCompile(`(?:specialized|specialization)\s+in\s+([a-z][a-z\s&/,-]{3,40})`), "specialization"},
}

// noisePhrases are degree boilerplate stripped from captured majors.
var noisePhrases = compilePhrases(
	"or related field", "or related", "or equivalent", "or similar",
	"or higher", "or above", "preferred", "required", "degree in",
	"bachelor in", "bachelor of", "master in", "master of",
	"major in", "field of", "study in", "diploma in",
	"or any related", "and related", "related field", "related discipline",
)

func compilePhrases(phrases ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
	return out
}

var (
	edgePunct = regexp.MustCompile(`^[,;.\s/&-]+|[,;.\s/&-]+$`)
	spaceRuns = regexp.MustCompile(`\s+`)
	partSplit = regexp.MustCompile(`[/&]`)
)

// techToolWords are software names; a major built around one is a tool list
// that leaked out of the skill pipeline, not a field of study.
var techToolWords = map[string]struct{}{
	"office": {}, "outlook": {}, "excel": {}, "word": {}, "powerpoint": {},
	"autocad": {}, "photoshop": {}, "illustrator": {}, "python": {},
	"java": {}, "javascript": {}, "sql": {}, "html": {}, "css": {},
	"react": {}, "vue": {}, "angular": {}, "node": {}, "django": {},
	"flask": {}, "aws": {}, "azure": {}, "docker": {}, "kubernetes": {},
	"git": {}, "linux": {}, "windows": {}, "mac": {}, "ios": {}, "android": {},
}

var genericTerms = map[string]struct{}{
	"any": {}, "related": {}, "all": {}, "various": {},
	"other": {}, "relevant": {}, "appropriate": {}, "similar": {},
}

// commonFields maps a field keyword to its canonical major name, the last
// validation resort before accepting a candidate verbatim.
var commonFields = []struct{ key, canonical string }{
	{"engineering", "engineering"},
	{"computer", "computer science"},
	{"business", "business administration"},
	{"design", "design"},
	{"architecture", "architecture"},
	{"marketing", "marketing"},
	{"finance", "finance"},
	{"accounting", "accounting"},
	{"management", "management"},
	{"education", "education"},
	{"science", "science"},
}

// candidate scores by provenance.
const (
	scoreTaxonomy       = 10
	scoreRegex          = 8
	scoreSpecialization = 6
	scoreOther          = 5
	taxonomyBonus       = 5
)

type majorCandidate struct {
	major string
	score int
}

// resolveMajor generates candidates from three sources and keeps the
// highest-scoring unique candidate, ties broken by first-seen order.
func (r *Resolver) resolveMajor(lower string) string {
	var candidates []majorCandidate
	seen := make(map[string]struct{})

	add := func(major string, score int) {
		if _, ok := seen[major]; ok {
			return
		}
		if r.store.HasMajor(major) {
			score += taxonomyBonus
		}
		seen[major] = struct{}{}
		candidates = append(candidates, majorCandidate{major: major, score: score})
	}

	for _, re := range majorPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			cleaned := cleanMajor(m[1])
			if len(cleaned) > 2 {
				add(cleaned, scoreRegex)
			}
		}
	}

	for _, tp := range r.taxonomyRe {
		if tp.re.MatchString(lower) {
			add(tp.major, scoreTaxonomy)
		}
	}

	for _, fi := range fieldIndicators {
		for _, m := range fi.re.FindAllStringSubmatch(lower, -1) {
			cleaned := cleanMajor(m[1])
			if len(cleaned) <= 2 {
				continue
			}
			if fi.source == "specialization" {
				add(cleaned, scoreSpecialization)
			} else {
				add(cleaned, scoreOther)
			}
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].major
}

func (r *Resolver) majorFromGenerator(ctx context.Context, text string) string {
	tmpl, err := prompts.Get("education.json", "major")
	if err != nil {
		r.log.Warn("major prompt unavailable", zap.Error(err))
		return ""
	}
	answer, err := r.gen.Generate(ctx, prompts.Format(tmpl, map[string]string{"Text": truncate(text, 500)}), 30)
	if err != nil {
		r.log.Warn("major generation failed", zap.Error(err))
		return ""
	}

	answer = strings.TrimSpace(answer)
	switch strings.ToLower(answer) {
	case "", "none", "not specified", "any", "n/a", "not mentioned":
		return ""
	}
	return cleanMajor(answer)
}

// cleanMajor strips noise phrases and punctuation, then rejects candidates
// that cannot be a field of study. Returns "" on rejection.
func cleanMajor(major string) string {
	if major == "" {
		return ""
	}
	major = strings.ToLower(strings.TrimSpace(major))

	for _, re := range noisePhrases {
		major = re.ReplaceAllString(major, "")
	}
	major = edgePunct.ReplaceAllString(major, "")
	major = strings.TrimSpace(spaceRuns.ReplaceAllString(major, " "))

	if len(major) < 3 || len(major) > 60 {
		return ""
	}

	for _, word := range strings.Fields(major) {
		if _, ok := techToolWords[word]; ok {
			return ""
		}
	}

	if strings.Count(major, ",") > 1 {
		return ""
	}

	if _, ok := genericTerms[major]; ok {
		return ""
	}

	// Compound majors such as "design/architecture" keep up to three valid
	// parts.
	if strings.ContainsAny(major, "/&") {
		var valid []string
		for _, part := range partSplit.Split(major, -1) {
			part = strings.TrimSpace(part)
			if len(part) <= 2 {
				continue
			}
			if _, ok := genericTerms[part]; ok {
				continue
			}
			valid = append(valid, part)
		}
		if len(valid) == 0 {
			return ""
		}
		if len(valid) == 1 {
			return valid[0]
		}
		if len(valid) > 3 {
			valid = valid[:3]
		}
		return strings.Join(valid, "/")
	}

	if len(major) > 2 {
		return major
	}
	return ""
}

// validateMajor maps a cleaned candidate to its canonical taxonomy form
// when possible: exact hit, fuzzy containment preferring the taxonomy
// phrasing, then the common-field keyword table, else the candidate as-is.
func (r *Resolver) validateMajor(major string) string {
	if major == "" {
		return ""
	}
	if r.store.HasMajor(major) {
		return major
	}

	for _, tm := range r.store.MajorList {
		if len(tm) > 3 && (strings.Contains(major, tm) || strings.Contains(tm, major)) {
			return tm
		}
	}

	for _, cf := range commonFields {
		if strings.Contains(major, cf.key) {
			return cf.canonical
		}
	}
	return major
}
