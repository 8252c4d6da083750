package matching

import (
	"sort"

	"github.com/chalinh/jobmatch/internal/store"
)

// Component weights. Skills dominate; languages and location are
// tie-breakers.
const (
	weightSkills     = 0.60
	weightEducation  = 0.20
	weightExperience = 0.15
	weightLanguages  = 0.03
	weightLocation   = 0.02
)

// Matcher scores a profile against postings.
type Matcher struct{}

func NewMatcher() *Matcher { return &Matcher{} }

// Match validates the profile, scores every posting, and returns the top N
// matches by descending score. topN <= 0 returns all matches.
func (m *Matcher) Match(profile *Profile, postings []store.Posting, topN int) ([]Match, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(postings))
	for _, posting := range postings {
		matches = append(matches, m.score(profile, posting))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}

func (m *Matcher) score(profile *Profile, posting store.Posting) Match {
	jobLangs := make([]languagePair, 0, len(posting.Languages))
	for _, lang := range posting.Languages {
		jobLangs = append(jobLangs, languagePair{name: lang.Name, level: lang.Level})
	}
	userLangs := make([]languagePair, 0, len(profile.Languages))
	for _, lang := range profile.Languages {
		userLangs = append(userLangs, languagePair{name: lang.Name, level: lang.Level})
	}

	match := Match{
		Posting:         posting,
		SkillScore:      scoreSkills(profile.Skills, posting.Skills),
		EducationScore:  scoreEducation(profile.EducationLevel, profile.EducationMajor, posting.EducationLevel, posting.EducationMajor),
		ExperienceScore: scoreExperience(profile.YearsExperience, posting.MinYearsExperience),
		LanguageScore:   scoreLanguages(userLangs, jobLangs),
		LocationScore:   scoreLocation(profile.PreferredLocation, posting.Location, profile.WillingToRelocate),
		MissingSkills:   missingSkills(profile.Skills, posting.Skills),
	}
	match.Score = match.SkillScore*weightSkills +
		match.EducationScore*weightEducation +
		match.ExperienceScore*weightExperience +
		match.LanguageScore*weightLanguages +
		match.LocationScore*weightLocation
	return match
}
