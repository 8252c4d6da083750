package matching

import "strings"

// levelRank orders education levels; unknown levels rank zero.
var levelRank = map[string]int{
	"high school":       1,
	"associate":         2,
	"bachelor's degree": 3,
	"master's degree":   4,
	"phd":               5,
}

// languageRank orders language proficiency; unknown levels rank zero.
var languageRank = map[string]int{
	"basic":  1,
	"good":   2,
	"fluent": 3,
	"native": 4,
}

// relatedMajorGroups are fields close enough to count as a partial match.
var relatedMajorGroups = [][]string{
	{"computer science", "information technology", "software engineering"},
	{"engineering", "mechanical engineering", "civil engineering"},
	{"business", "business administration", "management"},
	{"design", "graphic design", "interior design", "architecture"},
}

// scoreSkills is the exact-overlap fraction of required skills the
// candidate covers. No requirements is a perfect match.
func scoreSkills(userSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 1.0
	}
	userSet := lowerSet(userSkills)
	jobSet := lowerSet(jobSkills)

	matched := 0
	for skill := range jobSet {
		if _, ok := userSet[skill]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSet))
}

// missingSkills lists the required skills absent from the profile, in the
// posting's order.
func missingSkills(userSkills, jobSkills []string) []string {
	userSet := lowerSet(userSkills)
	missing := []string{}
	for _, skill := range jobSkills {
		if _, ok := userSet[strings.ToLower(skill)]; !ok {
			missing = append(missing, strings.ToLower(skill))
		}
	}
	return missing
}

// scoreEducation blends level (60%) and major (40%) when the posting
// states both; a single stated component carries the whole score.
func scoreEducation(userLevel, userMajor, jobLevel, jobMajor string) float64 {
	if jobLevel == "" && jobMajor == "" {
		return 1.0
	}
	levelScore := scoreLevel(userLevel, jobLevel)
	majorScore := scoreMajor(userMajor, jobMajor)

	switch {
	case jobLevel != "" && jobMajor != "":
		return levelScore*0.6 + majorScore*0.4
	case jobLevel != "":
		return levelScore
	default:
		return majorScore
	}
}

func scoreLevel(userLevel, jobLevel string) float64 {
	if jobLevel == "" {
		return 1.0
	}
	userRank := levelRank[strings.ToLower(userLevel)]
	jobRank := levelRank[strings.ToLower(jobLevel)]

	switch {
	case userRank >= jobRank:
		return 1.0
	case userRank == jobRank-1:
		return 0.7
	case userRank == jobRank-2:
		return 0.4
	default:
		return 0.0
	}
}

func scoreMajor(userMajor, jobMajor string) float64 {
	if jobMajor == "" {
		return 1.0
	}
	if userMajor == "" {
		return 0.5
	}
	user := strings.ToLower(userMajor)
	job := strings.ToLower(jobMajor)

	if user == job {
		return 1.0
	}
	if strings.Contains(user, job) || strings.Contains(job, user) {
		return 0.8
	}
	for _, group := range relatedMajorGroups {
		if containsString(group, user) && containsString(group, job) {
			return 0.6
		}
	}
	return 0.0
}

// scoreExperience grades how close the candidate comes to the posting's
// experience floor.
func scoreExperience(userYears, jobMinYears int) float64 {
	if jobMinYears == 0 {
		return 1.0
	}
	switch {
	case userYears >= jobMinYears:
		return 1.0
	case userYears >= jobMinYears-1:
		return 0.8
	case userYears >= jobMinYears-2:
		return 0.6
	default:
		return 0.3
	}
}

// scoreLanguages averages per-requirement credit: full when the candidate
// meets the level, 0.7 when one level below.
func scoreLanguages(userLanguages, jobLanguages []languagePair) float64 {
	if len(jobLanguages) == 0 {
		return 1.0
	}
	userLevels := make(map[string]int, len(userLanguages))
	for _, lang := range userLanguages {
		userLevels[strings.ToLower(lang.name)] = languageRank[strings.ToLower(lang.level)]
	}

	credit := 0.0
	for _, lang := range jobLanguages {
		required := languageRank[strings.ToLower(lang.level)]
		have := userLevels[strings.ToLower(lang.name)]
		switch {
		case have >= required:
			credit += 1.0
		case have == required-1:
			credit += 0.7
		}
	}
	return credit / float64(len(jobLanguages))
}

func scoreLocation(userLocation, jobLocation string, willingToRelocate bool) float64 {
	if jobLocation == "" {
		return 1.0
	}
	if userLocation == "" {
		return 0.5
	}
	if strings.EqualFold(userLocation, jobLocation) {
		return 1.0
	}
	if willingToRelocate {
		return 0.8
	}
	return 0.0
}

type languagePair struct {
	name  string
	level string
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
