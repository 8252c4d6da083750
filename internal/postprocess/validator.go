package postprocess

import "strings"

// locationWords are geographic and administrative markers from the source
// job market; a candidate containing one is an address fragment, not a
// skill.
var locationWords = []string{
	"khan", "sangkat", "phum", "boeng", "chbar", "ampov",
	"chhuk", "nirouth", "chamkar", "daun", "penh", "phnom",
	"location", "academy", "aupp", "liger",
}

// jobRoleSuffixes end job titles, which are not skills.
var jobRoleSuffixes = []string{
	"supervisor", "manager", "director", "coordinator",
	"educator", "officer", "assistant", "executive",
}

// singleWordRejects are adjectives, gerunds, and filler that surface as
// lone candidates but carry no skill meaning.
var singleWordRejects = map[string]struct{}{
	"caring": {}, "inclusive": {}, "mental": {}, "emotional": {},
	"physical": {}, "psychological": {}, "professional": {}, "positive": {},
	"negative": {}, "preparing": {}, "scheduling": {}, "requirement": {},
	"etc..": {}, "including": {}, "determination": {}, "optimism": {},
	"stewardship": {}, "ingenuity": {}, "responsibility": {}, "from": {},
	"go": {}, "able": {},
}

var genericSingleWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "for": {},
	"with": {}, "from": {}, "into": {}, "go": {},
}

// Validator filters candidates through an ordered list of short-circuiting
// rejection predicates.
type Validator struct {
	minLength int
	maxLength int
	blacklist map[string]struct{}
}

// NewValidator builds a validator over the given length window and
// lowercase blacklist set.
func NewValidator(minLength, maxLength int, blacklist map[string]struct{}) *Validator {
	if blacklist == nil {
		blacklist = map[string]struct{}{}
	}
	return &Validator{minLength: minLength, maxLength: maxLength, blacklist: blacklist}
}

// Validate keeps the candidates passing every predicate, preserving order.
func (v *Validator) Validate(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if v.IsValid(skill) {
			out = append(out, skill)
		}
	}
	return out
}

// IsValid runs the rejection predicates in order; the first failure rejects.
func (v *Validator) IsValid(skill string) bool {
	skill = strings.TrimSpace(strings.ToLower(skill))

	if len(skill) < v.minLength || len(skill) > v.maxLength {
		return false
	}

	if _, ok := v.blacklist[skill]; ok {
		return false
	}
	for phrase := range v.blacklist {
		if len(phrase) > 5 && strings.Contains(skill, phrase) {
			return false
		}
	}

	if isAllDigits(skill) {
		return false
	}

	if strings.Contains(skill, "@") || strings.Contains(skill, ".com") || strings.Contains(skill, ".net") {
		return false
	}

	for _, prefix := range []string{"and ", "or ", "the ", "a ", "an "} {
		if strings.HasPrefix(skill, prefix) {
			return false
		}
	}

	switch skill[len(skill)-1] {
	case '.', '!', '?', ',':
		return false
	}

	// Address numbers such as "no. 25" or "no 25".
	if strings.Contains(skill, "no.") || strings.Contains(skill, "no ") {
		return false
	}

	for _, loc := range locationWords {
		if strings.Contains(skill, loc) {
			return false
		}
	}

	for _, role := range jobRoleSuffixes {
		if strings.HasSuffix(skill, role) {
			return false
		}
	}

	if _, ok := singleWordRejects[skill]; ok {
		return false
	}

	if strings.Contains(skill, "  ") {
		return false
	}

	wordCount := len(strings.Fields(skill))
	if wordCount > 5 {
		return false
	}

	if wordCount > 2 && strings.Contains(skill, " and ") {
		return false
	}

	if wordCount == 1 && len(skill) < 5 {
		if _, ok := genericSingleWords[skill]; ok {
			return false
		}
	}

	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
