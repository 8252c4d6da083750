// Package matching scores candidate profiles against stored job postings.
package matching

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chalinh/jobmatch/internal/store"
)

// Profile is the candidate side of a match.
type Profile struct {
	JobTitle          string           `json:"job_title"`
	Skills            []string         `json:"skills" validate:"required,min=1,dive,min=1"`
	EducationLevel    string           `json:"education_level"`
	EducationMajor    string           `json:"education_major"`
	YearsExperience   int              `json:"years_experience" validate:"gte=0,lte=60"`
	PreferredLocation string           `json:"preferred_location"`
	WillingToRelocate bool             `json:"willing_to_relocate"`
	Languages         []store.Language `json:"languages" validate:"dive"`
}

// Match is one scored posting with its component breakdown.
type Match struct {
	Posting         store.Posting `json:"job"`
	Score           float64       `json:"match_score"`
	SkillScore      float64       `json:"skill_score"`
	EducationScore  float64       `json:"education_score"`
	ExperienceScore float64       `json:"experience_score"`
	LanguageScore   float64       `json:"language_score"`
	LocationScore   float64       `json:"location_score"`
	MissingSkills   []string      `json:"missing_skills"`
}

// Prefilter derives storage-level filters from the profile so obviously
// unsuitable postings never reach the scorer: location containment unless
// the candidate will relocate, and an experience floor at most two years
// above the candidate's experience.
func (p *Profile) Prefilter() store.PostingFilters {
	var filters store.PostingFilters
	if p.PreferredLocation != "" && !p.WillingToRelocate {
		filters.Location = p.PreferredLocation
	}
	if p.YearsExperience > 0 {
		maxYears := p.YearsExperience + 2
		filters.MaxMinYears = &maxYears
	}
	return filters
}

var validate = validator.New()

// ValidateProfile checks the structural constraints of a profile before
// matching.
func ValidateProfile(p *Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
