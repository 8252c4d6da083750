package store

import (
	"time"

	"github.com/google/uuid"
)

// Language is a language requirement or proficiency, with level one of
// basic, good, fluent, native.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Posting is one analyzed job posting. Skills and Languages are stored as
// JSONB; Skills is the final output of the extraction engine.
type Posting struct {
	ID                 uuid.UUID  `json:"id"`
	JobID              string     `json:"job_id"`
	Title              string     `json:"job_title"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	Industry           string     `json:"industry"`
	MinYearsExperience int        `json:"min_years_experience"`
	EducationLevel     string     `json:"education_level"`
	EducationMajor     string     `json:"education_major"`
	Skills             []string   `json:"skills"`
	Languages          []Language `json:"languages"`
	RawText            string     `json:"raw_text,omitempty"`
	PubDate            *time.Time `json:"pubdate,omitempty"`
	ExpDate            *time.Time `json:"expdate,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PostingFilters narrow ListPostings. Zero values mean no filtering.
type PostingFilters struct {
	// Location filters by case-insensitive containment.
	Location string
	// MaxMinYears keeps postings whose experience floor does not exceed
	// this value. Nil disables the filter.
	MaxMinYears *int
	Limit       int
	Offset      int
}
