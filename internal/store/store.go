// Package store provides PostgreSQL persistence for analyzed job postings.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the postings table and its indexes when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS postings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_id TEXT NOT NULL UNIQUE,
			job_title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			min_years_experience INT NOT NULL DEFAULT 0,
			education_level TEXT NOT NULL DEFAULT '',
			education_major TEXT NOT NULL DEFAULT '',
			skills JSONB NOT NULL DEFAULT '[]',
			languages JSONB NOT NULL DEFAULT '[]',
			raw_text TEXT NOT NULL DEFAULT '',
			pubdate TIMESTAMPTZ,
			expdate TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_postings_location ON postings (location);
		CREATE INDEX IF NOT EXISTS idx_postings_min_years ON postings (min_years_experience);
		CREATE INDEX IF NOT EXISTS idx_postings_skills ON postings USING GIN (skills);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// UpsertPosting inserts a posting or replaces the existing row with the
// same source job ID. Returns the row UUID.
func (s *Store) UpsertPosting(ctx context.Context, p *Posting) error {
	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	langs := p.Languages
	if langs == nil {
		langs = []Language{}
	}
	languages, err := json.Marshal(langs)
	if err != nil {
		return fmt.Errorf("failed to marshal languages: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO postings (job_id, job_title, company, location, industry,
			min_years_experience, education_level, education_major,
			skills, languages, raw_text, pubdate, expdate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (job_id) DO UPDATE SET
			job_title = $2, company = $3, location = $4, industry = $5,
			min_years_experience = $6, education_level = $7, education_major = $8,
			skills = $9, languages = $10, raw_text = $11, pubdate = $12, expdate = $13
		 RETURNING id, created_at`,
		p.JobID, p.Title, p.Company, p.Location, p.Industry,
		p.MinYearsExperience, p.EducationLevel, p.EducationMajor,
		skills, languages, p.RawText, p.PubDate, p.ExpDate,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert posting %s: %w", p.JobID, err)
	}
	return nil
}

// GetPosting retrieves a posting by source job ID. Returns nil when absent.
func (s *Store) GetPosting(ctx context.Context, jobID string) (*Posting, error) {
	row := s.pool.QueryRow(ctx, selectPostings+` WHERE job_id = $1`, jobID)
	p, err := scanPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting %s: %w", jobID, err)
	}
	return p, nil
}

// ListPostings retrieves postings matching the filters, newest first.
func (s *Store) ListPostings(ctx context.Context, filters PostingFilters) ([]Posting, error) {
	if filters.Limit == 0 {
		filters.Limit = 500
	}

	query := selectPostings + ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}
	if filters.MaxMinYears != nil {
		query += fmt.Sprintf(" AND min_years_experience <= $%d", argNum)
		args = append(args, *filters.MaxMinYears)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, rows.Err()
}

// CountPostings returns the total number of stored postings.
func (s *Store) CountPostings(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM postings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count postings: %w", err)
	}
	return count, nil
}

const selectPostings = `SELECT id, job_id, job_title, company, location, industry,
	min_years_experience, education_level, education_major,
	skills, languages, raw_text, pubdate, expdate, created_at
	FROM postings`

func scanPosting(row pgx.Row) (*Posting, error) {
	var p Posting
	var skills, languages []byte
	err := row.Scan(&p.ID, &p.JobID, &p.Title, &p.Company, &p.Location, &p.Industry,
		&p.MinYearsExperience, &p.EducationLevel, &p.EducationMajor,
		&skills, &languages, &p.RawText, &p.PubDate, &p.ExpDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills: %w", err)
	}
	if err := json.Unmarshal(languages, &p.Languages); err != nil {
		return nil, fmt.Errorf("failed to parse languages: %w", err)
	}
	return &p, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
