package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// CachedPage is one fetched job board page.
type CachedPage struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	RawHTML    string    `json:"raw_html"`
	ParsedText string    `json:"parsed_text"`
	HTTPStatus int       `json:"http_status"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// EnsurePageSchema creates the page cache table when absent.
func (s *Store) EnsurePageSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url TEXT NOT NULL UNIQUE,
			raw_html TEXT NOT NULL DEFAULT '',
			parsed_text TEXT NOT NULL DEFAULT '',
			http_status INT NOT NULL DEFAULT 0,
			fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure page schema: %w", err)
	}
	return nil
}

// GetFreshPage returns the cached page for a URL when it was fetched within
// ttl, nil otherwise.
func (s *Store) GetFreshPage(ctx context.Context, url string, ttl time.Duration) (*CachedPage, error) {
	var p CachedPage
	err := s.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, http_status, fetched_at
		 FROM pages WHERE url = $1 AND fetched_at > $2`,
		url, time.Now().Add(-ttl),
	).Scan(&p.ID, &p.URL, &p.RawHTML, &p.ParsedText, &p.HTTPStatus, &p.FetchedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &p, nil
}

// UpsertPage stores a fetched page, replacing any previous fetch of the
// same URL.
func (s *Store) UpsertPage(ctx context.Context, p *CachedPage) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO pages (url, raw_html, parsed_text, http_status, fetched_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (url) DO UPDATE SET
			raw_html = $2, parsed_text = $3, http_status = $4, fetched_at = NOW()
		 RETURNING id, fetched_at`,
		p.URL, p.RawHTML, p.ParsedText, p.HTTPStatus,
	).Scan(&p.ID, &p.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert page %s: %w", p.URL, err)
	}
	return nil
}
