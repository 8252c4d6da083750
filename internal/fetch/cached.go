package fetch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chalinh/jobmatch/internal/store"
)

// CachedFetcher wraps URL fetching with a database-backed page cache, so
// repeated ingestion runs do not re-fetch unchanged postings.
type CachedFetcher struct {
	store     *store.Store
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
}

// CachedFetcherConfig configures the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a cached fetcher. A nil store disables caching.
func NewCachedFetcher(st *store.Store, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = store.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		store:     st,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	PageID    uuid.UUID
}

// Fetch retrieves a URL, serving from cache while fresh. Fresh fetches are
// text-extracted with the board's selectors and written back to the cache.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache && f.store != nil {
		cached, err := f.store.GetFreshPage(ctx, urlStr, f.cacheTTL)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       cached.RawHTML,
					Text:       cached.ParsedText,
					StatusCode: cached.HTTPStatus,
				},
				FromCache: true,
				PageID:    cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, err
	}
	result.Text = text

	out := &CachedResult{Result: result}
	if f.store != nil {
		page := &store.CachedPage{
			URL:        urlStr,
			RawHTML:    result.HTML,
			ParsedText: result.Text,
			HTTPStatus: result.StatusCode,
		}
		if err := f.store.UpsertPage(ctx, page); err == nil {
			out.PageID = page.ID
		}
	}
	return out, nil
}
