package repository

import (
	"context"
	"time"

	"ChartPull/internal/domain/models"
	"ChartPull/internal/domain/repository"
	"ChartPull/pkg/cache"
)

// CachedSource decorates a SeriesSource with read-through caching of the
// raw record array. Cleaning still happens downstream so a cache hit and
// a fresh fetch go through the same path.
type CachedSource struct {
	next  repository.SeriesSource
	cache cache.Service
	ttl   time.Duration
}

// NewCachedSource wraps a series source with a cache layer.
func NewCachedSource(next repository.SeriesSource, c cache.Service, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedSource{next: next, cache: c, ttl: ttl}
}

func (s *CachedSource) Fetch(ctx context.Context, symbol string) ([]models.RawRecord, error) {
	key := cache.GenerateKey("series", symbol)

	var cached []models.RawRecord
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	records, err := s.next.Fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// Cache write failures do not fail the fetch
	_ = s.cache.Set(ctx, key, records, s.ttl)
	return records, nil
}

// Invalidate drops the cached records for a symbol.
func (s *CachedSource) Invalidate(ctx context.Context, symbol string) error {
	return s.cache.Delete(ctx, cache.GenerateKey("series", symbol))
}

var _ repository.SeriesSource = (*CachedSource)(nil)
