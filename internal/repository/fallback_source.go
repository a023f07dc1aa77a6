package repository

import (
	"context"

	"ChartPull/internal/domain/models"
	"ChartPull/internal/domain/repository"
)

// FallbackSource serves records from a primary source and falls back to a
// secondary when the primary errors or holds nothing for the symbol. Used
// to put ingested point history in front of the upstream history API.
type FallbackSource struct {
	primary  repository.SeriesSource
	fallback repository.SeriesSource
}

// NewFallbackSource composes two series sources.
func NewFallbackSource(primary, fallback repository.SeriesSource) *FallbackSource {
	return &FallbackSource{primary: primary, fallback: fallback}
}

func (s *FallbackSource) Fetch(ctx context.Context, symbol string) ([]models.RawRecord, error) {
	records, err := s.primary.Fetch(ctx, symbol)
	if err == nil && len(records) > 0 {
		return records, nil
	}
	if s.fallback == nil {
		return records, err
	}
	return s.fallback.Fetch(ctx, symbol)
}

var _ repository.SeriesSource = (*FallbackSource)(nil)
