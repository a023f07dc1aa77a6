package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"ChartPull/internal/domain/models"
	"ChartPull/internal/domain/repository"
)

// MemorySeriesStore keeps per-symbol point history in memory. Used as a
// storage backend for development and as a fallback when no durable
// backend is configured.
type MemorySeriesStore struct {
	mu     sync.RWMutex
	points map[string][]*models.Tick
	max    int
}

// NewMemorySeriesStore creates an in-memory point store. maxPerSymbol
// bounds history length per symbol; 0 means unbounded.
func NewMemorySeriesStore(maxPerSymbol int) *MemorySeriesStore {
	return &MemorySeriesStore{
		points: make(map[string][]*models.Tick),
		max:    maxPerSymbol,
	}
}

func (s *MemorySeriesStore) Store(_ context.Context, t *models.Tick) error {
	if t == nil || t.Symbol == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.append(t)
	return nil
}

func (s *MemorySeriesStore) StoreBatch(_ context.Context, ticks []*models.Tick) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range ticks {
		if t == nil || t.Symbol == "" {
			continue
		}
		s.append(t)
	}
	return nil
}

// append assumes the lock is held.
func (s *MemorySeriesStore) append(t *models.Tick) {
	pts := append(s.points[t.Symbol], t)
	if s.max > 0 && len(pts) > s.max {
		pts = pts[len(pts)-s.max:]
	}
	s.points[t.Symbol] = pts
}

func (s *MemorySeriesStore) Query(_ context.Context, symbol string, from, to time.Time, limit int) ([]*models.Tick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Tick
	for _, t := range s.points[symbol] {
		ts := time.Unix(t.Timestamp, 0)
		if ts.Before(from) || ts.After(to) {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// Fetch returns the stored history for a symbol as raw records.
func (s *MemorySeriesStore) Fetch(_ context.Context, symbol string) ([]models.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pts := s.points[symbol]
	records := make([]models.RawRecord, 0, len(pts))
	for _, t := range pts {
		records = append(records, models.RawRecord{
			Value:     t.Value,
			Timestamp: time.Unix(t.Timestamp, 0).UTC().Format(time.RFC3339),
		})
	}
	return records, nil
}

func (s *MemorySeriesStore) Health(_ context.Context) error {
	return nil
}

func (s *MemorySeriesStore) Close() error {
	return nil
}

var _ repository.Storage = (*MemorySeriesStore)(nil)
var _ repository.SeriesSource = (*MemorySeriesStore)(nil)
