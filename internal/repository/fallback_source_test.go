package repository

import (
	"context"
	"testing"

	"ChartPull/internal/domain/models"
)

func TestFallbackSourcePrefersStoredHistory(t *testing.T) {
	store := NewMemorySeriesStore(0)
	if err := store.Store(context.Background(), &models.Tick{Symbol: "ACME", Timestamp: 1700000000, Value: 10}); err != nil {
		t.Fatalf("store: %v", err)
	}
	up := &countingSource{records: []models.RawRecord{{Value: 1.0, Date: "2024-01-01"}}}
	src := NewFallbackSource(store, up)

	records, err := src.Fetch(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(records))
	}
	if up.calls != 0 {
		t.Errorf("upstream consulted despite stored history: %d calls", up.calls)
	}
}

func TestFallbackSourceFallsBackWhenEmpty(t *testing.T) {
	store := NewMemorySeriesStore(0)
	up := &countingSource{records: []models.RawRecord{{Value: 1.0, Date: "2024-01-01"}}}
	src := NewFallbackSource(store, up)

	records, err := src.Fetch(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected upstream record, got %d", len(records))
	}
	if up.calls != 1 {
		t.Errorf("expected one upstream call, got %d", up.calls)
	}
}
