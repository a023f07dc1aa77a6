package repository

import (
	"context"
	"testing"
	"time"

	"ChartPull/internal/domain/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemorySeriesStore(0)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := s.Store(ctx, &models.Tick{
			Symbol:    "ACME",
			Timestamp: base.AddDate(0, 0, i).Unix(),
			Value:     float64(i),
		})
		if err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	records, err := s.Fetch(ctx, "ACME")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if records[0].Timestamp != base.Format(time.RFC3339) {
		t.Errorf("unexpected first timestamp: %s", records[0].Timestamp)
	}
}

func TestMemoryStoreQueryRange(t *testing.T) {
	s := NewMemorySeriesStore(0)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var batch []*models.Tick
	for i := 0; i < 10; i++ {
		batch = append(batch, &models.Tick{
			Symbol:    "ACME",
			Timestamp: base.AddDate(0, 0, i).Unix(),
			Value:     float64(i),
		})
	}
	if err := s.StoreBatch(ctx, batch); err != nil {
		t.Fatalf("store batch: %v", err)
	}

	from := base.AddDate(0, 0, 2)
	to := base.AddDate(0, 0, 5)
	got, err := s.Query(ctx, "ACME", from, to, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 ticks in range, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp < got[i-1].Timestamp {
			t.Fatal("query result not sorted ascending")
		}
	}
}

func TestMemoryStoreBounded(t *testing.T) {
	s := NewMemorySeriesStore(3)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		_ = s.Store(ctx, &models.Tick{Symbol: "ACME", Timestamp: base.AddDate(0, 0, i).Unix(), Value: float64(i)})
	}

	records, err := s.Fetch(ctx, "ACME")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected history bounded to 3, got %d", len(records))
	}
}

func TestMemoryStoreUnknownSymbol(t *testing.T) {
	s := NewMemorySeriesStore(0)
	records, err := s.Fetch(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d", len(records))
	}
}
