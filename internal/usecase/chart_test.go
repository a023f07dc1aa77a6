package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ChartPull/internal/domain/models"
	xhttp "ChartPull/pkg/http"
)

type fakeSource struct {
	records []models.RawRecord
	err     error
}

func (f *fakeSource) Fetch(_ context.Context, _ string) ([]models.RawRecord, error) {
	return f.records, f.err
}

type noopMetrics struct{}

func (noopMetrics) RecordSeriesServed(_, _ string)      {}
func (noopMetrics) RecordPointIngested(_, _ string)     {}
func (noopMetrics) RecordError(_ string)                {}
func (noopMetrics) RecordLastValue(_ string, _ float64) {}
func (noopMetrics) RecordLatency(_ string, _ float64)   {}

func dailyRecords(n int) []models.RawRecord {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]models.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.RawRecord{
			Value:     float64(i + 1),
			Timestamp: base.AddDate(0, 0, i).Format(time.RFC3339),
		})
	}
	return records
}

func TestSeriesRawPassThrough(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(10)}, noopMetrics{})

	resp, err := svc.Series(context.Background(), models.SeriesRequest{Symbol: "ACME"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Mode != "raw" || resp.Preset != "MAX" {
		t.Fatalf("defaults not applied: mode=%s preset=%s", resp.Mode, resp.Preset)
	}
	if len(resp.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(resp.Points))
	}
	if resp.Points[0].V != 1 || resp.Points[9].V != 10 {
		t.Errorf("unexpected values: first=%v last=%v", resp.Points[0].V, resp.Points[9].V)
	}
	if resp.Band != nil {
		t.Errorf("raw mode should not carry band info")
	}
}

func TestSeriesDropsInvalidRecords(t *testing.T) {
	records := dailyRecords(5)
	records = append(records, models.RawRecord{Value: "bogus", Timestamp: "2024-02-01T00:00:00Z"})
	records = append(records, models.RawRecord{Value: 7.0})
	svc := NewChartService(&fakeSource{records: records}, noopMetrics{})

	resp, err := svc.Series(context.Background(), models.SeriesRequest{Symbol: "ACME"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Points) != 5 {
		t.Fatalf("expected 5 valid points, got %d", len(resp.Points))
	}
}

func TestSeriesUnknownModeFallsBackToRaw(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(5)}, noopMetrics{})

	resp, err := svc.Series(context.Background(), models.SeriesRequest{Symbol: "ACME", Mode: "log"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Mode != "raw" {
		t.Errorf("expected raw fallback, got %s", resp.Mode)
	}
}

func TestSeriesRequiresSymbol(t *testing.T) {
	svc := NewChartService(&fakeSource{}, noopMetrics{})
	if _, err := svc.Series(context.Background(), models.SeriesRequest{}); err == nil {
		t.Fatal("expected error for missing symbol")
	}
}

func TestSeriesSourceError(t *testing.T) {
	svc := NewChartService(&fakeSource{err: fmt.Errorf("boom")}, noopMetrics{})
	if _, err := svc.Series(context.Background(), models.SeriesRequest{Symbol: "ACME"}); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestBandInsufficientPoints(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(3)}, noopMetrics{})

	_, err := svc.Band(context.Background(), models.BandRequest{Symbol: "ACME", Window: "1Y"})
	if err == nil {
		t.Fatal("expected error for 3 points")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", appErr.Status)
	}
}

func TestBandComputed(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(100)}, noopMetrics{})

	resp, err := svc.Band(context.Background(), models.BandRequest{Symbol: "ACME", Window: "MAX"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Band == nil {
		t.Fatal("expected band")
	}
	if resp.Band.WindowPoints != 100 {
		t.Errorf("expected 100 window points, got %d", resp.Band.WindowPoints)
	}
	if resp.Band.Lower >= resp.Band.Upper {
		t.Errorf("bounds inverted: lower=%v upper=%v", resp.Band.Lower, resp.Band.Upper)
	}
}

func TestYesDefaultsToLastValue(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(100)}, noopMetrics{})

	resp, err := svc.Yes(context.Background(), models.YesRequest{Symbol: "ACME", Window: "MAX"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Value != 100 {
		t.Errorf("expected last value 100, got %v", resp.Value)
	}
	if resp.YesPercent < 2 || resp.YesPercent > 98 {
		t.Errorf("yes percent out of range: %v", resp.YesPercent)
	}
}

func TestYesExplicitValue(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(100)}, noopMetrics{})

	v := 50.0
	resp, err := svc.Yes(context.Background(), models.YesRequest{Symbol: "ACME", Window: "MAX", Value: &v})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Value != 50 {
		t.Errorf("expected explicit value 50, got %v", resp.Value)
	}
}

func TestYesNoBandReturnsNeutral(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(3)}, noopMetrics{})

	resp, err := svc.Yes(context.Background(), models.YesRequest{Symbol: "ACME"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.YesPercent != 50 {
		t.Errorf("expected neutral 50, got %v", resp.YesPercent)
	}
}

func TestPresetsResolveAgainstSeries(t *testing.T) {
	svc := NewChartService(&fakeSource{records: dailyRecords(400)}, noopMetrics{})

	resp, err := svc.Presets(context.Background(), models.PresetsRequest{Symbol: "ACME"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Presets) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(resp.Presets))
	}
	for _, p := range resp.Presets {
		if p.Preset == "MAX" {
			if p.Start != nil || p.End != nil {
				t.Errorf("MAX should be unbounded")
			}
			continue
		}
		if p.Start == nil || p.End == nil {
			t.Errorf("preset %s should be bounded", p.Preset)
		}
	}
}
