package transform

import (
	"testing"
	"time"

	"ChartPull/internal/domain/models"
)

func TestComputeYesBandFullWindow(t *testing.T) {
	// 100 daily points, values 0..99, requested over the whole series.
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	band := ComputeYesBand(s, "MAX", nil)
	if band == nil {
		t.Fatal("expected a band")
	}
	if band.Requested != "MAX" || band.Actual != "MAX" {
		t.Fatalf("labels: requested=%s actual=%s", band.Requested, band.Actual)
	}
	if band.WindowPoints != 100 {
		t.Fatalf("window points = %d, want 100", band.WindowPoints)
	}
	if !almostEqual(band.P5, 4.95) || !almostEqual(band.P95, 94.05) {
		t.Fatalf("percentiles: p5=%v p95=%v", band.P5, band.P95)
	}
	// padding is half the p5-p95 range on each side
	r := band.P95 - band.P5
	if !almostEqual(band.Lower, band.P5-0.5*r) || !almostEqual(band.Upper, band.P95+0.5*r) {
		t.Fatalf("bounds: lower=%v upper=%v", band.Lower, band.Upper)
	}
}

func TestComputeYesBandDegradation(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		window     string
		wantActual string
	}{
		{"enough for 2Y", 200, "2Y", "2Y"},
		{"2Y degrades to 1Y", 80, "2Y", "1Y"},
		{"2Y degrades to 6M", 40, "2Y", "6M"},
		{"2Y degrades to all", 20, "2Y", "all"},
		{"1Y degrades to 6M", 40, "1Y", "6M"},
		{"1Y degrades to all", 20, "1Y", "all"},
		{"6M degrades to all", 20, "6M", "all"},
		{"MAX degrades to all", 8, "MAX", "all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := dailySeries(tt.points, func(i int) float64 { return float64(i) })
			band := ComputeYesBand(s, tt.window, nil)
			if band == nil {
				t.Fatal("expected a band")
			}
			if band.Requested != tt.window {
				t.Fatalf("requested label lost: %s", band.Requested)
			}
			if band.Actual != tt.wantActual {
				t.Fatalf("actual = %s, want %s", band.Actual, tt.wantActual)
			}
			// the degraded window must hold at least as many points as the
			// hard minimum, never fewer
			if band.WindowPoints < 5 {
				t.Fatalf("window points = %d", band.WindowPoints)
			}
		})
	}
}

func TestComputeYesBandSparseYear(t *testing.T) {
	// 40 points spread over a full year: requesting 2Y cannot stay at 2Y
	// (needs 100) nor go to 1Y (needs 60 overall), so it lands on 6M.
	s := make([]models.Point, 40)
	for i := range s {
		s[i] = models.Point{T: day(i * 9), V: float64(i)}
	}
	band := ComputeYesBand(s, "2Y", nil)
	if band == nil {
		t.Fatal("expected a band")
	}
	if band.Actual != "6M" {
		t.Fatalf("actual = %s, want 6M", band.Actual)
	}
}

func TestComputeYesBandInsufficient(t *testing.T) {
	if band := ComputeYesBand(nil, "1Y", nil); band != nil {
		t.Fatalf("empty series must yield nil, got %+v", band)
	}
	s := dailySeries(3, func(i int) float64 { return float64(i) })
	if band := ComputeYesBand(s, "1Y", nil); band != nil {
		t.Fatalf("3 points must yield nil, got %+v", band)
	}
}

func TestComputeYesBandAnchor(t *testing.T) {
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	anchor := day(49)
	band := ComputeYesBand(s, "MAX", &anchor)
	if band == nil {
		t.Fatal("expected a band")
	}
	if !band.WindowEnd.Equal(anchor) {
		t.Fatalf("window end = %v, want anchor %v", band.WindowEnd, anchor)
	}
	if band.WindowPoints != 50 {
		t.Fatalf("window points = %d, want 50", band.WindowPoints)
	}
}

func TestValueToYesPercentRange(t *testing.T) {
	band := &models.Band{Lower: 0, Upper: 100}
	tests := []struct {
		value float64
		want  float64
	}{
		{50, 50},
		{0, 2},     // at lower bound, clamped up
		{-1000, 2}, // far below
		{100, 98},  // at upper bound, clamped down
		{1e9, 98},  // far above
		{25, 25},
		{98, 98},
	}
	for _, tt := range tests {
		got := ValueToYesPercent(tt.value, band)
		if !almostEqual(got, tt.want) {
			t.Errorf("value %v -> %v, want %v", tt.value, got, tt.want)
		}
		if got < 2 || got > 98 {
			t.Errorf("value %v escaped [2,98]: %v", tt.value, got)
		}
	}
}

func TestValueToYesPercentFallbacks(t *testing.T) {
	if got := ValueToYesPercent(10, nil); got != 50 {
		t.Fatalf("nil band: got %v, want 50", got)
	}
	degenerate := &models.Band{Lower: 7, Upper: 7}
	if got := ValueToYesPercent(10, degenerate); got != 50 {
		t.Fatalf("degenerate band: got %v, want 50", got)
	}
}

func TestComputeBandBoundsEmpty(t *testing.T) {
	got := ComputeBandBounds(nil, nil)
	want := models.BandBounds{L: 0, U: 100, Min: 0, Max: 100, R: 100, Source: "full"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestComputeBandBoundsRecentWindow(t *testing.T) {
	// 10 old points well outside six months, then 12 recent ones holding the
	// window min/max.
	var s []models.Point
	for i := 0; i < 10; i++ {
		s = append(s, models.Point{T: day(i), V: 1000})
	}
	for i := 0; i < 12; i++ {
		s = append(s, models.Point{T: day(400 + i), V: float64(10 + i*5)})
	}
	got := ComputeBandBounds(s, nil)
	if got.Source != "6m" {
		t.Fatalf("source = %s, want 6m", got.Source)
	}
	if got.Min != 10 || got.Max != 65 {
		t.Fatalf("min/max = %v/%v, want 10/65", got.Min, got.Max)
	}
	if !almostEqual(got.R, 55) || !almostEqual(got.L, 10-27.5) || !almostEqual(got.U, 65+27.5) {
		t.Fatalf("bounds: %+v", got)
	}
}

func TestComputeBandBoundsFullFallback(t *testing.T) {
	// only 4 points inside six months: the full series supplies min/max
	var s []models.Point
	for i := 0; i < 6; i++ {
		s = append(s, models.Point{T: day(i), V: float64(i)}) // 0..5, old
	}
	for i := 0; i < 4; i++ {
		s = append(s, models.Point{T: day(400 + i), V: float64(50 + i)})
	}
	got := ComputeBandBounds(s, nil)
	if got.Source != "full" {
		t.Fatalf("source = %s, want full", got.Source)
	}
	if got.Min != 0 || got.Max != 53 {
		t.Fatalf("min/max = %v/%v, want 0/53", got.Min, got.Max)
	}
}

func TestComputeBandBoundsAnchored(t *testing.T) {
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC) // before the series
	got := ComputeBandBounds(s, &anchor)
	// no points inside the anchored window, so the full series is used
	if got.Source != "full" {
		t.Fatalf("source = %s, want full", got.Source)
	}
}
