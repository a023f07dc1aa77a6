package transform

import (
	"testing"

	"ChartPull/internal/domain/models"
)

func TestNormalizeRawPassThrough(t *testing.T) {
	s := dailySeries(5, func(i int) float64 { return float64(i * 10) })
	got, info := Normalize(s, "raw", nil, nil)
	if info != nil {
		t.Fatalf("raw mode must carry no band info")
	}
	for i, p := range got {
		if p.V != s[i].V || p.Raw != s[i].V || !p.T.Equal(s[i].T) {
			t.Fatalf("point %d modified: %+v", i, p)
		}
	}
}

func TestNormalizeIndex100(t *testing.T) {
	s := dailySeries(4, func(i int) float64 { return float64(50 * (i + 1)) }) // 50,100,150,200
	got, _ := Normalize(s, "index100", nil, nil)
	want := []float64{100, 200, 300, 400}
	for i := range got {
		if !almostEqual(got[i].V, want[i]) {
			t.Fatalf("index100[%d] = %v, want %v", i, got[i].V, want[i])
		}
	}
}

func TestNormalizeIndex100ZeroFirst(t *testing.T) {
	// 100 daily points with values 0..99: first value is zero, so the whole
	// series pins to a constant 100.
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	got, _ := Normalize(s, "index100", nil, nil)
	for i := range got {
		if got[i].V != 100 {
			t.Fatalf("index100[%d] = %v, want constant 100", i, got[i].V)
		}
	}
}

func TestNormalizePct(t *testing.T) {
	s := dailySeries(3, func(i int) float64 { return float64(100 + 50*i) }) // 100,150,200
	got, _ := Normalize(s, "pct", nil, nil)
	want := []float64{0, 50, 100}
	for i := range got {
		if !almostEqual(got[i].V, want[i]) {
			t.Fatalf("pct[%d] = %v, want %v", i, got[i].V, want[i])
		}
	}
}

func TestNormalizePctZeroFirst(t *testing.T) {
	s := dailySeries(3, func(i int) float64 { return float64(i) })
	got, _ := Normalize(s, "pct", nil, nil)
	for i := range got {
		if got[i].V != 0 {
			t.Fatalf("pct[%d] = %v, want 0", i, got[i].V)
		}
	}
}

func TestNormalizeMinMaxBounds(t *testing.T) {
	s := dailySeries(50, func(i int) float64 { return float64(i*i) - 300 })
	got, _ := Normalize(s, "minmax", nil, nil)
	var sawZero, sawHundred bool
	for i := range got {
		if got[i].V < 0 || got[i].V > 100 {
			t.Fatalf("minmax[%d] = %v escaped [0,100]", i, got[i].V)
		}
		if got[i].V == 0 {
			sawZero = true
		}
		if got[i].V == 100 {
			sawHundred = true
		}
	}
	if !sawZero || !sawHundred {
		t.Fatalf("minimum must map to 0 and maximum to 100")
	}
}

func TestNormalizeMinMaxConstant(t *testing.T) {
	s := dailySeries(10, func(int) float64 { return 7 })
	got, _ := Normalize(s, "minmax", nil, nil)
	for i := range got {
		if got[i].V != 50 {
			t.Fatalf("constant series must map to 50, got %v", got[i].V)
		}
	}
}

func TestNormalizeBand6MPrice(t *testing.T) {
	// values 0..99 over 100 days: all inside the 6-month window, so
	// min=0 max=99, L=-49.5 U=148.5, and the scale spans 198.
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	got, info := Normalize(s, "band6m_price", nil, nil)
	if info == nil || info.Mode != "price" {
		t.Fatalf("expected price band info, got %+v", info)
	}
	if info.Bounds.Source != "6m" {
		t.Fatalf("bounds source = %s", info.Bounds.Source)
	}
	if !almostEqual(got[0].V, 300) { // z = 49.5/198 = 0.25
		t.Fatalf("first = %v, want 300", got[0].V)
	}
	if !almostEqual(got[99].V, 700) { // z = 0.75
		t.Fatalf("last = %v, want 700", got[99].V)
	}
	for i := range got {
		if got[i].V < 100 || got[i].V > 900 {
			t.Fatalf("band6m_price[%d] = %v escaped [100,900]", i, got[i].V)
		}
		if got[i].Raw != s[i].V {
			t.Fatalf("raw value lost at %d", i)
		}
	}
}

func TestNormalizeBand6MPriceDegenerate(t *testing.T) {
	s := dailySeries(20, func(int) float64 { return 5 })
	got, _ := Normalize(s, "band6m_price", nil, nil)
	for i := range got {
		if !almostEqual(got[i].V, 500) { // z pinned to 0.5
			t.Fatalf("degenerate range must map to 500, got %v", got[i].V)
		}
	}
}

func TestNormalizeBand6MPct(t *testing.T) {
	s := dailySeries(100, func(i int) float64 { return float64(i) })
	got, info := Normalize(s, "band6m_pct", nil, nil)
	if info == nil || info.Mode != "pct" {
		t.Fatalf("expected pct band info, got %+v", info)
	}
	if !almostEqual(info.Base, 300) {
		t.Fatalf("base = %v, want 300", info.Base)
	}
	if !almostEqual(got[0].V, 0) {
		t.Fatalf("first pct = %v, want 0", got[0].V)
	}
	// last scaled value is 700: (700/300 - 1) * 100
	if !almostEqual(got[99].V, (700.0/300.0-1)*100) {
		t.Fatalf("last pct = %v", got[99].V)
	}
}

func TestNormalizeBandUsesFullSeries(t *testing.T) {
	full := dailySeries(100, func(i int) float64 { return float64(i) })
	visible := full[90:]
	_, infoVisible := Normalize(visible, "band6m_price", full, nil)
	_, infoOwn := Normalize(visible, "band6m_price", nil, nil)
	if infoVisible.Bounds == infoOwn.Bounds {
		t.Fatalf("full-series bounds should differ from visible-only bounds")
	}
	if infoVisible.Bounds.Min != 0 || infoVisible.Bounds.Max != 99 {
		t.Fatalf("full bounds = %+v", infoVisible.Bounds)
	}
}

func TestNormalizeEmptySeries(t *testing.T) {
	for _, mode := range []string{"raw", "index100", "pct", "minmax", "band6m_price", "band6m_pct"} {
		got, _ := Normalize([]models.Point{}, mode, nil, nil)
		if len(got) != 0 {
			t.Fatalf("mode %s: expected empty output", mode)
		}
	}
}
