package transform

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentileEndpoints(t *testing.T) {
	cases := [][]float64{
		{1},
		{1, 2},
		{1, 5, 9},
		{-3, 0, 2, 7, 11, 40},
	}
	for _, values := range cases {
		if got := Percentile(values, 0); !almostEqual(got, values[0]) {
			t.Errorf("p0 of %v = %v, want %v", values, got, values[0])
		}
		if got := Percentile(values, 100); !almostEqual(got, values[len(values)-1]) {
			t.Errorf("p100 of %v = %v, want %v", values, got, values[len(values)-1])
		}
	}
}

func TestPercentileInterpolation(t *testing.T) {
	values := []float64{0, 10, 20, 30}
	tests := []struct {
		p    float64
		want float64
	}{
		{50, 15},   // idx 1.5, halfway between 10 and 20
		{25, 7.5},  // idx 0.75
		{75, 22.5}, // idx 2.25
	}
	for _, tt := range tests {
		if got := Percentile(values, tt.p); !almostEqual(got, tt.want) {
			t.Errorf("p%v = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPercentileSingleValue(t *testing.T) {
	for _, p := range []float64{0, 37, 50, 100} {
		if got := Percentile([]float64{42}, p); got != 42 {
			t.Errorf("p%v of single value = %v, want 42", p, got)
		}
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Fatalf("empty input must yield 0, got %v", got)
	}
}

func TestPercentileKnownSpread(t *testing.T) {
	// 0..99: p5 at idx 4.95, p95 at idx 94.05
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	if got := Percentile(values, 5); !almostEqual(got, 4.95) {
		t.Errorf("p5 = %v, want 4.95", got)
	}
	if got := Percentile(values, 95); !almostEqual(got, 94.05) {
		t.Errorf("p95 = %v, want 94.05", got)
	}
}
