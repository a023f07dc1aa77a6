package transform

import (
	"sort"
	"time"

	"ChartPull/internal/domain/models"
)

const minBandPoints = 5

// windowAll labels the whole-series fallback. It is never requested directly.
const windowAll = "all"

// minWindowPoints is the minimum point count each requestable window needs
// before degradation kicks in.
func minWindowPoints(window string) int {
	switch window {
	case "6M":
		return 30
	case "1Y":
		return 60
	case "2Y":
		return 100
	case "MAX":
		return 10
	default:
		return 10
	}
}

// degradeRule is one step of the window degradation policy: an underpopulated
// `from` window falls back to `to` when the series holds at least `minTotal`
// points overall. Rules are evaluated in order; the first match wins.
type degradeRule struct {
	from     string
	minTotal int
	to       string
}

var degradeRules = []degradeRule{
	{"2Y", 60, "1Y"},
	{"2Y", 30, "6M"},
	{"2Y", 0, windowAll},
	{"1Y", 30, "6M"},
	{"1Y", 0, windowAll},
	{"6M", 0, windowAll},
	{"MAX", 0, windowAll},
}

func degradeWindow(window string, totalPoints int) string {
	for _, r := range degradeRules {
		if r.from == window && totalPoints >= r.minTotal {
			return r.to
		}
	}
	return windowAll
}

// windowStart resolves the candidate start date of a trailing window ending
// at end. MAX, "all" and unrecognized labels start at the series' first point.
func windowStart(series []models.Point, window string, end time.Time) time.Time {
	switch window {
	case "6M":
		return end.AddDate(0, -6, 0)
	case "1Y":
		return end.AddDate(-1, 0, 0)
	case "2Y":
		return end.AddDate(-2, 0, 0)
	default:
		return series[0].T
	}
}

// ComputeYesBand derives a padded 5th-95th percentile envelope over a
// trailing window of the series, degrading to a shorter window when the
// requested one is underpopulated. It returns nil when fewer than five
// points remain even after degradation, meaning insufficient data.
func ComputeYesBand(series []models.Point, window string, anchor *time.Time) *models.Band {
	if len(series) == 0 {
		return nil
	}

	end := series[len(series)-1].T
	if anchor != nil {
		end = *anchor
	}

	start := windowStart(series, window, end)
	win := FilterByRange(series, &start, &end)

	actual := window
	if len(win) < minWindowPoints(window) {
		actual = degradeWindow(window, len(series))
		start = windowStart(series, actual, end)
		win = FilterByRange(series, &start, &end)
	}

	if len(win) < minBandPoints {
		return nil
	}

	values := make([]float64, len(win))
	for i, p := range win {
		values[i] = p.V
	}
	sort.Float64s(values)

	p5 := Percentile(values, 5)
	p95 := Percentile(values, 95)
	r := p95 - p5

	return &models.Band{
		P5:           p5,
		P95:          p95,
		Lower:        p5 - 0.5*r,
		Upper:        p95 + 0.5*r,
		WindowStart:  start,
		WindowEnd:    end,
		WindowPoints: len(win),
		Requested:    window,
		Actual:       actual,
	}
}

// ValueToYesPercent maps a raw value into a 0-100 probability display value
// through the band's padded bounds. The result is hard-clamped to [2,98] so
// the UI never shows an exact 0% or 100%. A nil or degenerate band yields 50,
// maximum uncertainty.
func ValueToYesPercent(value float64, band *models.Band) float64 {
	if band == nil || band.Upper == band.Lower {
		return 50
	}
	s := (value - band.Lower) / (band.Upper - band.Lower)
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	if s < 0.02 {
		s = 0.02
	}
	if s > 0.98 {
		s = 0.98
	}
	return 100 * s
}

// ComputeBandBounds is the fixed-window counterpart of ComputeYesBand used by
// the band display normalization: a trailing 6-month min/max envelope, padded
// by half its range on both sides. With fewer than ten points in the window
// the whole series is used instead, tagged by Source. An empty series yields
// the fixed default bounds [0,100].
func ComputeBandBounds(series []models.Point, anchor *time.Time) models.BandBounds {
	if len(series) == 0 {
		return models.BandBounds{L: 0, U: 100, Min: 0, Max: 100, R: 100, Source: "full"}
	}

	end := series[len(series)-1].T
	if anchor != nil {
		end = *anchor
	}
	start := end.AddDate(0, -6, 0)

	win := FilterByRange(series, &start, &end)
	source := "6m"
	if len(win) < 10 {
		win = series
		source = "full"
	}

	min, max := win[0].V, win[0].V
	for _, p := range win[1:] {
		if p.V < min {
			min = p.V
		}
		if p.V > max {
			max = p.V
		}
	}

	r := max - min
	return models.BandBounds{
		L:      min - 0.5*r,
		U:      max + 0.5*r,
		Min:    min,
		Max:    max,
		R:      r,
		Source: source,
	}
}
