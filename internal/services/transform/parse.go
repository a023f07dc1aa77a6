// Package transform holds the stateless numeric transforms that turn a raw
// series of timestamped values into display-ready series: parsing and
// cleaning, range filtering, normalization modes, and percentile band math.
// Every function returns a new slice; inputs are never mutated. Degenerate
// input never produces an error, only an empty or nil result.
package transform

import (
	"sort"
	"time"

	"ChartPull/internal/domain/models"
	"ChartPull/pkg/util"
)

// ParseSeries maps loosely typed records to a cleaned series sorted ascending
// by time. Records whose value is non-numeric or whose timestamp/date does
// not parse are dropped silently. The timestamp field wins over date when
// both are present.
func ParseSeries(raw []models.RawRecord) []models.Point {
	if len(raw) == 0 {
		return []models.Point{}
	}
	out := make([]models.Point, 0, len(raw))
	for _, r := range raw {
		v, ok := util.ParseFloat(r.Value)
		if !ok {
			continue
		}
		ts := r.Timestamp
		if ts == "" {
			ts = r.Date
		}
		t, ok := util.ParseTime(ts)
		if !ok {
			continue
		}
		out = append(out, models.Point{T: t, V: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T.Before(out[j].T) })
	return out
}

// FilterByRange keeps points with start <= t <= end. A nil bound means
// unbounded on that side.
func FilterByRange(series []models.Point, start, end *time.Time) []models.Point {
	if len(series) == 0 {
		return []models.Point{}
	}
	out := make([]models.Point, 0, len(series))
	for _, p := range series {
		if start != nil && p.T.Before(*start) {
			continue
		}
		if end != nil && p.T.After(*end) {
			continue
		}
		out = append(out, p)
	}
	return out
}
