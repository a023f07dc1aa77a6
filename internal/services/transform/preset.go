package transform

import (
	"time"

	"ChartPull/internal/domain/models"
)

// presetDays maps a range preset label to its trailing day count. MAX and
// unrecognized labels have no day count, meaning unbounded.
func presetDays(preset string) (int, bool) {
	switch preset {
	case "7D":
		return 7, true
	case "30D":
		return 30, true
	case "90D":
		return 90, true
	case "6M":
		return 180, true
	case "1Y":
		return 365, true
	default:
		return 0, false
	}
}

// PresetRange resolves a preset label against the series into inclusive date
// bounds for FilterByRange. The end bound is the last point's time; the start
// is end minus the preset's day count. MAX, unrecognized labels and empty
// series yield nil bounds (unbounded).
func PresetRange(preset string, series []models.Point) (start, end *time.Time) {
	if len(series) == 0 {
		return nil, nil
	}
	days, ok := presetDays(preset)
	if !ok {
		return nil, nil
	}
	e := series[len(series)-1].T
	s := e.AddDate(0, 0, -days)
	return &s, &e
}
