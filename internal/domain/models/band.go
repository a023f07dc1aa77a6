package models

import "time"

// Band is a padded 5th-95th percentile envelope over a trailing window of a
// series. Requested keeps the window label the caller asked for; Actual is
// the window the computation settled on after degradation.
type Band struct {
	P5           float64   `json:"p5"`
	P95          float64   `json:"p95"`
	Lower        float64   `json:"lower"`
	Upper        float64   `json:"upper"`
	WindowStart  time.Time `json:"window_start"`
	WindowEnd    time.Time `json:"window_end"`
	WindowPoints int       `json:"window_points"`
	Requested    string    `json:"requested_window"`
	Actual       string    `json:"actual_window"`
}

// BandBounds is the fixed 6-month min/max envelope used by the band display
// normalization modes. Source is "6m" when the trailing window had enough
// points, "full" when the whole series was used instead.
type BandBounds struct {
	L      float64 `json:"l"`
	U      float64 `json:"u"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	R      float64 `json:"r"`
	Source string  `json:"source"`
}

// BandInfo accompanies series normalized through a band mode. Base is the
// first scaled value when Mode is "pct", zero otherwise.
type BandInfo struct {
	Mode   string     `json:"mode"`
	Bounds BandBounds `json:"bounds"`
	Base   float64    `json:"base,omitempty"`
}
