package models

import "time"

// RawRecord is a loosely typed input record as delivered by upstream data
// providers. Value may be a number or a numeric string; Timestamp takes
// precedence over Date when both are set.
type RawRecord struct {
	Value     any    `json:"value"`
	Timestamp string `json:"timestamp,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Point is a single cleaned observation. V is always finite.
type Point struct {
	T time.Time `json:"t"`
	V float64   `json:"v"`
}

// NormalizedPoint carries a display value alongside the raw value it was
// derived from. Raw equals V for pass-through modes.
type NormalizedPoint struct {
	T   time.Time `json:"t"`
	V   float64   `json:"v"`
	Raw float64   `json:"raw"`
}

// Tick is a live point update flowing through the ingest pipeline.
type Tick struct {
	Symbol    string
	Timestamp int64 // unix seconds
	Value     float64
}
