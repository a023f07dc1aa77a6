package transform

import (
	"time"

	"ChartPull/internal/domain/models"
)

// Normalize rescales the visible series according to mode and returns the
// transformed points plus band metadata. The metadata is nil except for the
// two band modes, which compute their bounds over fullSeries (the undisplayed
// whole history) when given, falling back to the visible series. Raw on each
// output point always carries the original value.
func Normalize(series []models.Point, mode string, fullSeries []models.Point, anchor *time.Time) ([]models.NormalizedPoint, *models.BandInfo) {
	switch mode {
	case "index100":
		return normalizeIndex100(series), nil
	case "pct":
		return normalizePct(series), nil
	case "minmax":
		return normalizeMinMax(series), nil
	case "band6m_price", "band6m_pct":
		return normalizeBand6M(series, mode, fullSeries, anchor)
	default: // raw
		return passThrough(series), nil
	}
}

func passThrough(series []models.Point) []models.NormalizedPoint {
	out := make([]models.NormalizedPoint, len(series))
	for i, p := range series {
		out[i] = models.NormalizedPoint{T: p.T, V: p.V, Raw: p.V}
	}
	return out
}

func normalizeIndex100(series []models.Point) []models.NormalizedPoint {
	out := make([]models.NormalizedPoint, len(series))
	if len(series) == 0 {
		return out
	}
	first := series[0].V
	for i, p := range series {
		v := 100.0
		if first != 0 {
			v = p.V / first * 100
		}
		out[i] = models.NormalizedPoint{T: p.T, V: v, Raw: p.V}
	}
	return out
}

func normalizePct(series []models.Point) []models.NormalizedPoint {
	out := make([]models.NormalizedPoint, len(series))
	if len(series) == 0 {
		return out
	}
	first := series[0].V
	for i, p := range series {
		v := 0.0
		if first != 0 {
			v = (p.V/first - 1) * 100
		}
		out[i] = models.NormalizedPoint{T: p.T, V: v, Raw: p.V}
	}
	return out
}

func normalizeMinMax(series []models.Point) []models.NormalizedPoint {
	out := make([]models.NormalizedPoint, len(series))
	if len(series) == 0 {
		return out
	}
	min, max := series[0].V, series[0].V
	for _, p := range series[1:] {
		if p.V < min {
			min = p.V
		}
		if p.V > max {
			max = p.V
		}
	}
	for i, p := range series {
		v := 50.0
		if max > min {
			v = (p.V - min) / (max - min) * 100
		}
		out[i] = models.NormalizedPoint{T: p.T, V: v, Raw: p.V}
	}
	return out
}

// normalizeBand6M maps each point into the 100-900 display scale through the
// fixed 6-month bounds, then optionally re-expresses the scaled series as
// percent change from its first point.
func normalizeBand6M(series []models.Point, mode string, fullSeries []models.Point, anchor *time.Time) ([]models.NormalizedPoint, *models.BandInfo) {
	base := fullSeries
	if len(base) == 0 {
		base = series
	}
	bounds := ComputeBandBounds(base, anchor)

	out := make([]models.NormalizedPoint, len(series))
	r := bounds.U - bounds.L
	for i, p := range series {
		z := 0.5
		if r > 0 {
			z = (p.V - bounds.L) / r
			if z < 0 {
				z = 0
			}
			if z > 1 {
				z = 1
			}
		}
		out[i] = models.NormalizedPoint{T: p.T, V: 100 + 800*z, Raw: p.V}
	}

	if mode == "band6m_pct" {
		info := &models.BandInfo{Mode: "pct", Bounds: bounds}
		if len(out) > 0 {
			p0 := out[0].V
			info.Base = p0
			for i := range out {
				v := 0.0
				if p0 != 0 {
					v = (out[i].V/p0 - 1) * 100
				}
				out[i].V = v
			}
		}
		return out, info
	}

	return out, &models.BandInfo{Mode: "price", Bounds: bounds}
}
