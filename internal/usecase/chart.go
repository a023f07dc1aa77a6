package usecase

import (
	"context"
	"fmt"
	"time"

	"ChartPull/internal/domain/models"
	domrepo "ChartPull/internal/domain/repository"
	"ChartPull/internal/services/transform"
	xhttp "ChartPull/pkg/http"
)

// ChartService turns raw upstream arrays into chart-ready series. It owns
// the fetch-clean-filter-normalize sequence; all math lives in transform.
type ChartService struct {
	source  domrepo.SeriesSource
	metrics domrepo.Metrics
	timeout time.Duration
}

// NewChartService creates a new ChartService instance.
func NewChartService(source domrepo.SeriesSource, metrics domrepo.Metrics) *ChartService {
	return &ChartService{source: source, metrics: metrics, timeout: 10 * time.Second}
}

func (s *ChartService) load(ctx context.Context, symbol string) ([]models.Point, error) {
	records, err := s.source.Fetch(ctx, symbol)
	if err != nil {
		s.metrics.RecordError("source_fetch")
		return nil, fmt.Errorf("fetch series: %w", err)
	}
	return transform.ParseSeries(records), nil
}

// Series returns the filtered, normalized series for one symbol.
func (s *ChartService) Series(ctx context.Context, req models.SeriesRequest) (*models.SeriesResponse, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	series, err := s.load(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	preset := domrepo.NormalizePreset(req.Preset)
	mode := domrepo.NormalizeMode(req.Mode)

	from, to := transform.PresetRange(string(preset), series)
	filtered := transform.FilterByRange(series, from, to)
	points, band := transform.Normalize(filtered, string(mode), series, nil)

	s.metrics.RecordSeriesServed(string(mode), req.Symbol)
	s.metrics.RecordLatency("series", time.Since(start).Seconds())

	return &models.SeriesResponse{
		Symbol: req.Symbol,
		Preset: string(preset),
		Mode:   string(mode),
		Points: points,
		Band:   band,
	}, nil
}

// Band returns the percentile band for one symbol over a trailing window.
func (s *ChartService) Band(ctx context.Context, req models.BandRequest) (*models.BandResponse, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	series, err := s.load(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	window := domrepo.NormalizeWindow(req.Window)
	band := transform.ComputeYesBand(series, string(window), nil)
	if band == nil {
		s.metrics.RecordError("insufficient_data")
		return nil, xhttp.NotFoundError("insufficient data")
	}

	s.metrics.RecordLatency("band", time.Since(start).Seconds())

	return &models.BandResponse{Symbol: req.Symbol, Band: band}, nil
}

// Yes maps a value onto the band scale of one symbol. The value defaults
// to the last point of the series when the request leaves it out.
func (s *ChartService) Yes(ctx context.Context, req models.YesRequest) (*models.YesResponse, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	series, err := s.load(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	window := domrepo.NormalizeWindow(req.Window)
	band := transform.ComputeYesBand(series, string(window), nil)

	var value float64
	switch {
	case req.Value != nil:
		value = *req.Value
	case len(series) > 0:
		value = series[len(series)-1].V
	}

	yes := transform.ValueToYesPercent(value, band)

	s.metrics.RecordLatency("yes", time.Since(start).Seconds())

	return &models.YesResponse{
		Symbol:     req.Symbol,
		Value:      value,
		YesPercent: yes,
		Band:       band,
	}, nil
}

// Presets resolves every range preset against a symbol's series.
func (s *ChartService) Presets(ctx context.Context, req models.PresetsRequest) (*models.PresetsResponse, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	series, err := s.load(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	out := make([]models.PresetRange, 0, len(domrepo.Presets()))
	for _, p := range domrepo.Presets() {
		from, to := transform.PresetRange(string(p), series)
		entry := models.PresetRange{Preset: string(p)}
		if from != nil {
			sec := from.Unix()
			entry.Start = &sec
		}
		if to != nil {
			sec := to.Unix()
			entry.End = &sec
		}
		out = append(out, entry)
	}

	return &models.PresetsResponse{Symbol: req.Symbol, Presets: out}, nil
}
