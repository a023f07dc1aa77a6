package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	seriesServed   *prometheus.CounterVec
	pointsIngested *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastValue      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		seriesServed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartpull_series_served_total",
				Help: "Total number of chart series responses served",
			},
			[]string{"mode", "symbol"},
		),
		pointsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartpull_points_ingested_total",
				Help: "Total number of points ingested per backend",
			},
			[]string{"backend", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartpull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chartpull_last_value",
				Help: "Last observed value for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chartpull_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordSeriesServed records a served chart series response.
func (r *Recorder) RecordSeriesServed(mode, symbol string) {
	r.seriesServed.WithLabelValues(mode, symbol).Inc()
}

// RecordPointIngested records an ingested point per backend.
func (r *Recorder) RecordPointIngested(backend, symbol string) {
	r.pointsIngested.WithLabelValues(backend, symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastValue records the last observed value for a symbol.
func (r *Recorder) RecordLastValue(symbol string, value float64) {
	r.lastValue.WithLabelValues(symbol).Set(value)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
