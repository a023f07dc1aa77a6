package repository

import (
	"context"
	"time"

	"ChartPull/internal/domain/models"
)

// SeriesSource provides the raw input array for a symbol. Implementations
// are acquisition collaborators (HTTP upstream, storage, in-memory store);
// cleaning and transforming the records is not their concern.
type SeriesSource interface {
	Fetch(ctx context.Context, symbol string) ([]models.RawRecord, error)
}

// PointStream is a live feed of point updates.
type PointStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Tick, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher publishes point updates to a message backend.
type Publisher interface {
	Publish(ctx context.Context, t *models.Tick) error
	PublishBatch(ctx context.Context, ticks []*models.Tick) error
	Close() error
}

// Storage persists and queries point history.
type Storage interface {
	Store(ctx context.Context, t *models.Tick) error
	StoreBatch(ctx context.Context, ticks []*models.Tick) error
	Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.Tick, error)
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational counters for the service.
type Metrics interface {
	RecordSeriesServed(mode, symbol string)
	RecordPointIngested(backend, symbol string)
	RecordError(kind string)
	RecordLastValue(symbol string, value float64)
	RecordLatency(op string, seconds float64)
}
