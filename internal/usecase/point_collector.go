package usecase

import (
	"context"
	"time"

	"ChartPull/internal/domain/models"
	drepo "ChartPull/internal/domain/repository"
	"ChartPull/internal/service/ratelimit"
)

// PointCollector drains the live feed, throttles per symbol and hands
// batches to the processor.
type PointCollector struct {
	stream  drepo.PointStream
	proc    *PointProcessor
	metrics drepo.Metrics
	limiter *ratelimit.Limiter
	maxRate float64
}

// NewPointCollector creates a new PointCollector instance. maxRate bounds
// points per second per symbol; 0 disables throttling.
func NewPointCollector(stream drepo.PointStream, proc *PointProcessor, metrics drepo.Metrics, maxRate float64) *PointCollector {
	return &PointCollector{
		stream:  stream,
		proc:    proc,
		metrics: metrics,
		limiter: ratelimit.New(),
		maxRate: maxRate,
	}
}

// IsConnected returns true if the feed is connected.
func (c *PointCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *PointCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	tkCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, tkCh, errCh)
	return nil
}

func (c *PointCollector) consume(ctx context.Context, tkCh <-chan *models.Tick, errCh <-chan error) {
	batchSz := c.proc.BatchSize()
	flushEvery := c.proc.BatchTimeout()
	if flushEvery <= 0 {
		flushEvery = time.Second
	}

	var batch []*models.Tick
	flush := func() {
		if len(batch) == 0 {
			return
		}
		_ = c.proc.ProcessBatch(ctx, batch)
		batch = nil
	}

	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case err, ok := <-errCh:
			if !ok {
				flush()
				tkCh, errCh = c.reopen(ctx)
				continue
			}
			if err != nil {
				c.metrics.RecordError("stream")
			}
		case <-ticker.C:
			flush()
		case t, ok := <-tkCh:
			if !ok {
				flush()
				tkCh, errCh = c.reopen(ctx)
				continue
			}
			if t == nil {
				continue
			}
			if c.maxRate > 0 && !c.limiter.Allow(t.Symbol, c.maxRate, c.maxRate) {
				c.metrics.RecordError("throttled")
				continue
			}
			c.metrics.RecordLastValue(t.Symbol, t.Value)
			if batchSz <= 1 {
				_ = c.proc.Process(ctx, t)
				continue
			}
			batch = append(batch, t)
			if len(batch) >= batchSz {
				flush()
			}
		}
	}
}

// reopen reconnects the stream and returns fresh read channels. The old
// channels are closed once the stream's read loop ends, so selecting on
// them again would spin. Returns nil channels when ctx ends; the caller's
// ctx.Done case takes over from there.
func (c *PointCollector) reopen(ctx context.Context) (<-chan *models.Tick, <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return nil, nil
		default:
		}
		if err := c.stream.Reconnect(ctx); err != nil {
			c.metrics.RecordError("stream")
			continue
		}
		tkCh, errCh := c.stream.Read(ctx)
		return tkCh, errCh
	}
}

func (c *PointCollector) Stop() error { return c.stream.Close() }

// Processor returns the underlying PointProcessor for lifecycle management.
func (c *PointCollector) Processor() *PointProcessor { return c.proc }

// Shutdown closes the feed connection.
func (c *PointCollector) Shutdown(ctx context.Context) error {
	return c.stream.Close()
}
