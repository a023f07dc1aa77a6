package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ChartPull/internal/domain/models"
	"ChartPull/internal/domain/repository"
)

// ClickHouseSeriesStore implements Storage and SeriesSource for ClickHouse.
type ClickHouseSeriesStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseSeriesStore creates ClickHouse-backed point storage.
func NewClickHouseSeriesStore(db *sql.DB, table string) *ClickHouseSeriesStore {
	return &ClickHouseSeriesStore{db: db, table: table}
}

// SchemaStatements returns idempotent DDL for the points table.
func SchemaStatements(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			ts DateTime64(3),
			symbol LowCardinality(String),
			value Float64,
			source LowCardinality(String)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(ts)
		ORDER BY (symbol, ts)`, table),
	}
}

func (s *ClickHouseSeriesStore) Store(ctx context.Context, t *models.Tick) error {
	q := fmt.Sprintf("INSERT INTO %s (ts, symbol, value, source) VALUES (?, ?, ?, ?)", s.table)
	_, err := s.db.ExecContext(ctx, q,
		time.Unix(t.Timestamp, 0),
		t.Symbol,
		t.Value,
		"feed",
	)
	return err
}

func (s *ClickHouseSeriesStore) StoreBatch(ctx context.Context, ticks []*models.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	// Multi-row VALUES keeps round-trips down. 2000 rows per chunk.
	const chunkSize = 2000
	for start := 0; start < len(ticks); start += chunkSize {
		end := start + chunkSize
		if end > len(ticks) {
			end = len(ticks)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*4)
		for _, t := range ticks[start:end] {
			if t == nil || t.Symbol == "" || t.Timestamp == 0 {
				continue
			}
			values = append(values, "(?, ?, ?, ?)")
			args = append(args,
				time.Unix(t.Timestamp, 0),
				t.Symbol,
				t.Value,
				"feed",
			)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (ts, symbol, value, source) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *ClickHouseSeriesStore) Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.Tick, error) {
	q := fmt.Sprintf("SELECT symbol, ts, value FROM %s WHERE symbol = ? AND ts >= ? AND ts <= ? ORDER BY ts ASC LIMIT ?", s.table)
	rows, err := s.db.QueryContext(ctx, q, symbol, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ticks []*models.Tick
	for rows.Next() {
		var t models.Tick
		var ts time.Time
		if err := rows.Scan(&t.Symbol, &ts, &t.Value); err != nil {
			return nil, err
		}
		t.Timestamp = ts.Unix()
		ticks = append(ticks, &t)
	}
	return ticks, rows.Err()
}

// Fetch returns the full stored history for a symbol as raw records.
func (s *ClickHouseSeriesStore) Fetch(ctx context.Context, symbol string) ([]models.RawRecord, error) {
	q := fmt.Sprintf("SELECT ts, value FROM %s WHERE symbol = ? ORDER BY ts ASC", s.table)
	rows, err := s.db.QueryContext(ctx, q, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var ts time.Time
		var value float64
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, err
		}
		records = append(records, models.RawRecord{
			Value:     value,
			Timestamp: ts.UTC().Format(time.RFC3339),
		})
	}
	return records, rows.Err()
}

func (s *ClickHouseSeriesStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseSeriesStore) Close() error {
	return nil // Pool managed by pkg client
}

var _ repository.Storage = (*ClickHouseSeriesStore)(nil)
var _ repository.SeriesSource = (*ClickHouseSeriesStore)(nil)
