package usecase

import (
	"context"
	"encoding/json"
	"time"

	"ChartPull/internal/domain/models"
	domrepo "ChartPull/internal/domain/repository"
	pkgkafka "ChartPull/pkg/kafka"
)

// KafkaPointsHandler consumes point messages and writes them to storage.
type KafkaPointsHandler struct {
	topic   string
	storage domrepo.Storage
	metrics domrepo.Metrics
}

func NewKafkaPointsHandler(topic string, storage domrepo.Storage, metrics domrepo.Metrics) *KafkaPointsHandler {
	return &KafkaPointsHandler{topic: topic, storage: storage, metrics: metrics}
}

func (h *KafkaPointsHandler) Topic() string { return h.topic }

// incoming message schema: {symbol, t, v}
func (h *KafkaPointsHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		Symbol string  `json:"symbol"`
		T      int64   `json:"t"`
		V      float64 `json:"v"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}
	if m.T > 1e11 { // ms
		m.T = m.T / 1000
	}
	// E2E latency from event time to now (approx)
	h.metrics.RecordLatency("ingest_e2e_seconds", time.Since(time.Unix(m.T, 0)).Seconds())

	start := time.Now()
	err := h.storage.Store(ctx, &models.Tick{
		Symbol:    m.Symbol,
		Timestamp: m.T,
		Value:     m.V,
	})
	h.metrics.RecordLatency("store_insert_seconds", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordPointIngested("clickhouse", m.Symbol)
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaPointsHandler)(nil)
