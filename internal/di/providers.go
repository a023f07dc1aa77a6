package di

import (
	"context"
	"fmt"
	"time"

	"ChartPull/internal/domain/repository"
	"ChartPull/internal/handler/api"
	internalrepo "ChartPull/internal/repository"
	"ChartPull/internal/service/feed"
	"ChartPull/internal/service/upstream"
	"ChartPull/internal/usecase"
	pkgcache "ChartPull/pkg/cache"
	pkgch "ChartPull/pkg/clickhouse"
	"ChartPull/pkg/config"
	xhttp "ChartPull/pkg/http"
	pkgkafka "ChartPull/pkg/kafka"
	applogger "ChartPull/pkg/logger"
	"ChartPull/pkg/metrics"
	"ChartPull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache layer. Redis-backed layered cache when
// enabled, process-local memory cache otherwise.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	maxSize := cfg.Cache.MemoryMaxSize
	if maxSize <= 0 {
		maxSize = 1000
	}
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(pkgcache.WithMemoryMaxSize(maxSize)), nil
	}

	prefix := cfg.Cache.Prefix
	if prefix == "" {
		prefix = "chartpull"
	}
	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		pkgcache.WithRedisPrefix(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(redisCache, pkgcache.WithLayeredMemorySize(maxSize)), nil
}

// ProvideSeriesSource builds the serving source: ingested point history
// first when the storage backend holds it, the upstream history API behind
// the cache otherwise. The storage leg is not cached so live points show
// up without waiting out the TTL.
func ProvideSeriesSource(cfg *config.Config, c pkgcache.Service, store repository.Storage) repository.SeriesSource {
	var up repository.SeriesSource
	if cfg.Upstream.BaseURL != "" {
		up = internalrepo.NewCachedSource(upstream.New(cfg), c, cfg.Upstream.CacheTTL)
	}

	stored, ok := store.(repository.SeriesSource)
	if !ok {
		return up
	}
	if up == nil {
		return stored
	}
	return internalrepo.NewFallbackSource(stored, up)
}

// ProvideChartService creates the chart use case.
func ProvideChartService(source repository.SeriesSource, m repository.Metrics) *usecase.ChartService {
	return usecase.NewChartService(source, m)
}

// ProvideChartHandler creates the HTTP handler for chart endpoints.
func ProvideChartHandler(l *applogger.Logger, charts *usecase.ChartService) xhttp.Handler {
	return api.NewChartEchoHandler(l, charts)
}

// ProvideClickHouseClient creates a ClickHouse client when that backend is
// configured, nil otherwise.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Backend.Type != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmts := append(
		[]string{fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", cfg.ClickHouse.Database)},
		internalrepo.SchemaStatements(pointsTable(cfg))...,
	)
	if err := client.InitSchema(ctx, stmts); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

func pointsTable(cfg *config.Config) string {
	table := cfg.ClickHouse.Table
	if table == "" {
		table = "points"
	}
	return cfg.ClickHouse.Database + "." + table
}

// ProvideStorage creates point storage. ClickHouse when configured, an
// in-memory store otherwise.
func ProvideStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	if chClient != nil {
		return internalrepo.NewClickHouseSeriesStore(chClient.DB(), pointsTable(cfg))
	}
	return internalrepo.NewMemorySeriesStore(100000)
}

// ProvideKafkaProducer creates a Kafka producer when that backend is
// configured, nil otherwise.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvidePublisher creates the Kafka publisher repository.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideKafkaConsumer creates a Kafka consumer when that backend is
// configured, nil otherwise.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if cfg.Backend.Type != "kafka" || len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}

	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaPointsHandler registers the handler for the points topic.
func ProvideKafkaPointsHandler(store repository.Storage, m repository.Metrics, cfg *config.Config) *usecase.KafkaPointsHandler {
	return usecase.NewKafkaPointsHandler(cfg.Kafka.Topic, store, m)
}

// ProvideFeedStream creates the WebSocket point feed when configured, nil
// otherwise.
func ProvideFeedStream(cfg *config.Config) repository.PointStream {
	if cfg.Feed.WebSocketURL == "" {
		return nil
	}
	reconnect := cfg.Feed.ReconnectDelay
	if reconnect <= 0 {
		reconnect = 5 * time.Second
	}
	ping := cfg.Feed.PingInterval
	if ping <= 0 {
		ping = 20 * time.Second
	}
	return feed.New(
		cfg.Feed.APIKey,
		cfg.Feed.WebSocketURL,
		cfg.Feed.Symbols,
		reconnect,
		ping,
	)
}

// ProvidePointProcessor creates the point processor use case.
func ProvidePointProcessor(
	pub repository.Publisher,
	store repository.Storage,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.PointProcessor {
	return usecase.NewPointProcessor(
		pub,
		store,
		m,
		cfg.Backend.Type,
		cfg.Backend.BatchSize,
		cfg.Backend.BatchTimeout,
	)
}

// ProvidePointCollector creates the point collector use case. Nil when no
// feed is configured.
func ProvidePointCollector(
	stream repository.PointStream,
	processor *usecase.PointProcessor,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.PointCollector {
	if stream == nil {
		return nil
	}
	return usecase.NewPointCollector(stream, processor, m, cfg.Feed.MaxPointsPerSec)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	collector *usecase.PointCollector,
	processor *usecase.PointProcessor,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaPointsHandler,
	chClient *pkgch.Client,
) *server.App {
	var mh pkgkafka.MessageHandler
	if consumer != nil {
		mh = kh
	}
	app := server.New(cfg, logger, handler, collector, consumer, mh, chClient)
	app.PointProc = processor
	return app
}
