//go:build wireinject
// +build wireinject

package di

import (
	"ChartPull/pkg/config"
	"ChartPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Acquisition
		ProvideSeriesSource,
		ProvideChartService,
		ProvideChartHandler,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideStorage,
		ProvidePublisher,
		ProvideFeedStream,

		// Ingest use cases
		ProvidePointProcessor,
		ProvidePointCollector,
		ProvideKafkaPointsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
