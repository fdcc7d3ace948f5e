//go:build wireinject
// +build wireinject

package di

import (
	"SignalDesk/pkg/config"
	"SignalDesk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideCache,

		// Repositories
		ProvideHistoryStore,
		ProvideStatsPublisher,

		// Collaborators
		ProvideMessageSource,
		ProvidePriceSource,
		ProvideAuthService,

		// Use cases and HTTP surface
		ProvideSignalRunner,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
