//go:build wireinject
// +build wireinject

package di

import (
	"KepViz/pkg/config"
	"KepViz/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Upstream
		ProvideHTTPClient,
		ProvideDataSource,

		// Use cases
		ProvideSeriesUseCase,
		ProvideViewerContext,
		ProvideViewer,

		// HTTP surface
		ProvideViewerHandler,
		ProvideHTTPServer,

		ProvideApp,
	)
	return &server.App{}, nil
}
