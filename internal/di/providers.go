package di

import (
	"fmt"

	"KepViz/internal/domain/repository"
	"KepViz/internal/handler/api"
	"KepViz/internal/service/minikep"
	"KepViz/internal/usecase"
	"KepViz/pkg/config"
	xhttp "KepViz/pkg/http"
	applogger "KepViz/pkg/logger"
	"KepViz/pkg/metrics"
	"KepViz/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder, or a no-op one when metrics are off.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NopMetrics{}
	}
	return metrics.New()
}

// ProvideHTTPClient creates the outbound client. A zero timeout is kept as zero.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.API.Timeout),
		xhttp.WithUserAgent(cfg.API.UserAgent),
	)
}

// ProvideDataSource creates the mini-kep API client.
func ProvideDataSource(cfg *config.Config, client *xhttp.Client, m repository.Metrics, l *applogger.Logger) repository.DataSource {
	return minikep.New(cfg.API.BaseURL, client, m, l)
}

// ProvideSeriesUseCase creates the series use case.
func ProvideSeriesUseCase(src repository.DataSource) *usecase.SeriesUseCase {
	return usecase.NewSeriesUseCase(src)
}

// ProvideViewerContext builds the startup selection once from the viewer section.
func ProvideViewerContext(cfg *config.Config) (usecase.ViewerContext, error) {
	return usecase.NewViewerContext(cfg.Viewer.InitialFreq, cfg.Viewer.InitialName, cfg.Viewer.ChartKind)
}

// ProvideViewer creates the viewer use case.
func ProvideViewer(vc usecase.ViewerContext, series *usecase.SeriesUseCase) *usecase.Viewer {
	return usecase.NewViewer(vc, series)
}

// ProvideViewerHandler creates the Echo handler for the viewer API.
func ProvideViewerHandler(l *applogger.Logger, viewer *usecase.Viewer, series *usecase.SeriesUseCase) *api.ViewerEchoHandler {
	return api.NewViewerEchoHandler(l, viewer, series)
}

// ProvideHTTPServer creates the Echo server with every handler registered.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h *api.ViewerEchoHandler) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(l, []xhttp.Handler{h},
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
	)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server) *server.App {
	return server.New(cfg, l, srv)
}
