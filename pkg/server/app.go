package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"KepViz/pkg/config"
	xhttp "KepViz/pkg/http"
	applogger "KepViz/pkg/logger"
)

// App encapsulates the application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, httpServer *xhttp.Server) *App {
	if l == nil {
		l = applogger.Nop()
	}
	return &App{cfg: cfg, logger: l, httpServer: httpServer}
}

// HTTPServer exposes the server for tests and tooling.
func (a *App) HTTPServer() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-sigCh:
			a.logger.Info("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	return a.RunContext(ctx)
}

// RunContext serves until ctx is done, then shuts the server down.
func (a *App) RunContext(ctx context.Context) error {
	a.logger.Info("starting viewer api",
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("upstream", a.cfg.API.BaseURL),
		applogger.String("initial_freq", a.cfg.Viewer.InitialFreq),
		applogger.String("initial_name", a.cfg.Viewer.InitialName),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	<-ctx.Done()
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
