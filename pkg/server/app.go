package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"SignalDesk/internal/domain/repository"
	"SignalDesk/pkg/cache"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server and the
// infrastructure clients that need closing on shutdown.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	history    repository.HistoryStore
	publisher  repository.StatsPublisher
	cache      cache.Service
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	history repository.HistoryStore,
	publisher repository.StatsPublisher,
	cacheSvc cache.Service,
) *App {
	srv := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		history:    history,
		publisher:  publisher,
		cache:      cacheSvc,
	}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the server and closes infrastructure clients.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("stats publisher close error", applogger.Error(err))
		}
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.log.Warn("history store close error", applogger.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Warn("cache close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
