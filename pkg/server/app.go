package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/config"
	xhttp "CoinPulse/pkg/http"
	"CoinPulse/pkg/logger"
)

// App encapsulates the application lifecycle.
type App struct {
	cfg     *config.Config
	logger  *logger.Logger
	handler xhttp.Handler
	store   cache.Service

	httpServer *xhttp.Server
}

// New creates an App with all dependencies injected.
func New(cfg *config.Config, l *logger.Logger, handler xhttp.Handler, store cache.Service) *App {
	return &App{
		cfg:     cfg,
		logger:  l,
		handler: handler,
		store:   store,
	}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", logger.Error(err))
		return err
	}
	a.logger.Info("server started",
		logger.Int("port", a.cfg.Server.Port),
		logger.String("cache_backend", a.cfg.Cache.Backend),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", logger.Error(err))
		return err
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cache close error", logger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
