// Package server wires configuration, feeds, reconciliation, and the HTTP
// surfaces into a runnable service.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fixturecal/internal/app"
	"fixturecal/internal/config"
	httpserver "fixturecal/internal/http"
	"fixturecal/internal/ics"
	"fixturecal/internal/logging"
	"fixturecal/internal/metrics"
	"fixturecal/internal/notify"
	"fixturecal/internal/poller"
	"fixturecal/internal/reconcile"
	"fixturecal/internal/state"
)

var metricsSetup = metrics.Setup

const notifyTimeout = 10 * time.Second

// Server owns the refresh loop and both HTTP listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	published     *PublishedCalendar
	runner        *app.Runner
	web           webServer
	metricsServer webServer
	poller        *poller.Poller
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from config.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	provider := buildProvider(cfg, logger)
	published := NewPublishedCalendar()

	runner := app.New(app.Config{
		Provider: provider,
		Reconciler: reconcile.New(reconcile.Config{
			TrackedTeam:   cfg.TrackedTeam,
			Location:      location,
			UIDPrefix:     cfg.UIDPrefix,
			UIDDomain:     cfg.UIDDomain,
			EventDuration: cfg.EventDuration,
		}),
		Builder: ics.NewBuilder(ics.Config{
			TrackedTeam:  cfg.TrackedTeam,
			CalendarName: cfg.CalendarName,
			Links:        cfg.Links,
		}),
		States:     state.NewFSStore(cfg.StatePath),
		Notifier:   notify.NewService(cfg.NtfyTopic, notifyTimeout),
		Sink:       published,
		Logger:     logger,
		Metrics:    recorder,
		OutputPath: cfg.OutputPath,
	})

	plr, err := poller.New(runner, logger, recorder, cfg.PollInterval, cfg.RefreshCron)
	if err != nil {
		return nil, err
	}

	httpSrv := buildWebServer(cfg, published, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		published:     published,
		runner:        runner,
		web:           httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildWebServer(cfg config.Config, published *PublishedCalendar, plr *poller.Poller, logger *slog.Logger, recorder *metrics.Recorder) webServer {
	var statusFn httpserver.StatusFunc
	if plr != nil {
		statusFn = plr.Status
	}

	handler := httpserver.NewHandler(published, statusFn, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return stdServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, webServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv webServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the refresh loop and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.web, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.web.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv webServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// RunOnce executes a single reconciliation pass without starting the HTTP
// servers or the refresh loop. Used for one-shot cron-style deployments.
func (s *Server) RunOnce(ctx context.Context) error {
	defer func() {
		if s.metricsStop != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
				s.logger.Warn("metrics shutdown failed", "error", err)
			}
		}
	}()
	return s.runner.RunOnce(ctx)
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.web.Handler()
}
