package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/timetracker-backend/internal/config"
	"github.com/heartmarshall/timetracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetracker-backend/internal/transport/rest"
)

// Run is the HTTP server entry point. It loads configuration, builds the
// engine, serves the REST API and shuts down gracefully on SIGINT/SIGTERM
// or when ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Tracker.Location.String()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	engine, err := NewEngine(ctx, cfg, logger, clock)
	if err != nil {
		return err
	}
	defer engine.Close()

	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, engine, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler builds the router and wraps it in the middleware stack:
// Recovery, RequestID, Logger, CORS, RateLimit (outermost first).
func NewHandler(cfg *config.Config, logger *slog.Logger, engine *Engine, limiter *middleware.RateLimiter) http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(engine.Pool, BuildVersion(), cfg.Tracker.Location),
		TimeEntry: rest.NewTimeEntryHandler(engine.TimeEntries, logger),
		Summary:   rest.NewSummaryHandler(engine.TimeEntries, logger),
		Project:   rest.NewProjectHandler(engine.Projects, logger),
		TaskName:  rest.NewTaskNameHandler(engine.TaskNames, logger),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(router)
}
