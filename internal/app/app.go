package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fieldops/workboard-backend/internal/adapter/postgres"
	"github.com/fieldops/workboard-backend/internal/adapter/postgres/modlog"
	"github.com/fieldops/workboard-backend/internal/adapter/postgres/workorder"
	"github.com/fieldops/workboard-backend/internal/config"
	"github.com/fieldops/workboard-backend/internal/service/classify"
	"github.com/fieldops/workboard-backend/internal/service/modtrack"
	"github.com/fieldops/workboard-backend/internal/service/notify"
	"github.com/fieldops/workboard-backend/internal/transport/middleware"
	"github.com/fieldops/workboard-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, applies migrations, wires the services and the HTTP
// server, and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Classifier.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	clock := clockwork.NewRealClock()

	orderRepo := workorder.New(pool, cfg.Classifier.Location)
	modlogRepo := modlog.New(pool)

	classifier := classify.NewService(logger, orderRepo, modlogRepo, clock, cfg.Classifier)
	notifier := notify.NewService(logger, orderRepo, clock, cfg.Notifications)
	tracker := modtrack.NewTracker(logger, modlogRepo, clock)

	snapshot := &classify.SnapshotHolder{}
	poller := NewPoller(logger, classifier, snapshot, clock, cfg.Classifier.TickInterval)
	go poller.Run(ctx)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	boards := rest.NewBoardHandler(classifier, snapshot, logger)
	mux.HandleFunc("GET /api/buckets", boards.Buckets)
	mux.HandleFunc("GET /api/boards", boards.Boards)

	notifications := rest.NewNotificationHandler(notifier, logger)
	mux.HandleFunc("GET /api/notifications", notifications.Summary)

	history := rest.NewHistoryHandler(tracker, logger)
	mux.HandleFunc("GET /api/workorders/{id}/history", history.List)
	mux.HandleFunc("POST /api/workorders/{id}/history/{eventID}/read", history.MarkRead)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(300),
	)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve after shutdown: %w", err)
		}
		return nil
	}
}
