package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	auditStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/config"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/database"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	handoverStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover/store"
	fuelHttp "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http"
	handoverHandler "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/handover"
	integrityHandler "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/integrity"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/middleware"
	settlementHandler "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/settlement"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/identity"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity"
	integrityStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/logging"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/metrics"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
	settlementStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
	varianceStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance/store"
)

const limiterCleanupSchedule = "@every 10m"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := cfg.ValidateAuth(); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(os.Stderr, cfg.App.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	db, err := database.New(cfg.ConnectionString(), database.Options{
		MaxOpenConns: cfg.DB.MaxConns,
		MaxIdleConns: cfg.DB.MaxIdle,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	thresholds, err := cfg.Thresholds()
	if err != nil {
		return err
	}

	tag, err := cfg.Language()
	if err != nil {
		return err
	}

	recorder := metrics.New()

	dispatcher := audit.NewDispatcher(auditStore.New(db), cfg.Audit.QueueSize)
	recorder.WatchDropped(dispatcher.Dropped)

	var (
		sink   = audit.Multi{dispatcher, recorder}
		policy = variance.NewPolicy(thresholds, varianceStore.New(db))
		notes  = variance.NewNoteFormatter(tag)
	)

	var (
		handoverService   = handover.NewService(handoverStore.New(db), identity.New(db), policy, notes, sink)
		settlementService = settlement.NewService(settlementStore.New(db), policy, sink)
		integrityService  = integrity.NewService(integrityStore.New(db), recorder)
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	scheduler := cron.New()

	if _, err := integrityService.Schedule(scheduler, cfg.Integrity.Schedule); err != nil {
		return err
	}

	if _, err := scheduler.AddFunc(limiterCleanupSchedule, func() {
		slog.Debug("rate limiters pruned", "active", limiter.Cleanup())
	}); err != nil {
		return fmt.Errorf("scheduling limiter cleanup: %w", err)
	}

	router := fuelHttp.New(
		fuelHttp.Options{
			Timeout:        cfg.Server.Timeout,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Auth:           middleware.NewAuthenticator(cfg.Auth.JWTSecret),
			RateLimit:      limiter,
			Metrics:        recorder.Handler(),
		},
		handoverHandler.NewHandler(handoverService),
		settlementHandler.NewHandler(settlementService),
		integrityHandler.NewHandler(integrityService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start()

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	if err := stopScheduler(shutdownCtx, scheduler); err != nil {
		slog.Warn("scheduled jobs still running at shutdown", "error", err)
	}

	if err := dispatcher.Close(shutdownCtx); err != nil {
		slog.Error("failed to flush audit events", "error", err)
	}

	return nil
}

// stopScheduler stops new runs and waits for running jobs until ctx is done.
func stopScheduler(ctx context.Context, c *cron.Cron) error {
	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
