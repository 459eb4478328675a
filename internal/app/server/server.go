package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/attendance"
	"ems/internal/domain/auth"
	"ems/internal/domain/core"
	"ems/internal/domain/payroll"
	"ems/internal/domain/reports"
	"ems/internal/platform/config"
	"ems/internal/platform/db"
	"ems/internal/platform/metrics"
	attendancehandler "ems/internal/transport/http/handlers/attendance"
	authhandler "ems/internal/transport/http/handlers/auth"
	corehandler "ems/internal/transport/http/handlers/core"
	healthhandler "ems/internal/transport/http/handlers/health"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	reportshandler "ems/internal/transport/http/handlers/reports"
	"ems/internal/transport/http/middleware"
)

const authRateWindow = time.Minute

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

// New connects to the database, applies migrations and seed data as
// configured, and assembles the router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, false); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	app := &App{Config: cfg, DB: pool}
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}
	app.Router = app.routes()
	return app, nil
}

func (a *App) routes() http.Handler {
	tokens := auth.NewTokenIssuer(auth.TokenConfig{
		Secret:   a.Config.JWTSecret,
		Issuer:   a.Config.JWTIssuer,
		Audience: a.Config.JWTAudience,
		Expiry:   a.Config.TokenExpiry(),
	})

	authHandler := authhandler.NewHandler(auth.NewService(auth.NewStore(a.DB), tokens))
	coreHandler := corehandler.NewHandler(core.NewService(core.NewStore(a.DB)))
	attendanceHandler := attendancehandler.NewHandler(attendance.NewService(attendance.NewStore(a.DB)))
	payrollHandler := payrollhandler.NewHandler(payroll.NewService(payroll.NewStore(a.DB)))

	var recorder reportshandler.Recorder
	var snapshotter healthhandler.Snapshotter
	if a.Metrics != nil {
		recorder = a.Metrics
		snapshotter = a.Metrics
	}
	reportsHandler := reportshandler.NewHandler(reports.NewService(reports.NewStore(a.DB)), recorder)
	healthHandler := healthhandler.NewHandler(a.DB, snapshotter)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.Production()))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))

	healthHandler.RegisterMetrics(router)

	router.Route("/api", func(r chi.Router) {
		healthHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(a.Config.RateLimitPerMinute, authRateWindow))
			authHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			authHandler.RegisterProtectedRoutes(r)
			coreHandler.RegisterRoutes(r)
			attendanceHandler.RegisterRoutes(r)
			payrollHandler.RegisterRoutes(r)
			reportsHandler.RegisterRoutes(r)
		})
	})

	return router
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("ems server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", a.Config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
