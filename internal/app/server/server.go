package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gytax/internal/domain/payroll"
	"gytax/internal/domain/ratetable"
	"gytax/internal/domain/vehicle"
	"gytax/internal/platform/config"
	"gytax/internal/platform/db"
	"gytax/internal/platform/jobs"
	"gytax/internal/platform/metrics"
	payrollhandler "gytax/internal/transport/http/handlers/payroll"
	ratetableshandler "gytax/internal/transport/http/handlers/ratetables"
	vehiclehandler "gytax/internal/transport/http/handlers/vehicle"
	"gytax/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Log     *zap.Logger
	Rates   *ratetable.Registry
	Metrics *metrics.Collector
	DB      *db.Pool
	Jobs    *jobs.Service
	Watcher *ratetable.Watcher
	Router  http.Handler
}

// New wires the application. Rate tables are layered: the built-in 2026
// table first, then files from RateTablesDir, then active database rows,
// each replacing earlier sets for the same fiscal year.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	app := &App{Config: cfg, Log: log, Metrics: metrics.New()}

	rates, err := ratetable.NewRegistry(cfg.DefaultFiscalYear, ratetable.Guyana2026())
	if err != nil {
		return nil, err
	}
	app.Rates = rates

	if dir := strings.TrimSpace(cfg.RateTablesDir); dir != "" {
		if err := app.loadDir(dir); err != nil {
			return nil, err
		}
		if cfg.RateTablesWatch {
			app.Watcher = ratetable.NewWatcher(dir, rates, log.Named("ratetables"), app.Metrics.ObserveReload)
		}
	}

	if cfg.DatabaseURL != "" {
		if err := app.openDatabase(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}

	if cfg.DefaultFiscalYear != 0 && !rates.Has(cfg.DefaultFiscalYear) {
		app.Close()
		return nil, errors.Errorf("default fiscal year %d has no rate table", cfg.DefaultFiscalYear)
	}

	app.Router = app.routes()
	return app, nil
}

func (a *App) loadDir(dir string) error {
	sets, err := ratetable.LoadDir(dir)
	a.Metrics.ObserveReload("file", err)
	if err != nil {
		return err
	}
	for _, set := range sets {
		if err := a.Rates.Put(set); err != nil {
			return err
		}
		a.Log.Info("rate table loaded", zap.String("source", "file"), zap.Int("fiscal_year", set.FiscalYear))
	}
	return nil
}

func (a *App) openDatabase(ctx context.Context) error {
	pool, err := db.Connect(ctx, a.Config.DatabaseURL)
	if err != nil {
		return err
	}
	a.DB = pool

	if a.Config.RunMigrations {
		if err := db.Migrate(ctx, pool, a.Config.MigrationsDir); err != nil {
			return err
		}
		inserted, err := db.Seed(ctx, pool, ratetable.Guyana2026())
		if err != nil {
			return err
		}
		if inserted > 0 {
			a.Log.Info("seeded built-in rate table", zap.Int("rows", inserted))
		}
	}

	a.Jobs = jobs.New(ratetable.NewStore(pool), a.Rates, a.Config.RateTableRefreshInterval, a.Metrics.ObserveReload, a.Log.Named("jobs"))
	_, err = a.Jobs.RunNow(ctx, jobs.JobRateTableRefresh, a.Jobs.RefreshRateTables)
	return err
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Log.Named("http")))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(a.Metrics))
	}
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := a.Rates.Get(0); err != nil {
			http.Error(w, "rate tables not ready", http.StatusServiceUnavailable)
			return
		}
		if a.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := a.DB.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", a.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithLogger(a.Log.Named("ratelimit"))))

		payrollService := payroll.NewService(a.Rates, a.Log.Named("payroll"), a.Metrics)
		payrollhandler.NewHandler(payrollService, a.Rates, a.Log).RegisterRoutes(r)

		vehicleService := vehicle.NewService(a.Rates, a.Log.Named("vehicle"), a.Metrics)
		vehiclehandler.NewHandler(vehicleService, a.Rates, a.Log).RegisterRoutes(r)

		ratetableshandler.NewHandler(a.Rates, a.Log).RegisterRoutes(r)
	})

	return router
}

// Run serves HTTP and the background workers until ctx is cancelled, then
// shuts the server down within ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("gytax server listening", zap.String("addr", a.Config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve http")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if a.Jobs != nil {
		g.Go(func() error { return a.Jobs.Run(ctx) })
	}
	if a.Watcher != nil {
		g.Go(func() error { return a.Watcher.Run(ctx) })
	}
	return g.Wait()
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
