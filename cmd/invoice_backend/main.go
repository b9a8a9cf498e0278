package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/core/services"
	"github.com/SscSPs/truck_invoice_app/internal/handlers"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/SscSPs/truck_invoice_app/internal/platform/config"
	"github.com/SscSPs/truck_invoice_app/internal/repositories/database/mysql"
	"github.com/SscSPs/truck_invoice_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/truck_invoice_app/internal/utils"
	"github.com/SscSPs/truck_invoice_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Truck Invoice API
// @version 1.0
// @description Monthly trip invoices, dashboard reporting and document exports for a trucking fleet.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Amounts are JSON numbers for the dashboard frontend
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos, ping, closeDB, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !cfg.EnableDBCheck {
		ping = nil
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient, ping)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down server", slog.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// openStore connects to the configured database, applies migrations when
// enabled and returns the repositories with a ping and a close function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, handlers.PingFunc, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err := database.NewMySQLDB(ctx, cfg.DatabaseURL, cfg.Timezone)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		if cfg.RunMigrations {
			logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
			if err := database.MigrateMySQL(db, cfg.MigrationsPath); err != nil {
				database.CloseMySQLDB(db)
				return portsrepo.RepositoryProvider{}, nil, nil, err
			}
		}
		return mysql.NewRepositoryProvider(db), pingSQL(db), func() { database.CloseMySQLDB(db) }, nil
	default:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.Timezone)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		if cfg.RunMigrations {
			logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
			if err := database.MigratePostgres(pool, cfg.MigrationsPath); err != nil {
				database.ClosePgxPool(pool)
				return portsrepo.RepositoryProvider{}, nil, nil, err
			}
		}
		return pgsql.NewRepositoryProvider(pool), pool.Ping, func() { database.ClosePgxPool(pool) }, nil
	}
}

func pingSQL(db *sql.DB) handlers.PingFunc {
	return db.PingContext
}
