package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/easyfx/fx_backend/internal/core/services"
	"github.com/easyfx/fx_backend/internal/handlers"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/easyfx/fx_backend/internal/platform/ratesapi"
	"github.com/easyfx/fx_backend/internal/repositories/database/pgsql"
	"github.com/easyfx/fx_backend/pkg/config"
	"github.com/easyfx/fx_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// refreshCycleTimeout bounds one scheduled refresh cycle end to end; each
// provider call inside it has its own shorter timeout.
const refreshCycleTimeout = 5 * time.Minute

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	provider := ratesapi.NewClient(cfg.ExchangeRatesAPIURL, cfg.ExchangeRatesKey, cfg.ProviderTimeout)
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, provider)

	handlers.RegisterRoutes(r, cfg, serviceContainer, dbPool, provider)

	// Scheduled refresh. The staleness gate inside RefreshAll makes a frequent
	// tick safe; only a stale store triggers provider calls.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.RefreshCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshCycleTimeout)
		defer cancel()
		if _, err := serviceContainer.Refresher.RefreshAll(ctx); err != nil {
			logger.Error("Scheduled rate refresh failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule rate refresh", slog.String("cron_spec", cfg.RefreshCronSpec), slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()
	logger.Info("Rate refresh scheduled", slog.String("cron_spec", cfg.RefreshCronSpec))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx/v5/stdlib driver to be compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
