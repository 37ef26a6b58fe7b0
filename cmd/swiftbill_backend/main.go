package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/swiftbill/invoicing_app/internal/adapters/database/pgsql"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/core/services"
	"github.com/swiftbill/invoicing_app/internal/dto"
	"github.com/swiftbill/invoicing_app/internal/handlers"
	"github.com/swiftbill/invoicing_app/internal/middleware"
	"github.com/swiftbill/invoicing_app/pkg/config"
	"github.com/swiftbill/invoicing_app/pkg/database"
)

// @title SwiftBill Backend API
// @version 1.0
// @description Invoicing backend: clients, invoices, estimates and business profile.

// @host localhost:8080
// @BasePath /
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
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dto.RegisterCustomValidators()

	handlers.RegisterRoutes(r, cfg, buildServices(dbPool))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories into the service container consumed by the
// HTTP handlers.
func buildServices(dbPool *pgxpool.Pool) *portssvc.ServiceContainer {
	clientRepo := pgsql.NewPgxClientRepository(dbPool)
	invoiceRepo := pgsql.NewPgxInvoiceRepository(dbPool)
	estimateRepo := pgsql.NewPgxEstimateRepository(dbPool)
	profileRepo := pgsql.NewPgxBusinessProfileRepository(dbPool)

	return &portssvc.ServiceContainer{
		Client:          services.NewClientService(clientRepo),
		Invoice:         services.NewInvoiceService(invoiceRepo),
		Estimate:        services.NewEstimateService(estimateRepo, invoiceRepo),
		BusinessProfile: services.NewBusinessProfileService(profileRepo),
		Dashboard:       services.NewDashboardService(invoiceRepo),
	}
}

// runMigrations applies all pending database migrations using a temporary
// database/sql connection via the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
