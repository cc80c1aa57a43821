package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	depositUseCase "github.com/dropme/rvm-backend/internal/domain/usecase/deposit"
	reportingUseCase "github.com/dropme/rvm-backend/internal/domain/usecase/reporting"

	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/handler"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/routes"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/database"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/logger"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/dropme/rvm-backend/internal/infrastructure/adapter/time"
	"github.com/dropme/rvm-backend/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Schema migration and reference data, retried on transient faults
	err = database.RetryOnTransientError(
		context.Background(),
		database.DefaultRetryConfig(),
		dbManager.Migrate,
		appLogger,
	)
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	materialRepo := repository.NewMaterialRepository(db, appLogger)
	machineRepo := repository.NewMachineRepository(db, appLogger)
	depositRepo := repository.NewDepositRepository(db, appLogger)
	statsRepo := repository.NewStatisticsRepository(db, tp, appLogger)

	// Unit of work for the deposit transaction
	uow := database.NewUnitOfWork(db, appLogger, tp)

	// Use cases
	depositService := depositUseCase.NewDepositService(
		uow, materialRepo, machineRepo, depositRepo, tp, appLogger,
		depositUseCase.Options{
			MaxWeightKg:       cfg.Deposit.MaxWeightKg,
			DuplicateWindow:   cfg.Deposit.DuplicateWindow,
			DailyDepositLimit: cfg.Deposit.DailyDepositLimit,
		},
	)
	reportingService := reportingUseCase.NewReportingService(depositRepo, statsRepo, appLogger)
	catalogService := reportingUseCase.NewCatalogService(materialRepo, machineRepo, appLogger)

	// API handlers
	depositHandler := handler.NewDepositHandler(depositService, appLogger)
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	reportingHandler := handler.NewReportingHandler(reportingService, appLogger)
	adminHandler := handler.NewAdminHandler(reportingService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, catalogService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, depositHandler, catalogHandler, reportingHandler, adminHandler, healthHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" && os.Getenv("RVM_DB_HOST") == "" {
		missingConfigs = append(missingConfigs, "database.host (or RVM_DB_HOST)")
	}
	if cfg.Database.Username == "" && os.Getenv("RVM_DB_USERNAME") == "" {
		missingConfigs = append(missingConfigs, "database.username (or RVM_DB_USERNAME)")
	}
	if cfg.Database.Password == "" && os.Getenv("RVM_DB_PASSWORD") == "" {
		missingConfigs = append(missingConfigs, "database.password (or RVM_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" && os.Getenv("RVM_DB_NAME") == "" {
		missingConfigs = append(missingConfigs, "database.database (or RVM_DB_NAME)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
