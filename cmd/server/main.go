package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/swiftmart/checkout-api/internal/api"
	"github.com/swiftmart/checkout-api/internal/catalog"
	"github.com/swiftmart/checkout-api/internal/checkout"
	"github.com/swiftmart/checkout-api/internal/config"
	"github.com/swiftmart/checkout-api/internal/payment"
	"github.com/swiftmart/checkout-api/internal/repository"
	"github.com/swiftmart/checkout-api/internal/repository/memory"
	"github.com/swiftmart/checkout-api/internal/repository/postgres"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Select the order store
	repos := &repository.Repositories{}
	if cfg.UsePostgres() {
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repos.Orders = postgres.NewOrderRepository(db, logger)
		logger.Info("Using Postgres order store", zap.String("host", cfg.Database.Host))
	} else {
		repos.Orders = memory.NewOrderRepository()
		logger.Info("Using in-memory order store")
	}

	// Wire the checkout pipeline
	cat := catalog.Default()
	svc := checkout.NewService(
		cat,
		checkout.NewValidator(cat, cfg.Pricing.PriceTolerance),
		checkout.NewCalculator(cfg.Pricing),
		checkout.NewAssembler(),
		payment.NewSimulator(cfg.Payment, logger),
		repos,
		logger,
	)

	router := api.NewRouter(cfg, svc, repos, logger)

	logger.Info("Starting checkout API",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
