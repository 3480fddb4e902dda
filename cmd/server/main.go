package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/coprra/price-compare/configs"
	"github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/coprra/price-compare/internal/infrastructure/email"
	"github.com/coprra/price-compare/internal/infrastructure/events"
	"github.com/coprra/price-compare/internal/infrastructure/health"
	"github.com/coprra/price-compare/internal/infrastructure/httpserver"
	"github.com/coprra/price-compare/internal/infrastructure/memcache"
	infraRedis "github.com/coprra/price-compare/internal/infrastructure/redis"
	"github.com/coprra/price-compare/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting price comparison service...")

	// Initialize database (apply pool settings from config)
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Pick the cache backend. Redis gets tag-indexed invalidation; the
	// in-memory fallback still supports tags for single-node deployments.
	var backend ports.Cache
	healthCheckers := []ports.HealthChecker{health.Postgres(database)}
	switch cfg.Cache.Driver {
	case "memory":
		backend = memcache.New()
		logger.Info("Using in-memory comparison cache")
	default:
		redisClient, err := infraRedis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		backend = infraRedis.NewTaggedRedisCache(redisClient, cfg.Cache.KeyPrefix)
		healthCheckers = append(healthCheckers, health.Redis(redisClient))
		logger.Info("Connected to Redis successfully")
	}

	comparisonCache, err := services.NewComparisonCache(backend, logger)
	if err != nil {
		logger.Fatal("Failed to initialize comparison cache:", err)
	}

	// Catalog event dispatch: repositories publish, the cache observer reacts.
	dispatcher := events.NewDispatcher(logger)
	dispatcher.Subscribe(services.NewCacheInvalidationObserver(comparisonCache, logger))

	// Initialize repositories
	productRepo := repositories.NewProductRepository(database, dispatcher, logger)
	categoryRepo := repositories.NewCategoryRepository(database, dispatcher)
	offerRepo := repositories.NewOfferRepository(database)
	currencyRepo := repositories.NewCurrencyRepository(database)
	alertRepo := repositories.NewAlertRepository(database)

	// Wire services
	comparisonConfig := &services.ComparisonConfig{
		DefaultCurrency:  cfg.Comparison.DefaultCurrency,
		DefaultMaxStores: cfg.Comparison.DefaultMaxStores,
		CacheTTL:         cfg.Cache.TTL,
	}
	comparisonService := services.NewPriceComparisonService(offerRepo, currencyRepo, comparisonCache, comparisonConfig, logger)

	emailConfig := &email.EmailConfig{
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		CompanyName:    cfg.Email.CompanyName,
	}
	mailer, err := email.NewEmailService(emailConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service:", err)
	}

	currencies, err := currencyRepo.List(context.Background())
	if err != nil {
		logger.Fatal("Failed to load currency snapshot:", err)
	}
	converter := services.NewConverter(currencies)

	alertService := services.NewPriceAlertService(alertRepo, productRepo, comparisonService, converter, mailer, cfg.Comparison.DefaultCurrency, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	deps := httpserver.ServerDeps{
		ComparisonService: comparisonService,
		AlertService:      alertService,
		ProductRepo:       productRepo,
		CategoryRepo:      categoryRepo,
		CurrencyRepo:      currencyRepo,
		HealthCheckers:    healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
