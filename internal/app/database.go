// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/circuitbreaker"
	"github.com/cardapio/storefront-service/internal/middleware"
	"github.com/cardapio/storefront-service/internal/repository"
	"github.com/cardapio/storefront-service/internal/service"
)

// DatabaseComponents holds persistence-related components. The cart
// mirror backend is MongoDB when enabled, Redis otherwise; request log
// persistence requires MongoDB.
type DatabaseComponents struct {
	CartsRepo           repository.CartRepositoryInterface
	LoggingService      service.LoggingService
	CartsCircuitBreaker *circuitbreaker.CircuitBreaker
	Mongo               *repository.MongoDB
}

// InitializeDatabase connects the configured cart mirror backend.
// Returns nil when no backend is enabled or every connection fails;
// the service then runs memory-only.
func InitializeDatabase(dbCfg config.DatabaseConfig, redisCfg config.RedisConfig) *DatabaseComponents {
	if dbCfg.Enabled {
		if components := initializeMongo(dbCfg); components != nil {
			return components
		}
	}
	if redisCfg.Enabled {
		return initializeRedis(redisCfg)
	}
	return nil
}

func initializeMongo(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without cart mirror")
		return nil
	}
	log.Info().Msg("Connected to MongoDB")

	ctx := context.Background()
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}
	if err := db.SetCartsTTL(ctx, cfg.CartsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set carts TTL index (may already exist)")
	}

	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "mongodb-carts",
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		CoolDown:         cfg.CircuitBreakerCoolDown,
	})

	cartsRepo := repository.NewCartsRepositoryWithCircuitBreaker(
		repository.NewCartsRepository(db), cartsCB,
	)

	loggingService := service.NewLoggingService(repository.NewLogsRepository(db))
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		CartsRepo:           cartsRepo,
		LoggingService:      loggingService,
		CartsCircuitBreaker: cartsCB,
		Mongo:               db,
	}
}

func initializeRedis(cfg config.RedisConfig) *DatabaseComponents {
	client, err := repository.NewRedisClient(context.Background(), cfg.URL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis - continuing without cart mirror")
		return nil
	}
	log.Info().Msg("Connected to Redis")

	return &DatabaseComponents{
		CartsRepo: repository.NewRedisCartsRepository(client, cfg.TTL),
	}
}
