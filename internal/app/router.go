// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/http"
	"github.com/cardapio/storefront-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.StoreRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	routes := http.NewStoreRoutes(
		http.NewCatalogHandler(services.Catalog),
		http.NewCartHandler(services.Carts, services.Catalog, loggingService),
		http.NewCheckoutHandler(services.Carts, services.Drafts, services.Links, loggingService),
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		if dbComponents.Mongo != nil {
			mongo := dbComponents.Mongo
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return mongo.HealthCheck(ctx)
			}))
		}
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		SessionMaxAge:  cfg.Session.CookieMaxAge,
		RequestTimeout: cfg.Server.RequestTimeout,
		LoggingService: loggingService,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
