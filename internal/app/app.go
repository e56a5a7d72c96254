// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Server)

	// Persistence is optional: no backend means memory-only carts
	dbComponents := InitializeDatabase(cfg.Database, cfg.Redis)

	serviceComponents := InitializeServices(cfg, dbComponents)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config)
}
