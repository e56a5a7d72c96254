// Package app provides logger initialization.
package app

import (
	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from server configuration.
func InitializeLogger(cfg config.ServerConfig) {
	logger.Init(cfg.LogLevel, cfg.LogPretty)
}
