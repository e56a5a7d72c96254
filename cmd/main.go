// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     Digital menu storefront: static catalog, session carts,
// @description     checkout validation, and WhatsApp order hand-off.
//
// @contact.name   API Support
// @contact.url    https://github.com/cardapio/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Static product catalog
//
// @tag.name        Cart
// @tag.description Per-session shopping cart
//
// @tag.name        Checkout
// @tag.description Order validation and WhatsApp hand-off
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/cardapio/storefront-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
