// Package app provides service initialization.
package app

import (
	"github.com/cardapio/storefront-service/config"
	"github.com/cardapio/storefront-service/internal/catalog"
	"github.com/cardapio/storefront-service/internal/repository"
	"github.com/cardapio/storefront-service/internal/service"
	"github.com/cardapio/storefront-service/internal/whatsapp"
)

// ServiceComponents holds business-logic components.
type ServiceComponents struct {
	Catalog *catalog.Catalog
	Carts   *service.SessionCarts
	Drafts  *service.DraftBuilder
	Links   *whatsapp.LinkBuilder
}

// InitializeServices wires the catalog, per-session carts, checkout
// draft builder, and WhatsApp link builder.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var cartsRepo repository.CartRepositoryInterface
	if dbComponents != nil {
		cartsRepo = dbComponents.CartsRepo
	}
	mirror := service.NewCartMirror(cartsRepo, 0)

	rules := service.ScheduleRules{
		MinLead:             cfg.Store.MinLeadTime,
		OpeningHour:         cfg.Store.OpeningHour,
		ClosingHour:         cfg.Store.ClosingHour,
		SaturdayClosingHour: cfg.Store.SaturdayClosingHour,
		Location:            cfg.Store.Timezone,
	}

	return &ServiceComponents{
		Catalog: catalog.MustLoad(),
		Carts:   service.NewSessionCarts(mirror, cfg.Session.TTL),
		Drafts:  service.NewDraftBuilder(rules),
		Links:   whatsapp.NewLinkBuilder(cfg.Store.WhatsAppNumber),
	}
}
