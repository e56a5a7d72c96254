package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// StoreRoutes bundles the storefront handlers into one route group.
type StoreRoutes struct {
	catalog  *CatalogHandler
	cart     *CartHandler
	checkout *CheckoutHandler
}

// NewStoreRoutes creates the storefront route group.
func NewStoreRoutes(catalog *CatalogHandler, cart *CartHandler, checkout *CheckoutHandler) *StoreRoutes {
	return &StoreRoutes{catalog: catalog, cart: cart, checkout: checkout}
}

// RegisterRoutes registers catalog, cart, and checkout routes.
func (r *StoreRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/catalog", r.catalog.GetCatalog)
	rg.GET("/catalog/:category", r.catalog.GetCategory)
	rg.GET("/products/:slug", r.catalog.GetProduct)

	rg.GET("/cart", r.cart.GetCart)
	rg.DELETE("/cart", r.cart.ClearCart)
	rg.POST("/cart/items", r.cart.AddItem)
	rg.PATCH("/cart/items/:id", r.cart.UpdateItem)
	rg.DELETE("/cart/items/:id", r.cart.RemoveItem)

	rg.POST("/checkout", r.checkout.Checkout)
	rg.POST("/checkout/validate", r.checkout.Validate)
}
