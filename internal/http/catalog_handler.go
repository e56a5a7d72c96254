package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardapio/storefront-service/internal/catalog"
	"github.com/cardapio/storefront-service/internal/i18n"
)

// CatalogHandler serves the static product catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      List the full catalog
// @Description  Returns every category with its products in display order
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Ordered categories with products"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(gin.H{
		"categories": h.catalog.Categories(),
	})
}

// GetCategory handles GET /api/catalog/:category requests.
//
// @Summary      Get one category
// @Description  Returns a category and its products by category ID
// @Tags         Catalog
// @Produce      json
// @Param        category path string true "Category ID" example("tacas-natalinas")
// @Success      200 {object} dto.SuccessResponse "Category with products"
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Router       /api/catalog/{category} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category, ok := h.catalog.Category(c.Param("category"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogCategoryNotFound, nil)
		return
	}
	builder.SuccessOK(category)
}

// GetProduct handles GET /api/products/:slug requests.
//
// @Summary      Get one product
// @Description  Returns a product by its slug
// @Tags         Catalog
// @Produce      json
// @Param        slug path string true "Product slug" example("torta-bulgara")
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, ok := h.catalog.Product(c.Param("slug"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogProductNotFound, nil)
		return
	}
	builder.SuccessOK(product)
}
