package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardapio/storefront-service/internal/catalog"
	"github.com/cardapio/storefront-service/internal/domain/dto"
	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/i18n"
	"github.com/cardapio/storefront-service/internal/metrics"
	"github.com/cardapio/storefront-service/internal/middleware"
	"github.com/cardapio/storefront-service/internal/service"
)

// CartHandler exposes the per-session cart state machine over HTTP.
type CartHandler struct {
	carts          *service.SessionCarts
	catalog        *catalog.Catalog
	loggingService service.LoggingService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts *service.SessionCarts, cat *catalog.Catalog, loggingService service.LoggingService) *CartHandler {
	return &CartHandler{carts: carts, catalog: cat, loggingService: loggingService}
}

func (h *CartHandler) store(c *gin.Context) *service.CartStore {
	return h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the cart
// @Description  Returns the session's cart with computed totals
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart contents"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewCartResponse(h.store(c).Snapshot()))
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add a product to the cart
// @Description  Adds a product selection; the same selection merges into one line with summed quantity
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body dto.AddItemRequest true "Product selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body or option"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      422 {object} dto.ErrorResponse "Product is priced on request"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogProductNotFound, nil)
		return
	}
	if !product.Purchasable() {
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyCatalogPriceOnRequest, nil)
		return
	}

	item, ok := h.buildLineItem(product, req)
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCatalogInvalidOption, nil)
		return
	}

	snap := h.store(c).AddItem(item)

	metrics.RecordCartOperation("add")
	middleware.AuditLog(h.loggingService, c, "cart_add", "Item added to cart", map[string]interface{}{
		"item_id":  item.ID,
		"quantity": item.Quantity,
	})
	builder.SuccessOK(dto.NewCartResponse(snap))
}

// buildLineItem resolves the priced selection for a product. Products
// with options require a valid option index; products without options
// must not send one.
func (h *CartHandler) buildLineItem(product model.Product, req *dto.AddItemRequest) (model.LineItem, bool) {
	var (
		unitPrice float64
		options   []model.ItemOption
	)

	switch {
	case product.HasOptions():
		if req.OptionIndex == nil || *req.OptionIndex >= len(product.Options) {
			return model.LineItem{}, false
		}
		opt := product.Options[*req.OptionIndex]
		unitPrice = opt.Price
		options = []model.ItemOption{{Label: "Tamanho", Value: opt.SizeLabel()}}
	case req.OptionIndex != nil:
		return model.LineItem{}, false
	default:
		unitPrice = *product.Price
	}

	return model.LineItem{
		ID:        model.LineItemID(product.ID, options),
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: unitPrice,
		Quantity:  req.Quantity,
		Options:   options,
		ImageURL:  product.ImageURL,
		Notes:     req.Notes,
	}, true
}

// UpdateItem handles PATCH /api/cart/items/:id requests.
//
// @Summary      Set a line quantity
// @Description  Sets the quantity of a cart line; zero removes the line. Unknown lines are a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Line item ID"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateQuantityRequest](c)
	if err != nil || req.Quantity == nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	id := c.Param("id")
	store := h.store(c)

	// Quantity zero is a remove at every call site.
	var snap model.CartSnapshot
	if *req.Quantity == 0 {
		snap = store.RemoveItem(id)
		metrics.RecordCartOperation("remove")
	} else {
		snap = store.UpdateQuantity(id, *req.Quantity)
		metrics.RecordCartOperation("update")
	}

	builder.SuccessOK(dto.NewCartResponse(snap))
}

// RemoveItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove a cart line
// @Description  Removes a line by ID. Removing an absent line is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Line item ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	snap := h.store(c).RemoveItem(c.Param("id"))
	metrics.RecordCartOperation("remove")
	NewResponseBuilder(c).SuccessOK(dto.NewCartResponse(snap))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Empty the cart
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Empty cart"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	snap := h.store(c).Clear()
	metrics.RecordCartOperation("clear")
	middleware.AuditLog(h.loggingService, c, "cart_clear", "Cart cleared", nil)
	NewResponseBuilder(c).SuccessOK(dto.NewCartResponse(snap))
}
