package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardapio/storefront-service/internal/domain/dto"
	"github.com/cardapio/storefront-service/internal/i18n"
	"github.com/cardapio/storefront-service/internal/metrics"
	"github.com/cardapio/storefront-service/internal/middleware"
	"github.com/cardapio/storefront-service/internal/service"
	"github.com/cardapio/storefront-service/internal/whatsapp"
)

// CheckoutHandler validates checkout forms and hands finished orders
// off as WhatsApp deep links.
type CheckoutHandler struct {
	carts          *service.SessionCarts
	drafts         *service.DraftBuilder
	links          *whatsapp.LinkBuilder
	loggingService service.LoggingService
}

// NewCheckoutHandler creates a new CheckoutHandler instance.
func NewCheckoutHandler(carts *service.SessionCarts, drafts *service.DraftBuilder, links *whatsapp.LinkBuilder, loggingService service.LoggingService) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, drafts: drafts, links: links, loggingService: loggingService}
}

func checkoutForm(req *dto.CheckoutRequest) service.CheckoutForm {
	return service.CheckoutForm{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Notes:           req.Notes,
		DeliveryType:    req.DeliveryType,
		DeliveryFee:     req.DeliveryFee,
		ScheduledAt:     req.ScheduledAt,
	}
}

func translateFieldErrors(c *gin.Context, errs []service.FieldError) []dto.FieldErrorResponse {
	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()

	out := make([]dto.FieldErrorResponse, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dto.FieldErrorResponse{
			Field:   fe.Field,
			Message: translator.Translate(locale, fe.Key),
		})
	}
	return out
}

func fieldErrorDetails(c *gin.Context, errs []service.FieldError) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range translateFieldErrors(c, errs) {
		details[fe.Field] = fe.Message
	}
	return details
}

// Validate handles POST /api/checkout/validate requests.
//
// @Summary      Validate the checkout form
// @Description  Reports whether the current cart and form are submittable, with one error per unmet rule
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "Checkout form"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutValidationResponse} "Validation result"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/checkout/validate [post]
func (h *CheckoutHandler) Validate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	snap := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c)).Snapshot()
	errs := h.drafts.Validate(snap, checkoutForm(req))

	builder.SuccessOK(dto.CheckoutValidationResponse{
		Submittable: len(errs) == 0,
		Errors:      translateFieldErrors(c, errs),
	})
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Build the order and its WhatsApp hand-off
// @Description  Validates the form against the cart, builds an immutable order draft, renders the message, and returns the wa.me deep link
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "Checkout form"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Order draft with deep link"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      422 {object} dto.ErrorResponse "Validation failed, details map fields to messages"
// @Failure      503 {object} dto.ErrorResponse "Destination number not configured"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if !h.links.Enabled() {
		metrics.RecordCheckoutAttempt("disabled")
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCheckoutDisabled, nil)
		return
	}

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	snap := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c)).Snapshot()
	draft, errs := h.drafts.Build(snap, checkoutForm(req))
	if len(errs) > 0 {
		metrics.RecordCheckoutAttempt("rejected")
		for _, fe := range errs {
			metrics.RecordCheckoutFieldFailure(fe.Field)
		}
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidRequest, fieldErrorDetails(c, errs), nil)
		return
	}

	link, err := h.links.OrderLink(draft)
	if err != nil {
		metrics.RecordCheckoutAttempt("disabled")
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCheckoutDisabled, err)
		return
	}

	metrics.RecordCheckoutAttempt("success")
	metrics.RecordWhatsAppLinkBuilt()
	middleware.AuditLog(h.loggingService, c, "checkout", "Order draft built", map[string]interface{}{
		"order_id": draft.ID,
		"total":    draft.Total,
		"items":    len(draft.Items),
	})

	builder.SuccessOK(dto.CheckoutResponse{
		Order:       draft,
		Message:     whatsapp.BuildMessage(draft),
		WhatsAppURL: link,
	})
}
