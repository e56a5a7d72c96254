package dto

import (
	"net/http"
	"time"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnprocessable indicates a request that failed validation.
	ErrCodeUnprocessable = "unprocessable"
	// ErrCodeUnavailable indicates a disabled or unready feature.
	ErrCodeUnavailable = "unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"unprocessable"`
	Message string `json:"message,omitempty" example:"O carrinho está vazio"`
	// Details maps form fields to their translated validation message.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP
// status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the API view of a cart snapshot.
// @Description Cart contents with computed totals
type CartResponse struct {
	Items      []model.LineItem `json:"items"`
	TotalItems int              `json:"total_items" example:"3"`
	TotalPrice float64          `json:"total_price" example:"190.5"`
} // @name CartResponse

// NewCartResponse converts a snapshot. The item list is never null in
// the JSON output.
func NewCartResponse(snap model.CartSnapshot) CartResponse {
	items := snap.Items
	if items == nil {
		items = []model.LineItem{}
	}
	return CartResponse{
		Items:      items,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice,
	}
}

// FieldErrorResponse is one unmet checkout rule with its translated
// message.
type FieldErrorResponse struct {
	Field   string `json:"field" example:"customer_phone"`
	Message string `json:"message" example:"Informe um WhatsApp válido com DDD (10 ou 11 dígitos)"`
} // @name FieldErrorResponse

// CheckoutValidationResponse reports whether the form is submittable.
// @Description Incremental checkout form validation result
type CheckoutValidationResponse struct {
	Submittable bool                 `json:"submittable"`
	Errors      []FieldErrorResponse `json:"errors"`
} // @name CheckoutValidationResponse

// CheckoutResponse carries the built draft and its WhatsApp hand-off.
// @Description Completed checkout with rendered message and deep link
type CheckoutResponse struct {
	Order       *model.OrderDraft `json:"order"`
	Message     string            `json:"message"`
	WhatsAppURL string            `json:"whatsapp_url"`
} // @name CheckoutResponse
