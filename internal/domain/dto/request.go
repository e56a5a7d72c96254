// Package dto defines Data Transfer Objects for HTTP request and
// response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

// AddItemRequest is the JSON body for adding a product to the cart.
//
// OptionIndex selects a product variant by position and is required
// for products sold in multiple sizes.
type AddItemRequest struct {
	// ProductID is the catalog slug of the product.
	ProductID string `json:"product_id" binding:"required" example:"taca-tropical"`
	// OptionIndex selects a variant for products with options.
	OptionIndex *int `json:"option_index,omitempty" example:"0"`
	// Quantity to add. Must be at least 1.
	Quantity int `json:"quantity" binding:"required,gte=1" example:"2" minimum:"1"`
	// Notes are free-text item remarks, e.g. a chosen flavor.
	Notes string `json:"notes,omitempty" example:"sabor cenoura"`
} // @name AddItemRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidQuantity is returned when quantity is below 1.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be at least 1",
	}
	// ErrInvalidOptionIndex is returned when option_index is negative.
	ErrInvalidOptionIndex = &ValidationError{
		Field:   "option_index",
		Message: "must not be negative",
	}
)

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if r.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if r.OptionIndex != nil && *r.OptionIndex < 0 {
		return ErrInvalidOptionIndex
	}
	return nil
}

// UpdateQuantityRequest is the JSON body for setting a line quantity.
// Zero means remove the line.
type UpdateQuantityRequest struct {
	// Quantity is the new amount. Zero removes the item.
	Quantity *int `json:"quantity" binding:"required,gte=0" example:"3" minimum:"0"`
} // @name UpdateQuantityRequest

// CheckoutRequest is the JSON body for building an order draft. Every
// field arrives as text; all parsing and rule checking happens in the
// draft builder so one submission reports every unmet rule at once.
type CheckoutRequest struct {
	// CustomerName is the customer's display name.
	CustomerName string `json:"customer_name" example:"Maria Silva"`
	// CustomerPhone is the customer's WhatsApp number.
	CustomerPhone string `json:"customer_phone" example:"(91) 98888-7777"`
	// CustomerAddress is required for delivery orders.
	CustomerAddress string `json:"customer_address,omitempty" example:"Rua das Flores, 123"`
	// Notes are free-text order remarks.
	Notes string `json:"notes,omitempty"`
	// DeliveryType is "entrega" or "retirada".
	DeliveryType string `json:"delivery_type" example:"entrega"`
	// DeliveryFee is the courier fee as entered, decimal comma allowed.
	DeliveryFee string `json:"delivery_fee,omitempty" example:"10,50"`
	// ScheduledAt is the requested slot, datetime-local or RFC3339.
	ScheduledAt string `json:"scheduled_at" example:"2026-12-20T10:30"`
} // @name CheckoutRequest
