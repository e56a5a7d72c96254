package model

import "time"

// DeliveryType selects how the order reaches the customer.
type DeliveryType string

const (
	// DeliveryPickup means the customer collects the order.
	DeliveryPickup DeliveryType = "retirada"
	// DeliveryCourier means the order is delivered to an address.
	DeliveryCourier DeliveryType = "entrega"
)

// Valid reports whether the value is a known delivery type.
func (d DeliveryType) Valid() bool {
	return d == DeliveryPickup || d == DeliveryCourier
}

// Label returns the customer-facing Portuguese label.
func (d DeliveryType) Label() string {
	if d == DeliveryCourier {
		return "Entrega"
	}
	return "Retirada"
}

// OrderDraft is the validated, immutable result of a checkout. Drafts
// are handed to the customer as a WhatsApp message and never persisted.
type OrderDraft struct {
	ID              string       `json:"id"`
	Items           []LineItem   `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	DeliveryFee     *float64     `json:"delivery_fee,omitempty"`
	Total           float64      `json:"total"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	ScheduledAt     time.Time    `json:"scheduled_at"`
	CreatedAt       time.Time    `json:"created_at"`
}
