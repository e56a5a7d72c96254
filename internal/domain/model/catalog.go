// Package model contains the domain entities of the storefront.
package model

import "strconv"

// ProductOption is a purchasable variant of a product. Exactly one of
// WeightKg or VolumeL may be set; when neither is set the product has a
// single unnamed size.
type ProductOption struct {
	Price    float64  `json:"price"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	VolumeL  *float64 `json:"volume_l,omitempty"`
}

// SizeLabel returns the human-readable size of the option, e.g.
// "1.3 kg", "2.4 L" or "Tamanho único".
func (o ProductOption) SizeLabel() string {
	switch {
	case o.WeightKg != nil:
		return formatMeasure(*o.WeightKg) + " kg"
	case o.VolumeL != nil:
		return formatMeasure(*o.VolumeL) + " L"
	default:
		return "Tamanho único"
	}
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Product is a catalog entry. A product carries either a base price,
// a non-empty option list, or neither (price on request, in which case
// it cannot be added to a cart).
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Restrictions []string        `json:"restrictions,omitempty"`
	Flavors      []string        `json:"flavors,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Notes        []string        `json:"notes,omitempty"`
	ReadyToShip  bool            `json:"ready_to_ship,omitempty"`
	LeadDays     int             `json:"lead_days,omitempty"`
	LeadHours    int             `json:"lead_hours,omitempty"`
	WeightGrams  int             `json:"weight_grams,omitempty"`
	RingCm       int             `json:"ring_cm,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	Options      []ProductOption `json:"options,omitempty"`
}

// HasOptions reports whether the product is sold in multiple variants.
func (p Product) HasOptions() bool {
	return len(p.Options) > 0
}

// Purchasable reports whether the product can be added to a cart.
// Products with neither a price nor options are quoted on request.
func (p Product) Purchasable() bool {
	return p.Price != nil || p.HasOptions()
}

// Category groups products in display order.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
