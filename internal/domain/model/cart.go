package model

import "strings"

// ItemOption is a selected product variant carried on a line item,
// e.g. {Label: "Tamanho", Value: "1.3 kg"}.
type ItemOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LineItem is one entry of a cart. Items are unique by ID; adding the
// same ID again merges quantities instead of appending.
type LineItem struct {
	ID        string       `json:"id" bson:"id"`
	ProductID string       `json:"product_id" bson:"product_id"`
	Name      string       `json:"name" bson:"name"`
	UnitPrice float64      `json:"unit_price" bson:"unit_price"`
	Quantity  int          `json:"quantity" bson:"quantity"`
	Options   []ItemOption `json:"options,omitempty" bson:"options,omitempty"`
	ImageURL  string       `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Notes     string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

// LineTotal returns unit price times quantity.
func (li LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// OptionValues returns the selected option values in declaration order.
func (li LineItem) OptionValues() []string {
	if len(li.Options) == 0 {
		return nil
	}
	values := make([]string, 0, len(li.Options))
	for _, o := range li.Options {
		values = append(values, o.Value)
	}
	return values
}

// LineItemID derives the cart identity key for a product selection.
// The selected option is encoded into the key so that two different
// variants of the same product never merge into one line.
func LineItemID(productID string, options []ItemOption) string {
	if len(options) == 0 {
		return productID
	}
	parts := make([]string, 0, len(options))
	for _, o := range options {
		parts = append(parts, optionSlug(o.Value))
	}
	return productID + "#" + strings.Join(parts, "-")
}

func optionSlug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// CartSnapshot is an immutable view of a cart emitted after every
// mutation. Totals are computed at snapshot time. Revision orders
// snapshots of one cart; it is internal and never serialized.
type CartSnapshot struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	Revision   uint64     `json:"-" bson:"-"`
}

// NewCartSnapshot copies the item list and computes totals.
func NewCartSnapshot(items []LineItem) CartSnapshot {
	snap := CartSnapshot{Items: make([]LineItem, len(items))}
	copy(snap.Items, items)
	for _, li := range snap.Items {
		snap.TotalItems += li.Quantity
		snap.TotalPrice += li.LineTotal()
	}
	return snap
}

// Empty reports whether the snapshot has no items.
func (s CartSnapshot) Empty() bool {
	return len(s.Items) == 0
}
