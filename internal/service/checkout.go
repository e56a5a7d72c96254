package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/i18n"
	"github.com/cardapio/storefront-service/internal/money"
)

// CheckoutForm is the raw customer input. Everything arrives as text;
// the builder owns all parsing and trimming.
type CheckoutForm struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Notes           string
	DeliveryType    string
	DeliveryFee     string
	ScheduledAt     string
}

// FieldError ties one unmet validation rule to a form field. Key is an
// i18n message key.
type FieldError struct {
	Field string `json:"field"`
	Key   string `json:"key"`
}

// Error satisfies the error interface for logging.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Key
}

// Form field names used in FieldError.
const (
	FieldItems           = "items"
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldCustomerAddress = "customer_address"
	FieldDeliveryType    = "delivery_type"
	FieldDeliveryFee     = "delivery_fee"
	FieldScheduledAt     = "scheduled_at"
)

// DraftBuilder validates checkout forms and produces immutable order
// drafts. Drafts are never persisted.
type DraftBuilder struct {
	rules ScheduleRules
	now   func() time.Time
}

// DraftBuilderOption customizes a DraftBuilder.
type DraftBuilderOption func(*DraftBuilder)

// WithNow pins the builder's clock, for tests.
func WithNow(now func() time.Time) DraftBuilderOption {
	return func(b *DraftBuilder) { b.now = now }
}

// NewDraftBuilder creates a builder with the given scheduling rules.
func NewDraftBuilder(rules ScheduleRules, opts ...DraftBuilderOption) *DraftBuilder {
	b := &DraftBuilder{rules: rules, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Validate reports every unmet rule without building a draft.
func (b *DraftBuilder) Validate(snapshot model.CartSnapshot, form CheckoutForm) []FieldError {
	_, _, _, errs := b.check(snapshot, form)
	return errs
}

// Build validates and, when every rule holds, assembles the draft. On
// any failure it returns (nil, errs) with one entry per unmet rule.
func (b *DraftBuilder) Build(snapshot model.CartSnapshot, form CheckoutForm) (*model.OrderDraft, []FieldError) {
	deliveryType, fee, scheduledAt, errs := b.check(snapshot, form)
	if len(errs) > 0 {
		return nil, errs
	}

	now := b.now()
	draft := &model.OrderDraft{
		ID:              uuid.New().String(),
		Items:           snapshot.Items,
		Subtotal:        snapshot.TotalPrice,
		DeliveryFee:     fee,
		Total:           snapshot.TotalPrice,
		CustomerName:    trimmed(form.CustomerName),
		CustomerPhone:   digits(form.CustomerPhone),
		CustomerAddress: trimmed(form.CustomerAddress),
		Notes:           trimmed(form.Notes),
		DeliveryType:    deliveryType,
		ScheduledAt:     scheduledAt,
		CreatedAt:       now,
	}
	if fee != nil {
		draft.Total += *fee
	}
	return draft, nil
}

func (b *DraftBuilder) check(snapshot model.CartSnapshot, form CheckoutForm) (model.DeliveryType, *float64, time.Time, []FieldError) {
	var errs []FieldError
	fail := func(field, key string) {
		errs = append(errs, FieldError{Field: field, Key: key})
	}

	if snapshot.Empty() {
		fail(FieldItems, i18n.ErrKeyCheckoutCartEmpty)
	}

	if len([]rune(trimmed(form.CustomerName))) < 2 {
		fail(FieldCustomerName, i18n.ErrKeyCheckoutCustomerName)
	}

	if n := len(digits(form.CustomerPhone)); n != 10 && n != 11 {
		fail(FieldCustomerPhone, i18n.ErrKeyCheckoutCustomerPhone)
	}

	deliveryType := model.DeliveryType(trimmed(form.DeliveryType))
	if !deliveryType.Valid() {
		fail(FieldDeliveryType, i18n.ErrKeyCheckoutDeliveryType)
	} else if deliveryType == model.DeliveryCourier {
		if len([]rune(trimmed(form.CustomerAddress))) < 5 {
			fail(FieldCustomerAddress, i18n.ErrKeyCheckoutCustomerAddress)
		}
	}

	var fee *float64
	if feeText := trimmed(form.DeliveryFee); feeText != "" {
		v, err := money.ParseDecimal(feeText)
		if err != nil || v < 0 {
			fail(FieldDeliveryFee, i18n.ErrKeyCheckoutDeliveryFee)
		} else {
			fee = &v
		}
	}

	var scheduledAt time.Time
	if scheduleText := trimmed(form.ScheduledAt); scheduleText == "" {
		fail(FieldScheduledAt, i18n.ErrKeyScheduleRequired)
	} else if slot, err := b.rules.Parse(scheduleText); err != nil {
		fail(FieldScheduledAt, i18n.ErrKeyScheduleInvalid)
	} else if err := b.rules.Validate(slot, b.now()); err != nil {
		fail(FieldScheduledAt, scheduleErrorKey(err))
	} else {
		scheduledAt = slot
	}

	return deliveryType, fee, scheduledAt, errs
}

func scheduleErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrSchedulePast):
		return i18n.ErrKeySchedulePast
	case errors.Is(err, ErrScheduleLeadTime):
		return i18n.ErrKeyScheduleLeadTime
	case errors.Is(err, ErrScheduleBusinessHours):
		return i18n.ErrKeyScheduleBusinessHours
	case errors.Is(err, ErrScheduleSunday):
		return i18n.ErrKeyScheduleSunday
	case errors.Is(err, ErrScheduleSaturday):
		return i18n.ErrKeyScheduleSaturday
	default:
		return i18n.ErrKeyScheduleInvalid
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
