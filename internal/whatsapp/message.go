// Package whatsapp renders order drafts into WhatsApp messages and
// builds wa.me deep links for the customer hand-off.
package whatsapp

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/money"
)

const (
	baseURL        = "https://wa.me/"
	messageTitle   = "Pedido - Cardápio Digital"
	scheduleLayout = "02/01/2006 15:04"
)

// ErrNumberNotConfigured is returned when no destination number is set.
var ErrNumberNotConfigured = errors.New("whatsapp: destination number not configured")

// LinkBuilder builds order deep links for a configured destination
// number. The zero-value builder is disabled.
type LinkBuilder struct {
	number string
}

// NewLinkBuilder sanitizes the destination number to digits. An empty
// or digit-free number yields a disabled builder.
func NewLinkBuilder(number string) *LinkBuilder {
	return &LinkBuilder{number: digitsOnly(number)}
}

// Enabled reports whether a destination number is configured.
func (b *LinkBuilder) Enabled() bool {
	return b.number != ""
}

// Number returns the sanitized destination number.
func (b *LinkBuilder) Number() string {
	return b.number
}

// OrderLink renders the draft message and wraps it in a wa.me link.
func (b *LinkBuilder) OrderLink(draft *model.OrderDraft) (string, error) {
	if !b.Enabled() {
		return "", ErrNumberNotConfigured
	}
	return baseURL + b.number + "?text=" + encodeText(BuildMessage(draft)), nil
}

// BuildMessage renders the order as the customer-facing WhatsApp text.
// Line order is fixed; optional lines are skipped, never left blank.
func BuildMessage(draft *model.OrderDraft) string {
	lines := make([]string, 0, 16+len(draft.Items))

	lines = append(lines,
		messageTitle,
		"",
		"Cliente: "+draft.CustomerName,
		"WhatsApp: "+draft.CustomerPhone,
		"Tipo: "+draft.DeliveryType.Label(),
	)
	if draft.DeliveryType == model.DeliveryCourier && draft.CustomerAddress != "" {
		lines = append(lines, "Endereço: "+draft.CustomerAddress)
	}
	if !draft.ScheduledAt.IsZero() {
		lines = append(lines, "Agendamento: "+draft.ScheduledAt.Format(scheduleLayout))
	}
	if draft.Notes != "" {
		lines = append(lines, "Observações: "+draft.Notes)
	}

	lines = append(lines, "", "Itens:")
	for _, item := range draft.Items {
		lines = append(lines, itemLine(item))
	}

	lines = append(lines, "", "Subtotal: "+money.FormatBRL(draft.Subtotal))
	if draft.DeliveryFee != nil {
		lines = append(lines, "Entrega: "+money.FormatBRL(*draft.DeliveryFee))
	}
	lines = append(lines, "Total: "+money.FormatBRL(draft.Total))

	return strings.Join(lines, "\n")
}

func itemLine(item model.LineItem) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(strconv.Itoa(item.Quantity))
	b.WriteString("x ")
	b.WriteString(item.Name)
	if values := item.OptionValues(); len(values) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(values, " • "))
		b.WriteString(")")
	}
	b.WriteString(" — ")
	b.WriteString(money.FormatBRL(item.LineTotal()))
	return b.String()
}

// encodeText percent-encodes the message for the text query parameter.
// Spaces become %20, matching what browsers produce for these links.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
