package whatsapp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

func draftFixture() *model.OrderDraft {
	fee := 10.5
	return &model.OrderDraft{
		ID: "d0a9e1fc-0000-0000-0000-000000000000",
		Items: []model.LineItem{
			{
				ID:        "taca-tropical#1.4-l",
				ProductID: "taca-tropical",
				Name:      "Taça Tropical",
				UnitPrice: 90,
				Quantity:  2,
				Options:   []model.ItemOption{{Label: "Tamanho", Value: "1.4 L"}},
			},
		},
		Subtotal:        180,
		DeliveryFee:     &fee,
		Total:           190.5,
		CustomerName:    "Maria Silva",
		CustomerPhone:   "91988887777",
		CustomerAddress: "Rua das Flores, 123",
		Notes:           "Sem lactose, por favor",
		DeliveryType:    model.DeliveryCourier,
		ScheduledAt:     time.Date(2026, 12, 20, 10, 30, 0, 0, time.UTC),
		CreatedAt:       time.Date(2026, 12, 18, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildMessageFullOrder(t *testing.T) {
	msg := BuildMessage(draftFixture())

	expected := strings.Join([]string{
		"Pedido - Cardápio Digital",
		"",
		"Cliente: Maria Silva",
		"WhatsApp: 91988887777",
		"Tipo: Entrega",
		"Endereço: Rua das Flores, 123",
		"Agendamento: 20/12/2026 10:30",
		"Observações: Sem lactose, por favor",
		"",
		"Itens:",
		"- 2x Taça Tropical (1.4 L) — R$ 180,00",
		"",
		"Subtotal: R$ 180,00",
		"Entrega: R$ 10,50",
		"Total: R$ 190,50",
	}, "\n")

	assert.Equal(t, expected, msg)
}

func TestBuildMessagePickupSkipsOptionalLines(t *testing.T) {
	draft := draftFixture()
	draft.DeliveryType = model.DeliveryPickup
	draft.CustomerAddress = ""
	draft.Notes = ""
	draft.DeliveryFee = nil
	draft.Total = draft.Subtotal

	msg := BuildMessage(draft)

	assert.Contains(t, msg, "Tipo: Retirada")
	assert.NotContains(t, msg, "Endereço:")
	assert.NotContains(t, msg, "Observações:")
	assert.NotContains(t, msg, "Entrega: R$")
	assert.Contains(t, msg, "Subtotal: R$ 180,00\nTotal: R$ 180,00")
}

func TestBuildMessageAddressOnlyForCourier(t *testing.T) {
	draft := draftFixture()
	draft.DeliveryType = model.DeliveryPickup

	assert.NotContains(t, BuildMessage(draft), "Endereço:")
}

func TestBuildMessageItemWithoutOptions(t *testing.T) {
	draft := draftFixture()
	draft.Items = []model.LineItem{
		{ID: "bolo-red", Name: "Bolo Red", UnitPrice: 90, Quantity: 1},
	}

	assert.Contains(t, BuildMessage(draft), "- 1x Bolo Red — R$ 90,00")
}

func TestBuildMessagePreservesItemOrder(t *testing.T) {
	draft := draftFixture()
	draft.Items = []model.LineItem{
		{ID: "b", Name: "Banoffe", UnitPrice: 220, Quantity: 1},
		{ID: "a", Name: "Bolo Red", UnitPrice: 90, Quantity: 1},
	}

	msg := BuildMessage(draft)
	assert.Less(t, strings.Index(msg, "Banoffe"), strings.Index(msg, "Bolo Red"))
}

func TestOrderLink(t *testing.T) {
	b := NewLinkBuilder("+55 (91) 98888-7777")
	require.True(t, b.Enabled())
	assert.Equal(t, "5591988887777", b.Number())

	link, err := b.OrderLink(draftFixture())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5591988887777?text="))
	assert.Contains(t, link, "%20")
	assert.NotContains(t, link, "+", "spaces must encode as %20, not +")
	assert.Contains(t, link, "Pedido%20-%20Card%C3%A1pio%20Digital")
}

func TestOrderLinkWithoutNumber(t *testing.T) {
	b := NewLinkBuilder("")
	assert.False(t, b.Enabled())

	_, err := b.OrderLink(draftFixture())
	assert.ErrorIs(t, err, ErrNumberNotConfigured)
}
