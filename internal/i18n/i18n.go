// Package i18n provides translation of API messages. Portuguese is the
// default locale; English is available through the Accept-Language
// header.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	defaultTranslator     *Translator
	defaultTranslatorOnce sync.Once
)

// GetTranslator returns the process-wide translator.
func GetTranslator() *Translator {
	defaultTranslatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Locale represents a supported language.
type Locale string

const (
	// LocalePT is Brazilian Portuguese, the default.
	LocalePT Locale = "pt"
	// LocaleEN is English.
	LocaleEN Locale = "en"
)

// Translator resolves message keys to localized text.
type Translator struct {
	messages map[Locale]map[string]string
}

// NewTranslator creates a translator with the built-in message catalog.
func NewTranslator() *Translator {
	return &Translator{messages: map[Locale]map[string]string{
		LocalePT: {
			ErrKeyInvalidRequest: "Requisição inválida",
			ErrKeyNotFound:       "Recurso não encontrado",
			ErrKeyInternal:       "Erro interno do servidor",
			ErrKeyRateLimited:    "Muitas requisições, tente novamente em instantes",
			ErrKeyTimeout:        "A requisição excedeu o tempo limite",

			ErrKeyCatalogCategoryNotFound: "Categoria não encontrada",
			ErrKeyCatalogProductNotFound:  "Produto não encontrado",
			ErrKeyCatalogPriceOnRequest:   "Produto sob consulta, não pode ser adicionado ao carrinho",
			ErrKeyCatalogInvalidOption:    "Opção de produto inválida",

			ErrKeyCartItemNotFound: "Item não encontrado no carrinho",

			ErrKeyCheckoutCartEmpty:       "O carrinho está vazio",
			ErrKeyCheckoutCustomerName:    "Informe seu nome (mínimo 2 caracteres)",
			ErrKeyCheckoutCustomerPhone:   "Informe um WhatsApp válido com DDD (10 ou 11 dígitos)",
			ErrKeyCheckoutCustomerAddress: "Informe o endereço de entrega (mínimo 5 caracteres)",
			ErrKeyCheckoutDeliveryType:    "Escolha entrega ou retirada",
			ErrKeyCheckoutDeliveryFee:     "Taxa de entrega inválida",

			ErrKeyScheduleRequired:      "Escolha a data e hora de agendamento",
			ErrKeyScheduleInvalid:       "Data de agendamento inválida",
			ErrKeySchedulePast:          "O agendamento não pode estar no passado",
			ErrKeyScheduleLeadTime:      "O agendamento precisa de pelo menos 2 horas de antecedência",
			ErrKeyScheduleBusinessHours: "Agendamentos somente entre 8h e 18h",
			ErrKeyScheduleSunday:        "Não agendamos aos domingos",
			ErrKeyScheduleSaturday:      "Aos sábados agendamos somente antes das 12h",

			ErrKeyCheckoutDisabled: "Envio de pedidos indisponível no momento",

			MsgKeyOrderReady:  "Pedido pronto para envio",
			MsgKeyCartCleared: "Carrinho esvaziado",
		},
		LocaleEN: {
			ErrKeyInvalidRequest: "Invalid request",
			ErrKeyNotFound:       "Resource not found",
			ErrKeyInternal:       "Internal server error",
			ErrKeyRateLimited:    "Too many requests, please retry shortly",
			ErrKeyTimeout:        "Request timed out",

			ErrKeyCatalogCategoryNotFound: "Category not found",
			ErrKeyCatalogProductNotFound:  "Product not found",
			ErrKeyCatalogPriceOnRequest:   "Product is priced on request and cannot be added to the cart",
			ErrKeyCatalogInvalidOption:    "Invalid product option",

			ErrKeyCartItemNotFound: "Item not found in cart",

			ErrKeyCheckoutCartEmpty:       "The cart is empty",
			ErrKeyCheckoutCustomerName:    "Enter your name (at least 2 characters)",
			ErrKeyCheckoutCustomerPhone:   "Enter a valid WhatsApp number with area code (10 or 11 digits)",
			ErrKeyCheckoutCustomerAddress: "Enter the delivery address (at least 5 characters)",
			ErrKeyCheckoutDeliveryType:    "Choose delivery or pickup",
			ErrKeyCheckoutDeliveryFee:     "Invalid delivery fee",

			ErrKeyScheduleRequired:      "Choose a scheduling date and time",
			ErrKeyScheduleInvalid:       "Invalid scheduling date",
			ErrKeySchedulePast:          "Scheduling cannot be in the past",
			ErrKeyScheduleLeadTime:      "Scheduling needs at least 2 hours of lead time",
			ErrKeyScheduleBusinessHours: "Scheduling is available between 8h and 18h only",
			ErrKeyScheduleSunday:        "We do not schedule on Sundays",
			ErrKeyScheduleSaturday:      "On Saturdays we only schedule before 12h",

			ErrKeyCheckoutDisabled: "Order submission is currently unavailable",

			MsgKeyOrderReady:  "Order ready to send",
			MsgKeyCartCleared: "Cart cleared",
		},
	}}
}

// Translate returns the message for a key in the given locale. Unknown
// keys are returned verbatim so missing translations stay visible.
func (t *Translator) Translate(locale Locale, key string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[LocalePT][key]; ok {
		return msg
	}
	return key
}

// GetLocale extracts the preferred locale from the Accept-Language
// header, defaulting to Portuguese.
func GetLocale(c *gin.Context) Locale {
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		lang := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch {
		case strings.HasPrefix(lang, "en"):
			return LocaleEN
		case strings.HasPrefix(lang, "pt"):
			return LocalePT
		}
	}
	return LocalePT
}
