package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "O carrinho está vazio", tr.Translate(LocalePT, ErrKeyCheckoutCartEmpty))
	assert.Equal(t, "The cart is empty", tr.Translate(LocaleEN, ErrKeyCheckoutCartEmpty))
}

func TestTranslateFallsBackToPortuguese(t *testing.T) {
	tr := NewTranslator()
	assert.Equal(t, tr.Translate(LocalePT, ErrKeyNotFound), tr.Translate(Locale("fr"), ErrKeyNotFound))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator()
	assert.Equal(t, "error.bogus", tr.Translate(LocaleEN, "error.bogus"))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected Locale
	}{
		{"empty defaults to pt", "", LocalePT},
		{"plain en", "en", LocaleEN},
		{"en-US with quality", "en-US,en;q=0.9", LocaleEN},
		{"pt-BR", "pt-BR,pt;q=0.9", LocalePT},
		{"unsupported falls back", "de-DE", LocalePT},
		{"first supported wins", "de-DE,en;q=0.8", LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
