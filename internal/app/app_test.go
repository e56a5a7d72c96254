//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardapio/storefront-service/config"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
			LogLevel:   "error",
		},
		Store: config.StoreConfig{
			WhatsAppNumber:      "5591988887777",
			Timezone:            time.Local,
			MinLeadTime:         2 * time.Hour,
			OpeningHour:         8,
			ClosingHour:         18,
			SaturdayClosingHour: 12,
		},
		Session: config.SessionConfig{
			TTL:          time.Hour,
			CookieMaxAge: 24 * time.Hour,
		},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{
			name: "memory-only deployment",
		},
		{
			name: "without whatsapp number",
			mutate: func(cfg *config.Config) {
				cfg.Store.WhatsAppNumber = ""
			},
		},
		{
			name: "rate limiting disabled",
			mutate: func(cfg *config.Config) {
				cfg.Server.RateLimit = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			router := InitializeApp(cfg)
			assert.NotNil(t, router)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_ServesCatalog(t *testing.T) {
	router := InitializeApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "categories")
}

func TestInitializeServices_MemoryOnly(t *testing.T) {
	services := InitializeServices(testConfig(), nil)

	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Carts)
	assert.NotNil(t, services.Drafts)
	assert.True(t, services.Links.Enabled())

	services.Carts.Stop()
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{}, config.RedisConfig{})
	assert.Nil(t, components)
}
