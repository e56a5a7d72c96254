// Package config provides configuration management for the storefront
// service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	LogLevel       string
	LogPretty      bool
}

// StoreConfig holds the shop's own settings: the WhatsApp destination
// number, its timezone, and the scheduling window.
type StoreConfig struct {
	WhatsAppNumber      string
	Timezone            *time.Location
	MinLeadTime         time.Duration
	OpeningHour         int
	ClosingHour         int
	SaturdayClosingHour int
}

// SessionConfig holds cart session configuration.
type SessionConfig struct {
	// TTL is how long an idle cart stays in memory.
	TTL time.Duration
	// CookieMaxAge is the lifetime of the cart_session cookie.
	CookieMaxAge time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	LogsTTL      time.Duration
	CartsTTL     time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerCoolDown         time.Duration
}

// RedisConfig holds the Redis cart mirror configuration. Redis is an
// alternative to MongoDB for cart persistence; when both are enabled
// MongoDB wins.
type RedisConfig struct {
	URL     string
	Enabled bool
	TTL     time.Duration
}

// Load creates a Config from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogPretty:      getEnvBool("LOG_PRETTY", false),
		},
		Store: StoreConfig{
			WhatsAppNumber:      getEnv("WHATSAPP_NUMBER", ""),
			Timezone:            parseTimezone(getEnv("STORE_TIMEZONE", "America/Sao_Paulo")),
			MinLeadTime:         getEnvDuration("SCHEDULE_MIN_LEAD", 2*time.Hour),
			OpeningHour:         getEnvInt("SCHEDULE_OPENING_HOUR", 8),
			ClosingHour:         getEnvInt("SCHEDULE_CLOSING_HOUR", 18),
			SaturdayClosingHour: getEnvInt("SCHEDULE_SATURDAY_CLOSING_HOUR", 12),
		},
		Session: SessionConfig{
			TTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
			CookieMaxAge: getEnvDuration("SESSION_COOKIE_MAX_AGE", 30*24*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "storefront"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			CartsTTL:                       getEnvDuration("MONGODB_CARTS_TTL", 30*24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerCoolDown:         getEnvDuration("CIRCUIT_BREAKER_COOLDOWN", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Enabled: getEnvBool("REDIS_ENABLED", false),
			TTL:     getEnvDuration("REDIS_CARTS_TTL", 30*24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// parseCORSOrigins splits the configured allowlist. The local
// development defaults apply only when nothing is configured; a set
// CORS_ORIGINS replaces them entirely.
func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	if len(result) == 0 {
		return defaults
	}
	return result
}
