package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(t *testing.T, rate int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rate, time.Minute)
	t.Cleanup(rl.Stop)

	r := gin.New()
	r.Use(CartSession(time.Hour))
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	r := rateLimitedRouter(t, 3)
	session := &http.Cookie{Name: SessionCookie, Value: uuid.New().String()}

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(session)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimitRejectsBeyondBudget(t *testing.T) {
	r := rateLimitedRouter(t, 2)
	session := &http.Cookie{Name: SessionCookie, Value: uuid.New().String()}

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(session)
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestRateLimitIsolatesSessions(t *testing.T) {
	r := rateLimitedRouter(t, 1)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: uuid.New().String()})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterStats(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()

	rl.checkRateLimit("a")
	rl.checkRateLimit("b")

	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, defaultNumShards)
}
