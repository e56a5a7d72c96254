// Package metrics exposes Prometheus collectors for the storefront.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	cartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"operation"},
	)

	activeCartSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_cart_sessions",
			Help: "Number of cart sessions currently held in memory",
		},
	)

	checkoutAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_attempts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"status"},
	)

	checkoutFieldFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_validation_failures_total",
			Help: "Checkout validation failures by form field",
		},
		[]string{"field"},
	)

	whatsappLinksBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_whatsapp_links_built_total",
			Help: "Number of WhatsApp order links generated",
		},
	)

	cartMirrorFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_cart_mirror_failures_total",
			Help: "Best-effort cart persistence writes that failed",
		},
	)
)

// PrometheusMiddleware records request counts and latency per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordCartOperation counts a cart mutation (add, update, remove, clear).
func RecordCartOperation(operation string) {
	cartOperationsTotal.WithLabelValues(operation).Inc()
}

// SetActiveCartSessions publishes the current session registry size.
func SetActiveCartSessions(n int) {
	activeCartSessions.Set(float64(n))
}

// RecordCheckoutAttempt counts a checkout by outcome
// (success, rejected, disabled).
func RecordCheckoutAttempt(status string) {
	checkoutAttemptsTotal.WithLabelValues(status).Inc()
}

// RecordCheckoutFieldFailure counts a validation failure for a field.
func RecordCheckoutFieldFailure(field string) {
	checkoutFieldFailures.WithLabelValues(field).Inc()
}

// RecordWhatsAppLinkBuilt counts a generated order deep link.
func RecordWhatsAppLinkBuilt() {
	whatsappLinksBuilt.Inc()
}

// RecordCartMirrorFailure counts a swallowed persistence failure.
func RecordCartMirrorFailure() {
	cartMirrorFailures.Inc()
}
