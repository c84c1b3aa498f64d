package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	HttpResponseSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "endpoint"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of requests currently being served",
		},
	)

	// Application metrics
	CommentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments posted to reviews",
		},
	)

	VotesApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "review_votes_applied_total",
			Help: "Total number of successful vote updates on reviews",
		},
	)

	// Failures by normalized kind
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_errors_total",
			Help: "Total number of failed requests by error kind",
		},
		[]string{"kind", "endpoint"},
	)
)

// InitMetrics registers every collector with the default registry.
func InitMetrics() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		HttpResponseSize,
		ActiveConnections,
		CommentsCreated,
		VotesApplied,
		ErrorsTotal,
	)
}

// Endpoint is the route template used as a label, so ids do not explode
// label cardinality.
func Endpoint(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}

// PrometheusMiddleware collects metrics for each request
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ActiveConnections.Inc()
		defer ActiveConnections.Dec()

		c.Next()

		endpoint := Endpoint(c)
		HttpRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HttpRequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())

		HttpResponseSize.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(float64(c.Writer.Size()))
	}
}

// PrometheusHandler returns Prometheus metrics handler
func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
