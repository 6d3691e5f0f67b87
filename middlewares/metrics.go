package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paytrack_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		},
		[]string{"path", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paytrack_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	promotedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paytrack_scheduled_promotions_total",
			Help: "Scheduled payments auto-promoted to pending.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, promotedTotal)
}

// Metrics records per-request counters and latency. Uses the route
// template, not the raw URL, to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObservePromotions feeds the auto-promotion batch count.
func ObservePromotions(n int64) {
	promotedTotal.Add(float64(n))
}

// MetricsHandler exposes the prometheus registry on /metrics.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
