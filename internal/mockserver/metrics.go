package mockserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the backend's Prometheus collectors. Each Backend owns
// its own registry so several can run in one process.
type metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	commands prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svrmgr_mock_requests_total",
				Help: "API requests handled, by method, route and envelope code",
			},
			[]string{"method", "route", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svrmgr_mock_request_duration_seconds",
				Help:    "API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		commands: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "svrmgr_mock_commands_executed_total",
				Help: "Console commands executed",
			},
		),
	}
}

// middleware records every request after it has been handled.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code, ok := c.Get(envelopeCodeKey)
		if !ok {
			code = c.Writer.Status()
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(code.(int))).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
