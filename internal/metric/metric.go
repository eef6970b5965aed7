package metric

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gigbook_http_requests_total",
		Help: "Count of HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gigbook_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	dbPingLatency = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gigbook_db_ping_microsec",
		Help: "Latency of a database ping in microseconds",
	})
)

// HTTPMiddleware records a counter and latency histogram per request,
// labeled by the route template rather than the raw path so IDs do not
// explode the cardinality.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Pinger is satisfied by the postgres store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WatchDBPing samples database ping latency on a ticker until ctx is done.
func WatchDBPing(ctx context.Context, p Pinger, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			if err := p.Ping(ctx); err != nil {
				logger.Error("db ping failed", "error", err)
				continue
			}
			dbPingLatency.Set(float64(time.Since(start).Microseconds()))
		}
	}
}
