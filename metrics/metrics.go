package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bistro_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bistro_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// OrderStatsDroppedRefs counts menu item references dropped by the
	// order-stats join because the referenced menu entry no longer exists.
	OrderStatsDroppedRefs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_order_stats_dropped_refs_total",
		Help: "Menu item references dropped by the order-stats aggregation.",
	})
)
