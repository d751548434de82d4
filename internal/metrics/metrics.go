package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jippymart_http_requests_total",
		Help: "HTTP requests served, by route and status code",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jippymart_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jippymart_cache_lookups_total",
		Help: "Response cache lookups, by driver and result (hit, miss, error, bypass)",
	}, []string{"driver", "result"})

	CacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jippymart_cache_invalidations_total",
		Help: "Cache entries removed by invalidation, by driver and operation",
	}, []string{"driver", "operation"})

	SettingsRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jippymart_settings_refreshes_total",
		Help: "Settings snapshot reloads, by outcome",
	}, []string{"outcome"})
)
