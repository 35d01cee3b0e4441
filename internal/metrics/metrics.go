package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the resolve/create pipelines. Registered on the default
// registry and exposed via promhttp on /metrics.
var (
	// CacheLookups counts cache lookup outcomes: hit, miss, error.
	// Errors are also misses from the pipeline's point of view; the
	// separate label makes fail-open activity visible.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shrtlnk_cache_lookups_total",
		Help: "Cache lookup outcomes.",
	}, []string{"result"})

	// CacheBackfills counts cache population attempts: ok, error.
	CacheBackfills = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shrtlnk_cache_backfills_total",
		Help: "Cache backfill outcomes after a store hit.",
	}, []string{"result"})

	// EventsPublished counts detached event publishes per topic: ok, error.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shrtlnk_events_published_total",
		Help: "Analytics event publish outcomes per topic.",
	}, []string{"topic", "result"})
)
