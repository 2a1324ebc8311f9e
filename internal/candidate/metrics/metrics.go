package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the candidate domain.
type Metrics struct {
	ListsServed    prometheus.Counter
	SlugLookups    prometheus.Counter
	SlugMisses     prometheus.Counter
	CacheFallbacks prometheus.Counter
}

// New creates and registers the candidate metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		ListsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_candidate_lists_served_total",
			Help: "Total number of candidate collection fetches served.",
		}),
		SlugLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_candidate_slug_lookups_total",
			Help: "Total number of slug resolution attempts.",
		}),
		SlugMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_candidate_slug_misses_total",
			Help: "Total number of slug resolutions that matched no candidate.",
		}),
		CacheFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_candidate_cache_fallbacks_total",
			Help: "Total number of list fetches served from the cache because the store failed.",
		}),
	}
}

// Increment helpers are nil-safe so tests can run without registering
// collectors.

func (m *Metrics) IncListsServed() {
	if m != nil {
		m.ListsServed.Inc()
	}
}

func (m *Metrics) IncSlugLookups() {
	if m != nil {
		m.SlugLookups.Inc()
	}
}

func (m *Metrics) IncSlugMisses() {
	if m != nil {
		m.SlugMisses.Inc()
	}
}

func (m *Metrics) IncCacheFallbacks() {
	if m != nil {
		m.CacheFallbacks.Inc()
	}
}
