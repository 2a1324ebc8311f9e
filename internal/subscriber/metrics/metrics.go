// Package metrics exposes Prometheus counters for the subscription
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SubscriptionsCreated   prometheus.Counter
	DuplicateSubscriptions prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		SubscriptionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_subscriptions_created_total",
			Help: "Number of new newsletter subscriptions recorded.",
		}),
		DuplicateSubscriptions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leaders_subscriptions_duplicate_total",
			Help: "Number of subscription attempts for an already subscribed email.",
		}),
	}
}

// Increment helpers tolerate a nil receiver so tests can run without a
// registry.

func (m *Metrics) IncSubscriptionsCreated() {
	if m == nil {
		return
	}
	m.SubscriptionsCreated.Inc()
}

func (m *Metrics) IncDuplicateSubscriptions() {
	if m == nil {
		return
	}
	m.DuplicateSubscriptions.Inc()
}
