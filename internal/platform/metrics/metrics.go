// Package metrics holds the Prometheus collectors exposed on /-/metrics.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Fallbacks counts secondary lookups that failed during a page render and
// were replaced by an absent value. It implements ports.FallbackRecorder.
type Fallbacks struct {
	counter *prometheus.CounterVec
}

// NewFallbacks creates the fallback counter and registers it with reg.
// Registering twice against the same registry reuses the existing collector.
func NewFallbacks(reg prometheus.Registerer) (*Fallbacks, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "upstream_fallbacks_total",
		Help:      "Secondary upstream lookups that failed and degraded the rendered page.",
	}, []string{"lookup"})

	if err := reg.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("registering fallback counter: %w", err)
		}

		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("registering fallback counter: %w", err)
		}

		counter = existing
	}

	return &Fallbacks{counter: counter}, nil
}

// RecordFallback increments the counter for lookup.
func (f *Fallbacks) RecordFallback(lookup string) {
	f.counter.WithLabelValues(lookup).Inc()
}
