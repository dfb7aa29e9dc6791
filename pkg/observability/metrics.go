package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/objects"
	"github.com/aretw0/objects/pkg/registry"
	"github.com/aretw0/objects/pkg/schema"
)

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnknownType = "unknown_type"
)

// Metrics holds the collectors fed by Hooks.
type Metrics struct {
	Normalizations *prometheus.CounterVec
	Duration       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg when reg
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Normalizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "objects_normalizations_total",
				Help: "Total number of normalizations by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "objects_normalization_duration_seconds",
				Help:    "Duration of normalizations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"type"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Normalizations, m.Duration)
	}
	return m
}

// Hooks returns catalog hooks that record every normalization.
func (m *Metrics) Hooks() objects.Hooks {
	return objects.Hooks{
		OnNormalize: m.Observe,
	}
}

// Observe records one event.
func (m *Metrics) Observe(e objects.Event) {
	typeName := e.TypeName
	outcome := OutcomeOK
	switch {
	case errors.Is(e.Err, registry.ErrUnknownType) && !errors.Is(e.Err, schema.ErrNormalization):
		// Only the top-level lookup failed; nested custom failures also wrap
		// ErrNormalization. Caller-supplied names never become label values.
		typeName = ""
		outcome = OutcomeUnknownType
	case e.Err != nil:
		outcome = OutcomeRejected
	}
	m.Normalizations.WithLabelValues(typeName, outcome).Inc()
	m.Duration.WithLabelValues(typeName).Observe(e.Duration.Seconds())
}
