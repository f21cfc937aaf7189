// Package observe provides Prometheus instrumentation for the rotation
// executor. It implements rotate.Observer so the executor itself stays
// free of metrics concerns.
package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts attempts, rotations, and terminal outcomes. The
// reason label is bounded: the classifier only ever emits
// "invalid key", "rate limit", and "overloaded".
type Metrics struct {
	attempts  prometheus.Counter
	rotations *prometheus.CounterVec
	fatals    prometheus.Counter
	deadlines prometheus.Counter
}

// NewMetrics registers the counters with reg and returns the observer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		attempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "gemlens_generate_attempts_total",
			Help: "Total generation attempts across all keys.",
		}),
		rotations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gemlens_key_rotations_total",
			Help: "Key rotations by classified reason.",
		}, []string{"reason"}),
		fatals: factory.NewCounter(prometheus.CounterOpts{
			Name: "gemlens_generate_fatal_failures_total",
			Help: "Generation calls ended by a non-retryable failure.",
		}),
		deadlines: factory.NewCounter(prometheus.CounterOpts{
			Name: "gemlens_generate_deadline_exhaustions_total",
			Help: "Generation calls that exhausted the retry deadline.",
		}),
	}
}

func (m *Metrics) Attempt(attempt, slot, poolSize int) {
	m.attempts.Inc()
}

func (m *Metrics) Rotate(attempt, fromSlot, toSlot int, reason string, elapsed, remaining time.Duration) {
	m.rotations.WithLabelValues(reason).Inc()
}

func (m *Metrics) Fatal(attempt, slot int) {
	m.fatals.Inc()
}

func (m *Metrics) DeadlineExceeded(attempts, poolSize int) {
	m.deadlines.Inc()
}
