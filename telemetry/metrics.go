package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fndecor"

// Metrics counts rewrite and suppression activity. A nil *Metrics records nothing.
type Metrics struct {
	rewritten  *prometheus.CounterVec
	files      *prometheus.CounterVec
	suppressed *prometheus.CounterVec
}

// New registers the counters with registerer; a nil registerer leaves them unregistered
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		rewritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "declarations_total",
			Help:      "Decorated function declarations rewritten",
		}, []string{"decorators"}),
		files: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "files_total",
			Help:      "Root files processed by outcome",
		}, []string{"outcome"}),
		suppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "suppressed_total",
			Help:      "Diagnostics dropped by the decorator filter by rule",
		}, []string{"rule"}),
	}
}

// Rewritten records one rewritten declaration carrying the given number of decorators
func (m *Metrics) Rewritten(decorators int) {
	if m == nil {
		return
	}
	label := strconv.Itoa(decorators)
	if decorators > 3 {
		label = "many"
	}
	m.rewritten.WithLabelValues(label).Inc()
}

// File records a processed root file; outcome is "rewritten" or "unchanged"
func (m *Metrics) File(outcome string) {
	if m == nil {
		return
	}
	m.files.WithLabelValues(outcome).Inc()
}

// Suppressed records a dropped diagnostic
func (m *Metrics) Suppressed(rule string) {
	if m == nil {
		return
	}
	m.suppressed.WithLabelValues(rule).Inc()
}

// RewrittenCounter exposes the rewrite counter for inspection
func (m *Metrics) RewrittenCounter() *prometheus.CounterVec {
	return m.rewritten
}

// SuppressedCounter exposes the suppression counter for inspection
func (m *Metrics) SuppressedCounter() *prometheus.CounterVec {
	return m.suppressed
}
