package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus metrics for the engine.
type Metrics struct {
	// Registry owns these metrics; the /metrics endpoint serves it.
	Registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	mutationsTotal     *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	sessionsStarted    prometheus.Counter
	activeSessions     prometheus.Gauge
}

// NewMetrics registers all application metrics in a private registry.
// A private registry avoids duplicate-collector panics when NewMetrics is
// called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetpal_request_duration_seconds",
				Help:    "Duration of engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetpal_mutations_total",
				Help: "Total store mutations by entity and operation.",
			},
			[]string{"entity", "op"},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetpal_validation_failures_total",
				Help: "Total mutations rejected by input validation.",
			},
			[]string{"entity"},
		),
		sessionsStarted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budgetpal_sessions_started_total",
				Help: "Total sessions started via login.",
			},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budgetpal_active_sessions",
				Help: "Sessions currently alive.",
			},
		),
	}
}

// RecordRequestDuration records the duration of an engine operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrMutation counts one applied store mutation.
func (m *Metrics) IncrMutation(entity, op string) {
	m.mutationsTotal.WithLabelValues(entity, op).Inc()
}

// IncrValidationFailure counts one rejected mutation.
func (m *Metrics) IncrValidationFailure(entity string) {
	m.validationFailures.WithLabelValues(entity).Inc()
}

// SessionStarted counts a login and bumps the active session gauge.
func (m *Metrics) SessionStarted() {
	m.sessionsStarted.Inc()
	m.activeSessions.Inc()
}

// SessionEnded drops the active session gauge.
func (m *Metrics) SessionEnded() {
	m.activeSessions.Dec()
}

// EngineSnapshot summarizes engine activity for the engine metrics
// endpoint.
type EngineSnapshot struct {
	SessionsStarted    int64   `json:"sessionsStarted"`
	ExpensesAdded      int64   `json:"expensesAdded"`
	BudgetMutations    int64   `json:"budgetMutations"`
	GoalMutations      int64   `json:"goalMutations"`
	ValidationFailures int64   `json:"validationFailures"`
	RejectionRate      float64 `json:"rejectionRate"`
}

// GetEngineSnapshot reads the cumulative counter values back out of the
// registry. Prometheus counters only expose values through a Write to the
// wire format, so the snapshot goes through dto.Metric.
func (m *Metrics) GetEngineSnapshot() EngineSnapshot {
	snap := EngineSnapshot{
		SessionsStarted: int64(counterValue(m.sessionsStarted)),
	}

	var mutations float64
	for _, entity := range []string{"expense", "budget", "goal"} {
		for _, op := range []string{"create", "update", "delete", "contribute"} {
			v := counterValue(m.mutationsTotal.WithLabelValues(entity, op))
			mutations += v
			switch entity {
			case "expense":
				snap.ExpensesAdded += int64(v)
			case "budget":
				snap.BudgetMutations += int64(v)
			case "goal":
				snap.GoalMutations += int64(v)
			}
		}
		snap.ValidationFailures += int64(counterValue(m.validationFailures.WithLabelValues(entity)))
	}

	attempts := mutations + float64(snap.ValidationFailures)
	if attempts > 0 {
		snap.RejectionRate = float64(snap.ValidationFailures) / attempts
	}
	return snap
}

// counterValue extracts the current value from a counter.
func counterValue(c prometheus.Counter) float64 {
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		return 0
	}
	if metric.Counter != nil && metric.Counter.Value != nil {
		return *metric.Counter.Value
	}
	return 0
}
