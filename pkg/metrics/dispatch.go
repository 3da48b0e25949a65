package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DispatchMetrics records scoring engine activity.
type DispatchMetrics struct {
	duration        *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	infeasible      prometheus.Counter
}

// NewDispatchMetrics registers the dispatch metrics on the provided registerer.
func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	if reg == nil {
		return &DispatchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_engine_duration_seconds",
		Help:    "Duration of dispatch engine evaluations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	recommendations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_recommendations_total",
		Help: "Driver recommendations served, labelled by outcome.",
	}, []string{"outcome"})
	infeasible := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_no_feasible_driver_total",
		Help: "Recommendation requests where no driver could absorb the order.",
	})
	reg.MustRegister(duration, recommendations, infeasible)
	return &DispatchMetrics{
		duration:        duration,
		recommendations: recommendations,
		infeasible:      infeasible,
	}
}

// ObserveDuration records the evaluation time for the named engine operation.
func (d *DispatchMetrics) ObserveDuration(operation string, duration time.Duration) {
	if d == nil || d.duration == nil {
		return
	}
	d.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncRecommendation increments the recommendation counter for the given outcome.
func (d *DispatchMetrics) IncRecommendation(outcome string) {
	if d == nil || d.recommendations == nil {
		return
	}
	d.recommendations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncNoFeasibleDriver bumps the counter for requests with no viable driver.
func (d *DispatchMetrics) IncNoFeasibleDriver() {
	if d == nil || d.infeasible == nil {
		return
	}
	d.infeasible.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
