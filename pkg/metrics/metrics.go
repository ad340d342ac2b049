package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for itinerary_generation_total.
const (
	OutcomeStructured     = "structured"
	OutcomeFallback       = "fallback"
	OutcomeFormatError    = "format_error"
	OutcomeAuthError      = "auth_error"
	OutcomeTransportError = "transport_error"
)

type PlannerMetrics struct {
	Generations    *prometheus.CounterVec
	ModelCallTimes *prometheus.HistogramVec
}

// NewPlannerMetrics registers the planner collectors on reg.
func NewPlannerMetrics(reg prometheus.Registerer) *PlannerMetrics {
	factory := promauto.With(reg)
	return &PlannerMetrics{
		Generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "itinerary_generation_total",
				Help: "Total number of itinerary generations by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		ModelCallTimes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "itinerary_model_call_seconds",
				Help:    "Duration of model calls in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
			},
			[]string{"mode"},
		),
	}
}

func (m *PlannerMetrics) ObserveModelCall(mode string, elapsed time.Duration) {
	m.ModelCallTimes.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (m *PlannerMetrics) CountGeneration(mode, outcome string) {
	m.Generations.WithLabelValues(mode, outcome).Inc()
}
