package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPlannerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPlannerMetrics(reg)

	m.CountGeneration("structured", OutcomeStructured)
	m.CountGeneration("structured", OutcomeStructured)
	m.CountGeneration("grounded", OutcomeFallback)
	m.ObserveModelCall("grounded", 1500*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Generations.WithLabelValues("structured", OutcomeStructured)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generations.WithLabelValues("grounded", OutcomeFallback)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ModelCallTimes))
}
