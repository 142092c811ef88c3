package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)

	assert.NotNil(t, m)
	assert.Panics(t, func() { metrics.NewMetrics(reg) }, "second registration must collide")
}

func TestStage(t *testing.T) {
	t.Parallel()

	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.Stage("initialize", nil)
	m.Stage("initialize", nil)
	m.Stage("seed", assert.AnError)

	assert.InDelta(t, 2, testutil.ToFloat64(m.SetupStages.WithLabelValues("initialize", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SetupStages.WithLabelValues("seed", "failure")), 0)
}
