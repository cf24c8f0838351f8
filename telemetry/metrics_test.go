package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fndecor/telemetry"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := telemetry.New(registry)
	metrics.Rewritten(1)
	metrics.Rewritten(2)
	metrics.Rewritten(7)
	metrics.Suppressed("decorator")
	metrics.Suppressed("decorator")
	metrics.Suppressed("unused")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RewrittenCounter().WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RewrittenCounter().WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RewrittenCounter().WithLabelValues("many")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SuppressedCounter().WithLabelValues("decorator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SuppressedCounter().WithLabelValues("unused")))

	var disabled *telemetry.Metrics
	disabled.Rewritten(1)
	disabled.Suppressed("decorator")
	disabled.File("unchanged")
}
