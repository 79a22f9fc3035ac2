package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	r := NewWithRegistry(prometheus.NewRegistry())

	r.RecordRequest("names", "ok")
	r.RecordRequest("names", "ok")
	r.RecordRequest("datapoints", "degraded")
	r.RecordDegraded("x")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.upstreamRequests.WithLabelValues("names", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamRequests.WithLabelValues("datapoints", "degraded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.degraded.WithLabelValues("x")))
}

func TestRecorderHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewWithRegistry(reg)

	r.RecordPoints("q", 80)
	r.RecordLatency("datapoints", 0.12)

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
