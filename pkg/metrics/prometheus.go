package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	degraded         *prometheus.CounterVec
	points           *prometheus.HistogramVec
	latency          *prometheus.HistogramVec
}

// New creates a recorder registered on the default Prometheus registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the recorder on reg; tests pass a fresh registry.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		upstreamRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kepviz",
				Name:      "upstream_requests_total",
				Help:      "Requests sent to the mini-kep API by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		degraded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kepviz",
				Name:      "degraded_responses_total",
				Help:      "Datapoints responses that were not a JSON list and were read as empty",
			},
			[]string{"freq"},
		),
		points: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kepviz",
				Name:      "datapoints_per_response",
				Help:      "Number of datapoints returned per datapoints request",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"freq"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kepviz",
				Name:      "upstream_duration_seconds",
				Help:      "Duration of mini-kep API calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// RecordRequest counts one upstream call; outcome is "ok", "error" or "degraded".
func (r *Recorder) RecordRequest(endpoint, outcome string) {
	r.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// RecordDegraded counts a datapoints response swallowed as empty.
func (r *Recorder) RecordDegraded(freq string) {
	r.degraded.WithLabelValues(freq).Inc()
}

// RecordPoints observes how many datapoints a response carried.
func (r *Recorder) RecordPoints(freq string, n int) {
	r.points.WithLabelValues(freq).Observe(float64(n))
}

// RecordLatency records upstream latency in seconds.
func (r *Recorder) RecordLatency(endpoint string, seconds float64) {
	r.latency.WithLabelValues(endpoint).Observe(seconds)
}
