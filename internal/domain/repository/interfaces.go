package repository

import (
	"context"

	"KepViz/internal/domain/models"
)

// DataSource is the remote time-series API.
type DataSource interface {
	// ListNames fails on any transport, status or decoding problem.
	ListNames(ctx context.Context, freq models.Frequency) ([]string, error)
	// ListDatapoints returns an empty slice when the body is not a JSON list.
	ListDatapoints(ctx context.Context, freq models.Frequency, name string) ([]models.Datapoint, error)
}

type Metrics interface {
	RecordRequest(endpoint, outcome string)
	RecordDegraded(freq string)
	RecordPoints(freq string, n int)
	RecordLatency(endpoint string, seconds float64)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordRequest(string, string) {}
func (NopMetrics) RecordDegraded(string) {}
func (NopMetrics) RecordPoints(string, int) {}
func (NopMetrics) RecordLatency(string, float64) {}
