package minikep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"KepViz/internal/domain/models"
	drepo "KepViz/internal/domain/repository"
	xhttp "KepViz/pkg/http"
	applogger "KepViz/pkg/logger"
)

const (
	endpointNames      = "names"
	endpointDatapoints = "datapoints"
)

// ErrMalformedResponse is returned when a names response is valid JSON but not a list.
var ErrMalformedResponse = errors.New("minikep: malformed response")

// ErrMissingDate is returned when a datapoint in a list carries no date.
var ErrMissingDate = errors.New("minikep: datapoint without date")

var _ drepo.DataSource = (*Client)(nil)

// Client implements DataSource against the mini-kep HTTP API. It adds no retries, no
// caching and no timeout of its own.
type Client struct {
	baseURL string
	http    *xhttp.Client
	metrics drepo.Metrics
	l       *applogger.Logger
}

// New creates a client for baseURL, e.g. http://minikep-db.herokuapp.com/api.
func New(baseURL string, httpClient *xhttp.Client, metrics drepo.Metrics, l *applogger.Logger) *Client {
	if httpClient == nil {
		httpClient = xhttp.NewClient()
	}
	if metrics == nil {
		metrics = drepo.NopMetrics{}
	}
	if l == nil {
		l = applogger.Nop()
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		metrics: metrics,
		l:       l.With(applogger.String("component", "minikep")),
	}
}

// NamesURL is GET {base}/names/{freq}.
func (c *Client) NamesURL(freq models.Frequency) string {
	return xhttp.JoinURL(c.baseURL, endpointNames, string(freq))
}

// DatapointsURL is GET {base}/datapoints without its query.
func (c *Client) DatapointsURL() string {
	return xhttp.JoinURL(c.baseURL, endpointDatapoints)
}

// ListNames returns the indicator names published at freq. The code is sent as given.
func (c *Client) ListNames(ctx context.Context, freq models.Frequency) ([]string, error) {
	start := time.Now()
	var names []string
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{URL: c.NamesURL(freq)}, &names)
	c.metrics.RecordLatency(endpointNames, time.Since(start).Seconds())

	if err == nil && names == nil {
		err = ErrMalformedResponse
	}
	if err != nil {
		c.metrics.RecordRequest(endpointNames, "error")
		c.l.Error("list names failed", applogger.String("freq", string(freq)), applogger.Error(err))
		return nil, fmt.Errorf("list names %q: %w", freq, err)
	}

	c.metrics.RecordRequest(endpointNames, "ok")
	c.l.Debug("names listed",
		applogger.String("freq", string(freq)),
		applogger.Int("count", len(names)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return names, nil
}

// ListDatapoints fetches observations for one indicator. Whatever the status code, a body
// that is not a JSON list (an error object, garbage) yields an empty slice and no error.
func (c *Client) ListDatapoints(ctx context.Context, freq models.Frequency, name string) ([]models.Datapoint, error) {
	start := time.Now()
	resp, err := c.http.Do(ctx, &xhttp.RequestOptions{
		URL: c.DatapointsURL(),
		QueryParams: map[string][]string{
			"freq":   {string(freq)},
			"name":   {name},
			"format": {"json"},
		},
	})
	c.metrics.RecordLatency(endpointDatapoints, time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordRequest(endpointDatapoints, "error")
		c.l.Error("list datapoints failed",
			applogger.String("freq", string(freq)),
			applogger.String("name", name),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("list datapoints %q/%q: %w", freq, name, err)
	}

	points, ok, err := decodeDatapoints(resp.Body)
	if err != nil {
		c.metrics.RecordRequest(endpointDatapoints, "error")
		return nil, fmt.Errorf("list datapoints %q/%q: %w", freq, name, err)
	}
	if !ok {
		c.metrics.RecordRequest(endpointDatapoints, "degraded")
		c.metrics.RecordDegraded(string(freq))
		c.l.Warn("datapoints response is not a list, using empty result",
			applogger.String("freq", string(freq)),
			applogger.String("name", name),
			applogger.Int("status", resp.StatusCode),
			applogger.Bool("status_ok", resp.OK()),
			applogger.String("body", preview(resp.Body)),
		)
		return []models.Datapoint{}, nil
	}

	c.metrics.RecordRequest(endpointDatapoints, "ok")
	c.metrics.RecordPoints(string(freq), len(points))
	c.l.Debug("datapoints fetched",
		applogger.String("freq", string(freq)),
		applogger.String("name", name),
		applogger.Int("count", len(points)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return points, nil
}

// ToSeries projects ListDatapoints onto parallel dates and values in response order.
// A null value stays nil.
func (c *Client) ToSeries(ctx context.Context, freq models.Frequency, name string) ([]time.Time, []*float64, error) {
	points, err := c.ListDatapoints(ctx, freq, name)
	if err != nil {
		return nil, nil, err
	}
	s := models.NewSeries(freq, name, points)
	return s.Dates, s.Values, nil
}

// decodeDatapoints reports ok=false when body is not a JSON list. A list whose items
// cannot be decoded, or that lack a date, is an error.
func decodeDatapoints(body []byte) ([]models.Datapoint, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' || !json.Valid(trimmed) {
		return nil, false, nil
	}

	points := []models.Datapoint{}
	if err := json.Unmarshal(trimmed, &points); err != nil {
		return nil, true, fmt.Errorf("decode datapoints: %w", err)
	}
	for i, p := range points {
		if p.Date.IsZero() {
			return nil, true, fmt.Errorf("decode datapoints: item %d: %w", i, ErrMissingDate)
		}
	}
	return points, true, nil
}

func preview(b []byte) string {
	const limit = 200
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
