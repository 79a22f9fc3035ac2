package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"KepViz/internal/domain/models"
	domrepo "KepViz/internal/domain/repository"
	"KepViz/pkg/util"
)

var ErrNoNames = errors.New("at least one indicator name is required")

// SeriesUseCase reshapes what the data source returns. Every call goes to the source;
// nothing is kept between calls.
type SeriesUseCase struct {
	src domrepo.DataSource
}

func NewSeriesUseCase(src domrepo.DataSource) *SeriesUseCase {
	return &SeriesUseCase{src: src}
}

type GetSeriesParams struct {
	Freq models.Frequency
	Name string
	// Zero bounds leave that side open.
	Range models.TimeRange
}

// Names lists indicators for freq; errors propagate unchanged.
func (uc *SeriesUseCase) Names(ctx context.Context, freq models.Frequency) ([]string, error) {
	return uc.src.ListNames(ctx, freq)
}

// Series returns one indicator as an indexed series in response order.
func (uc *SeriesUseCase) Series(ctx context.Context, freq models.Frequency, name string) (*models.Series, error) {
	points, err := uc.src.ListDatapoints(ctx, freq, name)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	return models.NewSeries(freq, name, points), nil
}

// GetSeries is Series clipped to p.Range.
func (uc *SeriesUseCase) GetSeries(ctx context.Context, p GetSeriesParams) (*models.Series, error) {
	s, err := uc.Series(ctx, p.Freq, p.Name)
	if err != nil {
		return nil, err
	}
	if p.Range.Start.IsZero() && p.Range.End.IsZero() {
		return s, nil
	}
	if !p.Range.Start.IsZero() && !p.Range.End.IsZero() && p.Range.Start.After(p.Range.End) {
		return nil, fmt.Errorf("get series: range start %s is after end %s",
			util.FormatDate(p.Range.Start), util.FormatDate(p.Range.End))
	}
	return s.Clip(p.Range), nil
}

// Columns returns the parallel dates and values of one indicator; nil values are gaps.
func (uc *SeriesUseCase) Columns(ctx context.Context, freq models.Frequency, name string) ([]time.Time, []*float64, error) {
	s, err := uc.Series(ctx, freq, name)
	if err != nil {
		return nil, nil, err
	}
	return s.Dates, s.Values, nil
}

// Frame fetches each name in turn and outer-joins them on date.
func (uc *SeriesUseCase) Frame(ctx context.Context, freq models.Frequency, names ...string) (*models.Frame, error) {
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	series := make([]*models.Series, 0, len(names))
	for _, name := range names {
		s, err := uc.Series(ctx, freq, name)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", name, err)
		}
		series = append(series, s)
	}
	return models.JoinOuter(freq, series...), nil
}

// InferFrequency guesses the sampling code from the step between the first two dates.
// It returns false for fewer than two dates or a step that matches no known frequency.
func InferFrequency(dates []time.Time) (models.Frequency, bool) {
	if len(dates) < 2 {
		return "", false
	}
	a, b := dates[0], dates[1]
	if b.Before(a) {
		a, b = b, a
	}
	days := int(b.Sub(a).Hours() / 24)

	switch {
	case days <= 0:
		return "", false
	case days < 7:
		// business-day series skip weekends
		return models.Daily, true
	case days < 28:
		return models.Weekly, true
	}

	switch util.MonthsBetween(a, b) {
	case 1:
		return models.Monthly, true
	case 3:
		return models.Quarterly, true
	case 12:
		return models.Annual, true
	}
	return "", false
}
