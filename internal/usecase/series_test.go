package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"KepViz/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("connection refused")

func gdpPoints() []models.Datapoint {
	return []models.Datapoint{
		dp(models.Quarterly, "GDP_yoy", 1999, time.March, 31, 98.2),
		dp(models.Quarterly, "GDP_yoy", 1999, time.June, 30, 101.1),
		dp(models.Quarterly, "GDP_yoy", 1999, time.September, 30, 103.3),
		dp(models.Quarterly, "GDP_yoy", 1999, time.December, 31, 108.2),
	}
}

func TestSeriesUseCase_Names(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListNames", ctx, models.Quarterly).Return([]string{"GDP_yoy", "CPI_rog"}, nil).Once()
	src.On("ListNames", ctx, models.Daily).Return(nil, errUpstream).Once()

	uc := NewSeriesUseCase(src)

	names, err := uc.Names(ctx, models.Quarterly)
	require.NoError(t, err)
	assert.Equal(t, []string{"GDP_yoy", "CPI_rog"}, names)

	_, err = uc.Names(ctx, models.Daily)
	assert.ErrorIs(t, err, errUpstream)
	src.AssertExpectations(t)
}

func TestSeriesUseCase_SeriesKeepsResponseOrder(t *testing.T) {
	ctx := context.Background()
	points := gdpPoints()
	points[0], points[3] = points[3], points[0]

	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Quarterly, "GDP_yoy").Return(points, nil)

	s, err := NewSeriesUseCase(src).Series(ctx, models.Quarterly, "GDP_yoy")
	require.NoError(t, err)
	assert.Equal(t, "GDP_yoy", s.Name)
	assert.Equal(t, models.Quarterly, s.Freq)
	assert.Equal(t, vals(108.2, 101.1, 103.3, 98.2), s.Values)
	assert.Equal(t, day(1999, time.December, 31), s.Dates[0])
}

func TestSeriesUseCase_SeriesEmptyOnDegradedSource(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Frequency("z"), "GDP_yoy").Return([]models.Datapoint{}, nil)

	dates, values, err := NewSeriesUseCase(src).Columns(ctx, "z", "GDP_yoy")
	require.NoError(t, err)
	assert.Empty(t, dates)
	assert.Empty(t, values)
}

func TestSeriesUseCase_SeriesPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Quarterly, "GDP_yoy").Return(nil, errUpstream)

	_, err := NewSeriesUseCase(src).Series(ctx, models.Quarterly, "GDP_yoy")
	assert.ErrorIs(t, err, errUpstream)
}

func TestSeriesUseCase_GetSeries(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Quarterly, "GDP_yoy").Return(gdpPoints(), nil)
	uc := NewSeriesUseCase(src)

	tests := []struct {
		name   string
		rng    models.TimeRange
		values []*float64
		err    bool
	}{
		{name: "open range keeps everything", values: vals(98.2, 101.1, 103.3, 108.2)},
		{
			name:   "closed range",
			rng:    models.TimeRange{Start: day(1999, time.June, 30), End: day(1999, time.September, 30)},
			values: vals(101.1, 103.3),
		},
		{
			name:   "start only",
			rng:    models.TimeRange{Start: day(1999, time.October, 1)},
			values: vals(108.2),
		},
		{
			name:   "end only",
			rng:    models.TimeRange{End: day(1999, time.April, 1)},
			values: vals(98.2),
		},
		{
			name: "start after end",
			rng:  models.TimeRange{Start: day(2000, time.January, 1), End: day(1999, time.January, 1)},
			err:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := uc.GetSeries(ctx, GetSeriesParams{Freq: models.Quarterly, Name: "GDP_yoy", Range: tt.rng})
			if tt.err {
				assert.ErrorContains(t, err, "is after end")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.values, s.Values)
		})
	}
}

func TestSeriesUseCase_Frame(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Annual, "GDP_yoy").Return([]models.Datapoint{
		dp(models.Annual, "GDP_yoy", 2000, time.December, 31, 110),
		dp(models.Annual, "GDP_yoy", 2001, time.December, 31, 105.1),
	}, nil)
	src.On("ListDatapoints", ctx, models.Annual, "CPI_rog").Return([]models.Datapoint{
		dp(models.Annual, "CPI_rog", 2001, time.December, 31, 118.6),
		dp(models.Annual, "CPI_rog", 2002, time.December, 31, 115.1),
	}, nil)

	f, err := NewSeriesUseCase(src).Frame(ctx, models.Annual, "GDP_yoy", "CPI_rog")
	require.NoError(t, err)
	assert.Equal(t, []string{"GDP_yoy", "CPI_rog"}, f.Names)
	require.Len(t, f.Dates, 3)
	assert.Equal(t, day(2000, time.December, 31), f.Dates[0])
	assert.Nil(t, f.Cells[0][1])
	assert.Nil(t, f.Cells[2][0])
	require.NotNil(t, f.Cells[1][0])
	assert.Equal(t, 105.1, *f.Cells[1][0])
	assert.Equal(t, 118.6, *f.Cells[1][1])
}

func TestSeriesUseCase_FrameErrors(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Annual, "GDP_yoy").Return(nil, errUpstream)
	uc := NewSeriesUseCase(src)

	_, err := uc.Frame(ctx, models.Annual)
	assert.ErrorIs(t, err, ErrNoNames)

	_, err = uc.Frame(ctx, models.Annual, "GDP_yoy", "CPI_rog")
	assert.ErrorIs(t, err, errUpstream)
	src.AssertNotCalled(t, "ListDatapoints", ctx, models.Annual, "CPI_rog")
	src.AssertNumberOfCalls(t, "ListDatapoints", 1)
}

func TestSeriesUseCase_NoCaching(t *testing.T) {
	ctx := context.Background()
	src := new(MockDataSource)
	src.On("ListDatapoints", ctx, models.Quarterly, "GDP_yoy").Return(gdpPoints(), nil)
	uc := NewSeriesUseCase(src)

	for i := 0; i < 3; i++ {
		_, err := uc.Series(ctx, models.Quarterly, "GDP_yoy")
		require.NoError(t, err)
	}
	src.AssertNumberOfCalls(t, "ListDatapoints", 3)
	src.AssertCalled(t, "ListDatapoints", mock.Anything, models.Quarterly, "GDP_yoy")
}

func TestInferFrequency(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  models.Frequency
		ok    bool
	}{
		{name: "quarter ends", dates: []time.Time{day(1999, time.March, 31), day(1999, time.June, 30)}, want: models.Quarterly, ok: true},
		{name: "year ends", dates: []time.Time{day(1999, time.December, 31), day(2000, time.December, 31)}, want: models.Annual, ok: true},
		{name: "month ends", dates: []time.Time{day(1999, time.January, 31), day(1999, time.February, 28)}, want: models.Monthly, ok: true},
		{name: "weeks", dates: []time.Time{day(2017, time.January, 6), day(2017, time.January, 13)}, want: models.Weekly, ok: true},
		{name: "days", dates: []time.Time{day(2017, time.January, 9), day(2017, time.January, 10)}, want: models.Daily, ok: true},
		{name: "weekend gap", dates: []time.Time{day(2017, time.January, 6), day(2017, time.January, 9)}, want: models.Daily, ok: true},
		{name: "descending input", dates: []time.Time{day(2000, time.December, 31), day(1999, time.December, 31)}, want: models.Annual, ok: true},
		{name: "single date", dates: []time.Time{day(2000, time.December, 31)}},
		{name: "duplicate dates", dates: []time.Time{day(2000, time.December, 31), day(2000, time.December, 31)}},
		{name: "half year", dates: []time.Time{day(2000, time.June, 30), day(2000, time.December, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferFrequency(tt.dates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
