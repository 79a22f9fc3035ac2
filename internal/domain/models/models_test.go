package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

func vals(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = ptr(vs[i])
	}
	return out
}

func TestFrequencies(t *testing.T) {
	assert.Equal(t, []Frequency{Annual, Quarterly, Monthly, Weekly, Daily}, Frequencies())
	assert.Equal(t, "Quarterly", Quarterly.Label())
	assert.Equal(t, "x", Frequency("x").Label())
	assert.True(t, Weekly.Valid())
	assert.False(t, Frequency("x").Valid())
}

func TestFrequencyByIndex(t *testing.T) {
	f, err := FrequencyByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, Annual, f)

	f, err = FrequencyByIndex(4)
	require.NoError(t, err)
	assert.Equal(t, Daily, f)

	_, err = FrequencyByIndex(5)
	assert.Error(t, err)
}

func TestParseFrequency(t *testing.T) {
	for in, want := range map[string]Frequency{"q": Quarterly, "Q": Quarterly, " D ": Daily, "monthly": Monthly, " Annual ": Annual} {
		got, err := ParseFrequency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFrequency("hourly")
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	opts := FrequencyOptions()
	require.Len(t, opts, 5)
	assert.Equal(t, Option{Label: "Annual", Value: "a"}, opts[0])
	assert.Equal(t, Option{Label: "Weekly", Value: "w"}, opts[3])

	assert.Equal(t, []Option{{Label: "GDP_yoy", Value: "GDP_yoy"}}, NameOptions([]string{"GDP_yoy"}))
	assert.Empty(t, NameOptions(nil))
}

func TestDatapointJSON(t *testing.T) {
	var dp Datapoint
	err := json.Unmarshal([]byte(`{"date":"1999-12-31","freq":"a","name":"GDP_yoy","value":106.4}`), &dp)
	require.NoError(t, err)
	assert.Equal(t, day(1999, 12, 31), dp.Date.Time)
	assert.Equal(t, "a", dp.Freq)
	require.NotNil(t, dp.Value)
	assert.Equal(t, 106.4, *dp.Value)

	b, err := json.Marshal(dp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"1999-12-31","freq":"a","name":"GDP_yoy","value":106.4}`, string(b))

	var gap Datapoint
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2000-03-31","value":null}`), &gap))
	assert.Nil(t, gap.Value)
	b, err = json.Marshal(gap)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"value":null`)

	assert.Error(t, json.Unmarshal([]byte(`{"date":19991231}`), &dp))
	assert.Error(t, json.Unmarshal([]byte(`{"date":"31/12/1999"}`), &dp))
}

func TestNewSeriesKeepsOrder(t *testing.T) {
	points := []Datapoint{
		{Date: NewDate(2000, 3, 31), Value: ptr(107.1)},
		{Date: NewDate(1999, 12, 31), Value: ptr(106.4)},
		{Date: NewDate(2000, 6, 30)},
	}
	s := NewSeries(Quarterly, "GDP_yoy", points)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []time.Time{day(2000, 3, 31), day(1999, 12, 31), day(2000, 6, 30)}, s.Dates)
	assert.Equal(t, []*float64{ptr(107.1), ptr(106.4), nil}, s.Values)
	assert.Equal(t, Point{Date: day(1999, 12, 31), Value: ptr(106.4)}, s.Points()[1])
	assert.Nil(t, s.Points()[2].Value)
}

func TestSeriesClip(t *testing.T) {
	s := &Series{
		Name:   "CPI_rog",
		Dates:  []time.Time{day(1997, 12, 31), day(2005, 12, 31), day(2018, 12, 31)},
		Values: vals(1, 2, 3),
	}

	got := s.Clip(DefaultTimeRange)
	assert.Equal(t, vals(2), got.Values)
	assert.Equal(t, "CPI_rog", got.Name)

	open := s.Clip(TimeRange{Start: day(2000, 1, 1)})
	assert.Equal(t, vals(2, 3), open.Values)
}

func TestJoinOuter(t *testing.T) {
	gdp := &Series{Name: "GDP_yoy", Dates: []time.Time{day(2000, 12, 31), day(1999, 12, 31)}, Values: vals(110, 106.4)}
	cpi := &Series{Name: "CPI_rog", Dates: []time.Time{day(2000, 12, 31), day(2001, 12, 31)}, Values: []*float64{ptr(120.2), nil}}

	f := JoinOuter(Annual, gdp, cpi)

	assert.Equal(t, []string{"GDP_yoy", "CPI_rog"}, f.Names)
	assert.Equal(t, []time.Time{day(1999, 12, 31), day(2000, 12, 31), day(2001, 12, 31)}, f.Dates)
	require.Len(t, f.Cells, 3)
	assert.Equal(t, 106.4, *f.Cells[0][0])
	assert.Nil(t, f.Cells[0][1])
	assert.Equal(t, 110.0, *f.Cells[1][0])
	assert.Equal(t, 120.2, *f.Cells[1][1])
	assert.Nil(t, f.Cells[2][0])
	assert.Nil(t, f.Cells[2][1])

	*gdp.Values[0] = 0
	assert.Equal(t, 110.0, *f.Cells[1][0])
}

func TestChartPresets(t *testing.T) {
	st, err := StyleFor(KindSpline)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{2, 0.6}, st.FigSize)
	assert.False(t, st.AxisOn)
	assert.Equal(t, "ggplot", st.Style)

	chart, err := StyleFor(KindChart)
	require.NoError(t, err)
	stack, err := StyleFor(KindStack)
	require.NoError(t, err)
	assert.Equal(t, chart, stack)
	assert.Equal(t, "bmh", chart.Style)
	assert.True(t, chart.AxisOn)
	assert.Equal(t, DefaultTimeRange, chart.TimeRange)

	_, err = StyleFor("pie")
	assert.True(t, errors.Is(err, ErrUnknownChartKind))

	k, err := ParseChartKind("stack")
	require.NoError(t, err)
	assert.Equal(t, KindStack, k)
	_, err = ParseChartKind("")
	assert.ErrorIs(t, err, ErrUnknownChartKind)
}

func TestChartStyleJSON(t *testing.T) {
	b, err := json.Marshal(SplineStyle)
	require.NoError(t, err)
	assert.JSONEq(t, `{"timerange":["1998-12-31","2017-12-31"],"figsize":[2,0.6],"style":"ggplot","facecolor":"white","auto_x":false,"axis_on":false}`, string(b))
}

func TestTimeRangeUnmarshal(t *testing.T) {
	var r TimeRange
	require.NoError(t, json.Unmarshal([]byte(`["1998-12-31","2017-12-31"]`), &r))
	assert.True(t, r.Start.Equal(DefaultTimeRange.Start))
	assert.True(t, r.End.Equal(DefaultTimeRange.End))

	assert.Error(t, json.Unmarshal([]byte(`["1998-12-31"]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"start":"1998-12-31"}`), &r))
}
