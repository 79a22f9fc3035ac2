package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// TimeRange is an inclusive date window.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// DefaultTimeRange is the window the static charts are drawn over.
var DefaultTimeRange = TimeRange{
	Start: time.Date(1998, 12, 31, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC),
}

// Contains reports whether t falls inside the range. A zero bound is open.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return []byte(`["` + Date{r.Start}.String() + `","` + Date{r.End}.String() + `"]`), nil
}

func (r *TimeRange) UnmarshalJSON(b []byte) error {
	var pair []Date
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("time range needs 2 dates, got %d", len(pair))
	}
	r.Start, r.End = pair[0].Time, pair[1].Time
	return nil
}

// Point is a single (date, value) pair. Value is nil for a gap.
type Point struct {
	Date  time.Time
	Value *float64
}

// Series is one indicator at one frequency, dates and values kept parallel in response order.
// A nil value is a gap reported by the API, not a zero.
type Series struct {
	Name   string
	Freq   Frequency
	Dates  []time.Time
	Values []*float64
}

// NewSeries projects datapoints onto parallel date/value slices without reordering.
func NewSeries(freq Frequency, name string, points []Datapoint) *Series {
	s := &Series{
		Name:   name,
		Freq:   freq,
		Dates:  make([]time.Time, len(points)),
		Values: make([]*float64, len(points)),
	}
	for i, p := range points {
		s.Dates[i] = p.Date.Time
		s.Values[i] = p.Value
	}
	return s
}

func (s *Series) Len() int { return len(s.Dates) }

// Points zips dates and values.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.Dates))
	for i := range s.Dates {
		out[i] = Point{Date: s.Dates[i], Value: s.Values[i]}
	}
	return out
}

// Clip returns a copy holding only the points inside r.
func (s *Series) Clip(r TimeRange) *Series {
	out := &Series{Name: s.Name, Freq: s.Freq}
	for i, d := range s.Dates {
		if r.Contains(d) {
			out.Dates = append(out.Dates, d)
			out.Values = append(out.Values, s.Values[i])
		}
	}
	return out
}

// Frame is several series of one frequency joined on date. Cells[i][j] is the value of
// Names[j] at Dates[i], nil where that series has no observation.
type Frame struct {
	Freq  Frequency
	Names []string
	Dates []time.Time
	Cells [][]*float64
}

// JoinOuter builds a frame over the union of all dates, ascending. When a series repeats a
// date the later observation wins.
func JoinOuter(freq Frequency, series ...*Series) *Frame {
	f := &Frame{Freq: freq, Names: make([]string, len(series))}

	byDate := make(map[int64][]*float64)
	for j, s := range series {
		f.Names[j] = s.Name
		for i, d := range s.Dates {
			row, ok := byDate[d.Unix()]
			if !ok {
				row = make([]*float64, len(series))
				byDate[d.Unix()] = row
				f.Dates = append(f.Dates, d)
			}
			row[j] = copyValue(s.Values[i])
		}
	}

	sort.Slice(f.Dates, func(a, b int) bool { return f.Dates[a].Before(f.Dates[b]) })
	f.Cells = make([][]*float64, len(f.Dates))
	for i, d := range f.Dates {
		f.Cells[i] = byDate[d.Unix()]
	}
	return f
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
