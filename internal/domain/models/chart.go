package models

import (
	"errors"
	"fmt"
)

var ErrUnknownChartKind = errors.New("unknown chart kind")

// ChartKind selects a style preset.
type ChartKind string

const (
	KindSpline ChartKind = "spline"
	KindChart  ChartKind = "chart"
	KindStack  ChartKind = "stack"
)

// ChartStyle is the full set of formatting options a chart surface needs.
type ChartStyle struct {
	TimeRange TimeRange  `json:"timerange"`
	FigSize   [2]float64 `json:"figsize"`
	Style     string     `json:"style"`
	FaceColor string     `json:"facecolor"`
	AutoX     bool       `json:"auto_x"`
	AxisOn    bool       `json:"axis_on"`
}

// SplineStyle is the small axis-less sparkline preset.
var SplineStyle = ChartStyle{
	TimeRange: DefaultTimeRange,
	FigSize:   [2]float64{2, 0.6},
	Style:     "ggplot",
	FaceColor: "white",
	AutoX:     false,
	AxisOn:    false,
}

// IndicatorStyle is the full-size preset shared by single and stacked charts.
var IndicatorStyle = ChartStyle{
	TimeRange: DefaultTimeRange,
	FigSize:   [2]float64{5, 5},
	Style:     "bmh",
	FaceColor: "white",
	AutoX:     false,
	AxisOn:    true,
}

var chartPresets = map[ChartKind]ChartStyle{
	KindSpline: SplineStyle,
	KindChart:  IndicatorStyle,
	KindStack:  IndicatorStyle,
}

// ChartKinds lists the known tags.
func ChartKinds() []ChartKind {
	return []ChartKind{KindSpline, KindChart, KindStack}
}

// ParseChartKind validates a tag.
func ParseChartKind(s string) (ChartKind, error) {
	k := ChartKind(s)
	if _, ok := chartPresets[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChartKind, s)
	}
	return k, nil
}

// StyleFor returns a copy of the preset for kind.
func StyleFor(kind ChartKind) (ChartStyle, error) {
	st, ok := chartPresets[kind]
	if !ok {
		return ChartStyle{}, fmt.Errorf("%w: %q", ErrUnknownChartKind, kind)
	}
	return st, nil
}
