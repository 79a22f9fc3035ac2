package usecase

import (
	"context"
	"fmt"
	"strings"

	"KepViz/internal/domain/models"
	"KepViz/pkg/util"
)

// ViewerContext is the startup state of the viewer. It is built once and only read after.
type ViewerContext struct {
	Initial     models.Selection
	Frequencies []models.Option
	Kind        models.ChartKind
	Margin      models.Margin
}

// NewViewerContext validates the configured defaults.
func NewViewerContext(initialFreq, initialName, kind string) (ViewerContext, error) {
	freq, err := models.ParseFrequency(initialFreq)
	if err != nil {
		return ViewerContext{}, fmt.Errorf("viewer initial frequency: %w", err)
	}
	if strings.TrimSpace(initialName) == "" {
		return ViewerContext{}, fmt.Errorf("viewer initial name is required")
	}
	k, err := models.ParseChartKind(kind)
	if err != nil {
		return ViewerContext{}, fmt.Errorf("viewer chart kind: %w", err)
	}
	return ViewerContext{
		Initial:     models.Selection{Freq: freq, Name: initialName},
		Frequencies: models.FrequencyOptions(),
		Kind:        k,
		Margin:      models.DefaultMargin,
	}, nil
}

// InitialView is everything a surface needs to draw before any selector changes.
type InitialView struct {
	Selection models.Selection `json:"selection"`
	Options   []models.Option  `json:"frequencies"`
	Names     []models.Option  `json:"names"`
	Figure    *models.Figure   `json:"figure"`
}

// Viewer answers the two selector callbacks: a new frequency refreshes the names list,
// a new frequency or name redraws the figure.
type Viewer struct {
	vc     ViewerContext
	series *SeriesUseCase
}

func NewViewer(vc ViewerContext, series *SeriesUseCase) *Viewer {
	return &Viewer{vc: vc, series: series}
}

// Context returns a copy of the startup state.
func (v *Viewer) Context() ViewerContext {
	vc := v.vc
	vc.Frequencies = append([]models.Option(nil), v.vc.Frequencies...)
	return vc
}

func (v *Viewer) FrequencyOptions() []models.Option {
	return append([]models.Option(nil), v.vc.Frequencies...)
}

// UpdateNames lists indicator names for freq as selector options.
func (v *Viewer) UpdateNames(ctx context.Context, freq models.Frequency) ([]models.Option, error) {
	names, err := v.series.Names(ctx, freq)
	if err != nil {
		return nil, fmt.Errorf("update names: %w", err)
	}
	return models.NameOptions(names), nil
}

// UpdateGraph redraws the single-line figure with the viewer's chart kind.
func (v *Viewer) UpdateGraph(ctx context.Context, freq models.Frequency, name string) (*models.Figure, error) {
	return v.Figure(ctx, freq, name, v.vc.Kind)
}

// Figure draws one indicator with an explicit chart kind. The stack kind goes through
// StackFigure so a one-name stack matches a many-name one.
func (v *Viewer) Figure(ctx context.Context, freq models.Frequency, name string, kind models.ChartKind) (*models.Figure, error) {
	if kind == models.KindStack {
		return v.StackFigure(ctx, freq, name)
	}
	style, err := models.StyleFor(kind)
	if err != nil {
		return nil, err
	}
	s, err := v.series.Series(ctx, freq, name)
	if err != nil {
		return nil, fmt.Errorf("update graph: %w", err)
	}
	return &models.Figure{
		Data:   []models.Trace{traceOf(s)},
		Layout: models.Layout{Title: name, Margin: v.vc.Margin, Kind: kind, Style: style},
	}, nil
}

// StackFigure draws several indicators of one frequency with the stack preset. Every trace
// spans the joined dates; a date one indicator lacks is a null point.
func (v *Viewer) StackFigure(ctx context.Context, freq models.Frequency, names ...string) (*models.Figure, error) {
	frame, err := v.series.Frame(ctx, freq, names...)
	if err != nil {
		return nil, fmt.Errorf("stack figure: %w", err)
	}
	style, err := models.StyleFor(models.KindStack)
	if err != nil {
		return nil, err
	}
	fig := &models.Figure{
		Data:   make([]models.Trace, len(frame.Names)),
		Layout: models.Layout{Title: strings.Join(frame.Names, ", "), Margin: v.vc.Margin, Kind: models.KindStack, Style: style},
	}
	x := util.FormatDates(frame.Dates)
	for j, name := range frame.Names {
		y := make([]*float64, len(frame.Dates))
		for i, row := range frame.Cells {
			y[i] = row[j]
		}
		fig.Data[j] = models.Trace{Name: name, X: x, Y: y}
	}
	return fig, nil
}

// Initialize builds the first screen from the startup selection.
func (v *Viewer) Initialize(ctx context.Context) (*InitialView, error) {
	sel := v.vc.Initial
	names, err := v.UpdateNames(ctx, sel.Freq)
	if err != nil {
		return nil, err
	}
	fig, err := v.UpdateGraph(ctx, sel.Freq, sel.Name)
	if err != nil {
		return nil, err
	}
	return &InitialView{
		Selection: sel,
		Options:   v.FrequencyOptions(),
		Names:     names,
		Figure:    fig,
	}, nil
}

func traceOf(s *models.Series) models.Trace {
	values := s.Values
	if values == nil {
		values = []*float64{}
	}
	return models.Trace{Name: s.Name, X: util.FormatDates(s.Dates), Y: values}
}
