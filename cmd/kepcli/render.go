package main

import (
	"fmt"
	"io"
	"strconv"

	"KepViz/internal/domain/models"
	"KepViz/pkg/util"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderOptions(w io.Writer, title string, opts []models.Option) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"label", "value"})
	for _, o := range opts {
		t.AppendRow(table.Row{o.Label, o.Value})
	}
	t.AppendFooter(table.Row{"total", len(opts)})
	t.Render()
}

func renderSeries(w io.Writer, s *models.Series, kind models.ChartKind, style models.ChartStyle) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s (%s, %s/%s)", s.Name, s.Freq, kind, style.Style))
	t.AppendHeader(table.Row{"date", "value"})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, p := range s.Points() {
		t.AppendRow(table.Row{util.FormatDate(p.Date), formatValue(p.Value)})
	}
	t.AppendFooter(table.Row{"points", s.Len()})
	t.Render()
}

func renderFrame(w io.Writer, f *models.Frame) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("frame (%s)", f.Freq))

	header := table.Row{"date"}
	configs := make([]table.ColumnConfig, 0, len(f.Names))
	for j, n := range f.Names {
		header = append(header, n)
		configs = append(configs, table.ColumnConfig{Number: j + 2, Align: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for i, d := range f.Dates {
		row := table.Row{util.FormatDate(d)}
		for _, cell := range f.Cells[i] {
			row = append(row, formatValue(cell))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// formatValue leaves gaps blank.
func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
