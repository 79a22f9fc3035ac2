package models

// NamesRequest selects the names list for one frequency code.
type NamesRequest struct {
	Freq string `param:"freq" validate:"required,max=8"`
}

// NamesByIndexRequest selects the names list by the position of a frequency in the
// selector, as a radio-button group reports it.
type NamesByIndexRequest struct {
	FreqIndex string `query:"freq_index" validate:"required,numeric"`
}

// SeriesRequest selects one indicator. From and To are optional YYYY-MM-DD bounds.
type SeriesRequest struct {
	Freq string `query:"freq" validate:"required,max=8"`
	Name string `query:"name" validate:"required,max=128"`
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// FigureRequest selects one indicator and a chart preset. An empty kind uses the viewer's.
type FigureRequest struct {
	Freq string `query:"freq" validate:"required,max=8"`
	Name string `query:"name" validate:"required,max=128"`
	Kind string `query:"kind" validate:"omitempty,max=16"`
}

// FrameRequest selects several indicators as a comma-separated list. The stack figure
// takes the same query.
type FrameRequest struct {
	Freq  string `query:"freq" validate:"required,max=8"`
	Names string `query:"names" validate:"required"`
}

// SeriesResponse is a series with its dates rendered as YYYY-MM-DD. Gaps are null.
type SeriesResponse struct {
	Name   string     `json:"name"`
	Freq   Frequency  `json:"freq"`
	Dates  []string   `json:"dates"`
	Values []*float64 `json:"values"`
}

// FrameResponse lists the joined rows; a nil cell is JSON null.
type FrameResponse struct {
	Freq  Frequency    `json:"freq"`
	Names []string     `json:"names"`
	Dates []string     `json:"dates"`
	Rows  [][]*float64 `json:"rows"`
}
