package models

// Trace is one line on a chart. A nil Y is a gap and encodes as null.
type Trace struct {
	Name string     `json:"name,omitempty"`
	X    []string   `json:"x"`
	Y    []*float64 `json:"y"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

var DefaultMargin = Margin{L: 40, R: 0, T: 20, B: 30}

type Layout struct {
	Title  string     `json:"title"`
	Margin Margin     `json:"margin"`
	Kind   ChartKind  `json:"kind"`
	Style  ChartStyle `json:"style"`
}

// Figure is what a chart surface redraws from: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Selection is the pair of selector values that drives a redraw.
type Selection struct {
	Freq Frequency `json:"freq"`
	Name string    `json:"name"`
}
