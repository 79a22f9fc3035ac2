package models

import (
	"fmt"
	"strings"
)

// Frequency is the single-character sampling code used by the mini-kep API.
type Frequency string

const (
	Annual    Frequency = "a"
	Quarterly Frequency = "q"
	Monthly   Frequency = "m"
	Weekly    Frequency = "w"
	Daily     Frequency = "d"
)

var frequencyLabels = []struct {
	freq  Frequency
	label string
}{
	{Annual, "Annual"},
	{Quarterly, "Quarterly"},
	{Monthly, "Monthly"},
	{Weekly, "Weekly"},
	{Daily, "Daily"},
}

// Frequencies lists every known code, slowest first.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencyLabels))
	for i, fl := range frequencyLabels {
		out[i] = fl.freq
	}
	return out
}

// Label is the human name of the frequency, or the raw code when unknown.
func (f Frequency) Label() string {
	for _, fl := range frequencyLabels {
		if fl.freq == f {
			return fl.label
		}
	}
	return string(f)
}

// Valid reports whether f is one of the known codes.
func (f Frequency) Valid() bool {
	for _, fl := range frequencyLabels {
		if fl.freq == f {
			return true
		}
	}
	return false
}

func (f Frequency) String() string { return string(f) }

// FrequencyByIndex maps the position of a radio button to its code.
func FrequencyByIndex(i int) (Frequency, error) {
	if i < 0 || i >= len(frequencyLabels) {
		return "", fmt.Errorf("frequency index %d out of range [0,%d)", i, len(frequencyLabels))
	}
	return frequencyLabels[i].freq, nil
}

// ParseFrequency accepts a code ("q") or a label ("Quarterly"), in any case.
func ParseFrequency(s string) (Frequency, error) {
	s = strings.TrimSpace(s)
	for _, fl := range frequencyLabels {
		if strings.EqualFold(string(fl.freq), s) || strings.EqualFold(fl.label, s) {
			return fl.freq, nil
		}
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Option is a label/value pair for a selector widget.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FrequencyOptions lists every frequency as a selector option.
func FrequencyOptions() []Option {
	out := make([]Option, len(frequencyLabels))
	for i, fl := range frequencyLabels {
		out[i] = Option{Label: fl.label, Value: string(fl.freq)}
	}
	return out
}

// NameOptions turns indicator names into options whose label equals the value.
func NameOptions(names []string) []Option {
	out := make([]Option, len(names))
	for i, n := range names {
		out[i] = Option{Label: n, Value: n}
	}
	return out
}
