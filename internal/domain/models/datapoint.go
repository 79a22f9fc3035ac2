package models

import (
	"encoding/json"
	"fmt"
	"time"

	"KepViz/pkg/util"
)

// Date is a calendar date carried as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return util.FormatDate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := util.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Datapoint is one observation as returned by the datapoints endpoint. A null value is
// a gap and stays nil.
type Datapoint struct {
	Date  Date     `json:"date"`
	Freq  string   `json:"freq"`
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}
