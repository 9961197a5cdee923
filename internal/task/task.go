package task

import (
	"encoding/json"
	"time"
)

// DateLayout is the canonical wire format for due dates.
const DateLayout = "2006-01-02"

// altDateLayout is the US-style fallback accepted on input.
const altDateLayout = "01/02/2006"

// Date is a calendar date with no time component, normalized to UTC midnight.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a date in either ISO (2006-01-02) or US (01/02/2006) form.
func ParseDate(s string) (Date, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), true
	}
	if t, err := time.Parse(altDateLayout, s); err == nil {
		return DateOf(t), true
	}
	return Date{}, false
}

// DaysFrom returns the whole number of days from today until d.
// Negative means d is in the past.
func (d Date) DaysFrom(today Date) int {
	return int(d.Sub(today.Time).Hours() / 24)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}

// DepEntry is a single entry from a raw task's dependency list.
// Text preserves the entry as written; ID is only meaningful when OK is true.
type DepEntry struct {
	Text string
	ID   int
	OK   bool
}

// Raw is a task record as supplied by the caller, before validation.
// Optional fields carry presence flags, and fields that arrived with the
// wrong type keep their original text so the validator can warn about them.
type Raw struct {
	ID    int
	HasID bool

	Title   string
	DueDate string // as written; empty means absent

	Importance    int
	HasImportance bool
	BadImportance string // original text when present but not numeric

	Hours    int
	HasHours bool
	BadHours string

	Deps    []DepEntry
	BadDeps string // original text when dependencies was present but not a list
}

// Task is a validated, normalized task ready for graph analysis and scoring.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Due         *Date    `json:"due_date"`
	Importance  int      `json:"importance"`
	Hours       int      `json:"estimated_hours"`
	Deps        []int    `json:"-"`
	DepsDisplay []string `json:"dependencies"`
	Warnings    []string `json:"validation_warnings,omitempty"`
}
