package task

import (
	"errors"
	"fmt"
)

// Normalization defaults and bounds.
const (
	DefaultImportance = 5
	MinImportance     = 1
	MaxImportance     = 10
	MinHours          = 1
)

// ErrNoTitle marks a record that cannot be identified at all. Such records
// are excluded from the batch; everything else is repaired with a warning.
var ErrNoTitle = errors.New("task has no usable title")

// Normalize validates one raw record and returns the corrected task plus any
// warnings describing the repairs. It only fails for a missing title.
func Normalize(raw Raw) (Task, error) {
	if raw.Title == "" {
		return Task{}, ErrNoTitle
	}

	t := Task{
		ID:         raw.ID,
		Title:      raw.Title,
		Importance: DefaultImportance,
		Hours:      MinHours,
	}
	var warnings []string

	if raw.DueDate != "" {
		if due, ok := ParseDate(raw.DueDate); ok {
			t.Due = &due
		} else {
			warnings = append(warnings, fmt.Sprintf("unparseable due_date %q, treated as no due date", raw.DueDate))
		}
	} else {
		warnings = append(warnings, "missing due_date")
	}

	switch {
	case raw.HasImportance && raw.Importance < MinImportance:
		t.Importance = MinImportance
		warnings = append(warnings, fmt.Sprintf("importance %d below minimum, adjusted to %d", raw.Importance, MinImportance))
	case raw.HasImportance && raw.Importance > MaxImportance:
		t.Importance = MaxImportance
		warnings = append(warnings, fmt.Sprintf("importance %d above maximum, adjusted to %d", raw.Importance, MaxImportance))
	case raw.HasImportance:
		t.Importance = raw.Importance
	case raw.BadImportance != "":
		warnings = append(warnings, fmt.Sprintf("invalid importance %q, using default (%d)", raw.BadImportance, DefaultImportance))
	default:
		warnings = append(warnings, fmt.Sprintf("missing importance, using default (%d)", DefaultImportance))
	}

	switch {
	case raw.HasHours && raw.Hours < MinHours:
		t.Hours = MinHours
		warnings = append(warnings, fmt.Sprintf("estimated_hours %d below minimum, adjusted to %d", raw.Hours, MinHours))
	case raw.HasHours:
		t.Hours = raw.Hours
	case raw.BadHours != "":
		warnings = append(warnings, fmt.Sprintf("invalid estimated_hours %q, using default (%d)", raw.BadHours, MinHours))
	}

	if raw.BadDeps != "" {
		warnings = append(warnings, "invalid dependencies format, using empty list")
	}
	for _, dep := range raw.Deps {
		t.DepsDisplay = append(t.DepsDisplay, dep.Text)
		if dep.OK {
			t.Deps = append(t.Deps, dep.ID)
		} else {
			warnings = append(warnings, fmt.Sprintf("dependency entry %s is not a task id, ignored", dep.Text))
		}
	}

	t.Warnings = warnings
	return t, nil
}
