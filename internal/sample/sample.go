// Package sample provides the built-in demo batch used when the user asks
// for suggestions without supplying any tasks. Sample data is a host
// concern; the engine never falls back to it on its own.
package sample

import (
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// Batch returns three demo tasks with due dates rebased relative to today so
// the urgency buckets stay meaningful regardless of when it runs.
func Batch(today task.Date) []task.Raw {
	return []task.Raw{
		demo(1, "Complete project documentation", today.AddDays(5), 7, 3),
		demo(2, "Fix critical login bug", today.AddDays(1), 9, 1),
		demo(3, "Review pull requests", today.AddDays(10), 5, 2),
	}
}

func demo(id int, title string, due task.Date, importance, hours int) task.Raw {
	return task.Raw{
		ID:            id,
		HasID:         true,
		Title:         title,
		DueDate:       due.Format(task.DateLayout),
		Importance:    importance,
		HasImportance: true,
		Hours:         hours,
		HasHours:      true,
	}
}
