// Package engine ties validation, graph analysis and scoring into the two
// operations exposed to hosts. Every call is an independent, pure computation
// over its input batch: the engine keeps no clock and no cross-call state.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/graph"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// Result is the output of one Analyze call.
type Result struct {
	Strategy scoring.Strategy `json:"strategy_used"`
	Ranked   []scoring.Scored `json:"tasks"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Analyze validates the batch, runs dependency analysis, scores every task
// under the strategy and returns them ranked. Data defects never abort the
// batch; they surface as warnings on the task or the result.
func Analyze(batch []task.Raw, strategy scoring.Strategy, today task.Date) Result {
	tasks, warnings := prepare(batch)

	deps := graph.Analyze(tasks)
	warnings = append(warnings, deps.CycleWarnings...)
	for i := range tasks {
		tasks[i].Warnings = append(tasks[i].Warnings, deps.TaskWarnings[tasks[i].ID]...)
	}

	ranked := make([]scoring.Scored, len(tasks))
	for i, t := range tasks {
		ranked[i] = scoring.Score(t, deps.BlockedCount(t.ID), strategy, today)
	}
	rank(ranked, strategy)

	return Result{Strategy: strategy, Ranked: ranked, Warnings: warnings}
}

// prepare normalizes each record, rejects the unusable ones with a batch
// warning, auto-assigns missing ids past the batch maximum and flags
// duplicate ids.
func prepare(batch []task.Raw) ([]task.Task, []string) {
	var warnings []string

	maxID := 0
	for _, raw := range batch {
		if raw.HasID && raw.ID > maxID {
			maxID = raw.ID
		}
	}

	var tasks []task.Task
	seen := make(map[int]bool)
	nextID := maxID
	for i, raw := range batch {
		t, err := task.Normalize(raw)
		if err != nil {
			if errors.Is(err, task.ErrNoTitle) {
				warnings = append(warnings, fmt.Sprintf("record %d rejected: no usable title", i+1))
				continue
			}
			warnings = append(warnings, fmt.Sprintf("record %d rejected: %v", i+1, err))
			continue
		}

		if !raw.HasID {
			nextID++
			t.ID = nextID
			t.Warnings = append(t.Warnings, fmt.Sprintf("missing id, assigned %d", t.ID))
		}
		if seen[t.ID] {
			t.Warnings = append(t.Warnings, fmt.Sprintf("duplicate id %d; this task cannot be looked up uniquely", t.ID))
		}
		seen[t.ID] = true

		tasks = append(tasks, t)
	}

	return tasks, warnings
}

// rank orders by score descending. Ties break on the strategy's declared
// field — due date ascending for deadline_driven, absent dates last — and
// always land on task id ascending so the order is total and reproducible.
func rank(scored []scoring.Scored, strategy scoring.Strategy) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if strategy == scoring.DeadlineDriven {
			ad, bd := a.Task.Due, b.Task.Due
			if (ad == nil) != (bd == nil) {
				return bd == nil
			}
			if ad != nil && bd != nil && !ad.Equal(bd.Time) {
				return ad.Before(bd.Time)
			}
		}
		return a.Task.ID < b.Task.ID
	})
}
