package engine

import (
	"fmt"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// DefaultSuggestionLimit is how many tasks Suggest returns when the caller
// does not say otherwise.
const DefaultSuggestionLimit = 3

// Suggestion is a ranked task with plain-language reasons to work on it.
type Suggestion struct {
	scoring.Scored
	Rank    int      `json:"rank"`
	Reasons []string `json:"why_work_on_this"`
}

// SuggestResult is the output of one Suggest call.
type SuggestResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Message     string       `json:"message"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// Suggest runs the balanced analysis and returns the top tasks with reasons
// derived from their non-zero breakdown components.
func Suggest(batch []task.Raw, limit int, today task.Date) SuggestResult {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	result := Analyze(batch, scoring.SmartBalance, today)
	if limit > len(result.Ranked) {
		limit = len(result.Ranked)
	}

	suggestions := make([]Suggestion, limit)
	for i := 0; i < limit; i++ {
		suggestions[i] = Suggestion{
			Scored:  result.Ranked[i],
			Rank:    i + 1,
			Reasons: reasons(result.Ranked[i]),
		}
	}

	return SuggestResult{
		Suggestions: suggestions,
		Message:     fmt.Sprintf("Here are your top %d tasks for today:", limit),
		Warnings:    result.Warnings,
	}
}

// reasons produces one sentence per dominant component, in descending
// magnitude order. A task with no standout component gets a generic line.
func reasons(s scoring.Scored) []string {
	type dimension struct {
		value int
		text  string
	}

	b := s.Breakdown
	var dims []dimension
	switch {
	case b.Urgency >= 80:
		dims = append(dims, dimension{b.Urgency, "This task is due very soon or already overdue"})
	case b.Urgency >= 30:
		dims = append(dims, dimension{b.Urgency, "This task has an upcoming deadline"})
	}
	if s.Task.Importance >= 8 {
		dims = append(dims, dimension{b.Importance, "It has high importance to you"})
	}
	if b.Effort >= 10 {
		dims = append(dims, dimension{b.Effort, "It's a quick win that can be completed fast"})
	}
	if b.Dependency > 0 {
		dims = append(dims, dimension{b.Dependency, "Other tasks are waiting on this one"})
	}

	// Insertion sort by descending magnitude; equal magnitudes keep the
	// canonical component order.
	for i := 1; i < len(dims); i++ {
		for j := i; j > 0 && dims[j].value > dims[j-1].value; j-- {
			dims[j], dims[j-1] = dims[j-1], dims[j]
		}
	}

	if len(dims) == 0 {
		return []string{"It has a balanced priority based on all factors"}
	}
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = d.text
	}
	return out
}
