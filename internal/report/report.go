// Package report renders analysis results for the terminal, in the style of
// the rest of the CLI output. JSON output bypasses this package entirely.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/engine"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/schedule"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/ui"
)

// PrintRanked writes the ranked analysis as a terminal table.
func PrintRanked(w io.Writer, res engine.Result) {
	fmt.Fprintf(w, "%s %s\n", ui.BoldCyan("Task Analysis"), ui.Dim("("+string(res.Strategy)+")"))
	fmt.Fprintln(w, ui.Cyan(strings.Repeat("═", 40)))
	fmt.Fprintln(w)

	for i, s := range res.Ranked {
		printScored(w, i+1, s)
	}

	PrintWarnings(w, res.Warnings)
}

// PrintSuggestions writes the top-N suggestions with their reasons.
func PrintSuggestions(w io.Writer, res engine.SuggestResult) {
	fmt.Fprintf(w, "%s %s\n\n", ui.BoldCyan("Suggestions:"), res.Message)

	for _, s := range res.Suggestions {
		printScored(w, s.Rank, s.Scored)
		for _, reason := range s.Reasons {
			fmt.Fprintf(w, "     %s %s\n", ui.Cyan("→"), reason)
		}
		fmt.Fprintln(w)
	}

	PrintWarnings(w, res.Warnings)
}

// PrintPlan writes the dependency schedule: waves, slots and critical path.
func PrintPlan(w io.Writer, plan *schedule.Plan, tasks []task.Task) {
	titles := make(map[int]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}

	fmt.Fprintf(w, "%s\n", ui.BoldCyan("Dependency Schedule"))
	fmt.Fprintln(w, ui.Cyan(strings.Repeat("═", 40)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tasks:         %s\n", ui.Bold(len(plan.Order)))
	fmt.Fprintf(w, "Total effort:  %s on the longest chain\n", ui.Bold(fmt.Sprintf("%dh", plan.TotalHours)))
	if len(plan.CriticalPath) > 0 {
		fmt.Fprintf(w, "Critical path: %s\n", ui.BoldYellow(joinIDs(plan.CriticalPath, " → ")))
	}
	fmt.Fprintln(w)

	for _, wave := range plan.Waves {
		dep := ui.Dim("independent")
		if wave.Index > 0 {
			dep = ui.Dim(fmt.Sprintf("after wave %d", wave.Index))
		}
		fmt.Fprintf(w, "%s %d (%d tasks, %s):\n", ui.BoldWhite("Wave"), wave.Index+1, len(wave.TaskIDs), dep)
		for _, id := range wave.TaskIDs {
			slot := plan.Slots[id]
			crit := ""
			if slot.Critical {
				crit = "  " + ui.BoldYellow("critical")
			}
			fmt.Fprintf(w, "  %s  %s  %s%s\n",
				ui.BoldMagenta(fmt.Sprintf("#%d", id)), titles[id],
				ui.Dim(fmt.Sprintf("[start %dh, slack %dh]", slot.ES, slot.Slack)), crit)
		}
		fmt.Fprintln(w)
	}
}

func printScored(w io.Writer, rank int, s scoring.Scored) {
	due := "no due date"
	if s.Task.Due != nil {
		due = "due " + s.Task.Due.Format(task.DateLayout)
	}
	fmt.Fprintf(w, "%2d. %s %s  %s %s %s\n", rank,
		ui.BoldMagenta(fmt.Sprintf("#%d", s.Task.ID)), ui.Bold(s.Task.Title),
		scoreLabel(s.Score), ui.TierLabel(s.Tier), ui.Dim("("+due+")"))
	fmt.Fprintf(w, "     %s\n", s.Explanation)
	fmt.Fprintf(w, "     %s\n", ui.Dim(breakdownLine(s.Breakdown)))
	for _, warning := range s.Task.Warnings {
		fmt.Fprintf(w, "     %s %s\n", ui.Yellow("!"), ui.Dim(warning))
	}
}

// PrintWarnings writes batch-level warnings, if any.
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", ui.BoldYellow("Warnings:"))
	for _, warning := range warnings {
		fmt.Fprintf(w, "  %s %s\n", ui.Yellow("!"), warning)
	}
}

// breakdownLine shows the named components; zero-valued ones are omitted
// from display though they still count in the score.
func breakdownLine(b scoring.Breakdown) string {
	var parts []string
	add := func(name string, v int) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", name, v))
		}
	}
	add("urgency", b.Urgency)
	add("importance", b.Importance)
	add("effort", b.Effort)
	add("dependency", b.Dependency)
	if len(parts) == 0 {
		return "score 0"
	}
	return strings.Join(parts, "  ")
}

func scoreLabel(score int) string {
	return ui.Bold(fmt.Sprintf("%d pts", score))
}

func joinIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, sep)
}
