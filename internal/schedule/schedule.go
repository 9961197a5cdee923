// Package schedule derives a dependency-ordered work plan from a validated
// batch: topological order, earliest/latest start times, the critical path
// and parallelizable waves. Durations are the tasks' estimated hours.
package schedule

import (
	"sort"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/graph"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// Build computes the schedule over the usable (non-cyclic) edge set.
// Tasks on a cycle keep their slot but schedule as isolated nodes, since
// their edges were already excluded by graph analysis.
func Build(tasks []task.Task, deps *graph.Result) *Plan {
	order := topoSort(tasks, deps)

	durations := make(map[int]int, len(tasks))
	for _, t := range tasks {
		d := t.Hours
		if d < 1 {
			d = 1
		}
		durations[t.ID] = d
	}

	plan := &Plan{
		Slots: make(map[int]*Slot, len(order)),
		Order: order,
	}
	for _, id := range order {
		plan.Slots[id] = &Slot{TaskID: id}
	}

	// Forward pass: earliest start is the latest finish of any blocker.
	for _, id := range order {
		slot := plan.Slots[id]
		es := 0
		for _, pred := range deps.RevAdj[id] {
			if p := plan.Slots[pred]; p.EF > es {
				es = p.EF
			}
		}
		slot.ES = es
		slot.EF = es + durations[id]
	}

	total := 0
	for _, slot := range plan.Slots {
		if slot.EF > total {
			total = slot.EF
		}
	}
	plan.TotalHours = total

	// Backward pass in reverse topological order.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		slot := plan.Slots[id]

		if len(deps.Adj[id]) == 0 {
			slot.LF = total
		} else {
			minLS := total
			for _, succ := range deps.Adj[id] {
				if s := plan.Slots[succ]; s.LS < minLS {
					minLS = s.LS
				}
			}
			slot.LF = minLS
		}
		slot.LS = slot.LF - durations[id]
		slot.Slack = slot.LS - slot.ES
		slot.Critical = slot.Slack == 0
	}

	for _, id := range order {
		if plan.Slots[id].Critical {
			plan.CriticalPath = append(plan.CriticalPath, id)
		}
	}

	plan.Waves = computeWaves(plan)
	return plan
}

// topoSort runs Kahn's algorithm over the usable edges, with id-sorted
// queues for deterministic output. The filtered edge set is acyclic, so
// every task is always sorted.
func topoSort(tasks []task.Task, deps *graph.Result) []int {
	inDegree := make(map[int]int, len(tasks))
	for _, t := range tasks {
		inDegree[t.ID] = len(deps.RevAdj[t.ID])
	}

	var queue []int
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Ints(queue)

	var order []int
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var ready []int
		for _, succ := range deps.Adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		sort.Ints(ready)
		queue = append(queue, ready...)
	}

	return order
}

// computeWaves groups tasks by earliest start time, critical tasks first
// within each wave.
func computeWaves(plan *Plan) []Wave {
	groups := make(map[int][]int)
	for _, id := range plan.Order {
		es := plan.Slots[id].ES
		groups[es] = append(groups[es], id)
	}

	starts := make([]int, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	sort.Ints(starts)

	waves := make([]Wave, len(starts))
	for i, es := range starts {
		ids := groups[es]
		sort.Ints(ids)

		critical := false
		for _, id := range ids {
			plan.Slots[id].Wave = i
			if plan.Slots[id].Critical {
				critical = true
			}
		}
		sort.SliceStable(ids, func(a, b int) bool {
			ac := plan.Slots[ids[a]].Critical
			bc := plan.Slots[ids[b]].Critical
			return ac && !bc
		})

		waves[i] = Wave{Index: i, TaskIDs: ids, Critical: critical}
	}

	return waves
}
