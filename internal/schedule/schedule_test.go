package schedule

import (
	"reflect"
	"testing"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/graph"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

func buildPlan(t *testing.T, tasks []task.Task) *Plan {
	t.Helper()
	return Build(tasks, graph.Analyze(tasks))
}

func TestBuild_LinearChain(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", Hours: 2},
		{ID: 2, Title: "b", Hours: 3, Deps: []int{1}},
		{ID: 3, Title: "c", Hours: 4, Deps: []int{2}},
	}

	plan := buildPlan(t, tasks)

	if !reflect.DeepEqual(plan.Order, []int{1, 2, 3}) {
		t.Fatalf("expected topological order 1,2,3, got %v", plan.Order)
	}
	if plan.TotalHours != 9 {
		t.Errorf("expected total 9h, got %d", plan.TotalHours)
	}
	wantES := map[int]int{1: 0, 2: 2, 3: 5}
	for id, es := range wantES {
		if got := plan.Slots[id].ES; got != es {
			t.Errorf("task %d: expected ES %d, got %d", id, es, got)
		}
		if !plan.Slots[id].Critical {
			t.Errorf("task %d: a chain is all critical", id)
		}
	}
	if !reflect.DeepEqual(plan.CriticalPath, []int{1, 2, 3}) {
		t.Errorf("expected critical path 1,2,3, got %v", plan.CriticalPath)
	}
}

func TestBuild_DiamondSlack(t *testing.T) {
	// 1 fans out to 2 (5h) and 3 (1h), both feed 4. The short branch has slack.
	tasks := []task.Task{
		{ID: 1, Title: "a", Hours: 2},
		{ID: 2, Title: "b", Hours: 5, Deps: []int{1}},
		{ID: 3, Title: "c", Hours: 1, Deps: []int{1}},
		{ID: 4, Title: "d", Hours: 2, Deps: []int{2, 3}},
	}

	plan := buildPlan(t, tasks)

	if plan.TotalHours != 9 {
		t.Fatalf("expected total 9h, got %d", plan.TotalHours)
	}
	if !reflect.DeepEqual(plan.CriticalPath, []int{1, 2, 4}) {
		t.Errorf("expected critical path 1,2,4, got %v", plan.CriticalPath)
	}
	short := plan.Slots[3]
	if short.Critical || short.Slack != 4 {
		t.Errorf("expected task 3 off the critical path with 4h slack, got %+v", short)
	}
	if plan.Slots[2].ES != 2 || plan.Slots[3].ES != 2 {
		t.Errorf("both branches should start when task 1 finishes")
	}
	if plan.Slots[4].ES != 7 {
		t.Errorf("expected task 4 to wait for the long branch, ES=%d", plan.Slots[4].ES)
	}
}

func TestBuild_Waves(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", Hours: 2},
		{ID: 2, Title: "b", Hours: 2},
		{ID: 3, Title: "c", Hours: 1, Deps: []int{1, 2}},
	}

	plan := buildPlan(t, tasks)

	if len(plan.Waves) != 2 {
		t.Fatalf("expected 2 waves, got %d", len(plan.Waves))
	}
	if !reflect.DeepEqual(plan.Waves[0].TaskIDs, []int{1, 2}) {
		t.Errorf("expected wave 0 to hold the independent tasks, got %v", plan.Waves[0].TaskIDs)
	}
	if !reflect.DeepEqual(plan.Waves[1].TaskIDs, []int{3}) {
		t.Errorf("expected wave 1 to hold task 3, got %v", plan.Waves[1].TaskIDs)
	}
	if plan.Slots[3].Wave != 1 {
		t.Errorf("expected task 3 assigned wave 1, got %d", plan.Slots[3].Wave)
	}
}

func TestBuild_WaveOrdersCriticalFirst(t *testing.T) {
	// Tasks 1 and 2 both start at 0; only the longer one is critical.
	tasks := []task.Task{
		{ID: 1, Title: "short", Hours: 1},
		{ID: 2, Title: "long", Hours: 6},
	}

	plan := buildPlan(t, tasks)

	if len(plan.Waves) != 1 {
		t.Fatalf("expected a single wave, got %d", len(plan.Waves))
	}
	if !reflect.DeepEqual(plan.Waves[0].TaskIDs, []int{2, 1}) {
		t.Errorf("expected the critical task listed first, got %v", plan.Waves[0].TaskIDs)
	}
	if !plan.Waves[0].Critical {
		t.Errorf("wave holding a critical task must be flagged critical")
	}
}

func TestBuild_CycleMembersScheduleIsolated(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", Hours: 2, Deps: []int{2}},
		{ID: 2, Title: "b", Hours: 3, Deps: []int{1}},
		{ID: 3, Title: "c", Hours: 1},
	}

	plan := buildPlan(t, tasks)

	if len(plan.Order) != 3 {
		t.Fatalf("cycle members must still be scheduled, got order %v", plan.Order)
	}
	// Their edges are gone, so both cycle members start immediately.
	if plan.Slots[1].ES != 0 || plan.Slots[2].ES != 0 {
		t.Errorf("expected cycle members to schedule as isolated nodes, got ES %d/%d",
			plan.Slots[1].ES, plan.Slots[2].ES)
	}
}

func TestBuild_ZeroHourDurationsFloorAtOne(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", Hours: 0},
		{ID: 2, Title: "b", Hours: 0, Deps: []int{1}},
	}

	plan := buildPlan(t, tasks)

	if plan.Slots[2].ES != 1 {
		t.Errorf("expected a 1h floor per task, got ES %d", plan.Slots[2].ES)
	}
	if plan.TotalHours != 2 {
		t.Errorf("expected total 2h, got %d", plan.TotalHours)
	}
}

func TestBuild_Empty(t *testing.T) {
	plan := buildPlan(t, nil)
	if len(plan.Order) != 0 || plan.TotalHours != 0 || len(plan.Waves) != 0 {
		t.Errorf("expected an empty plan, got %+v", plan)
	}
}
