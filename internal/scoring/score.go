package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// Breakdown holds the weighted value of each score component.
// The four values always sum exactly to the task's score.
type Breakdown struct {
	Urgency    int `json:"urgency"`
	Importance int `json:"importance"`
	Effort     int `json:"effort"`
	Dependency int `json:"dependency"`
}

// Total sums the breakdown into the final score.
func (b Breakdown) Total() int {
	return b.Urgency + b.Importance + b.Effort + b.Dependency
}

// Tier is a coarse priority label derived from the score.
type Tier string

const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
	TierLow      Tier = "low"
)

// TierFor maps a score onto its tier. Thresholds are fixed and monotonic.
func TierFor(score int) Tier {
	switch {
	case score >= 150:
		return TierCritical
	case score >= 100:
		return TierHigh
	case score >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// Scored is a normalized task plus its computed priority. The task is
// embedded so JSON output carries its fields at the top level, the same
// shape hosts historically consumed.
type Scored struct {
	task.Task
	Score       int       `json:"score"`
	Breakdown   Breakdown `json:"score_breakdown"`
	Tier        Tier      `json:"priority_level"`
	Explanation string    `json:"explanation"`
}

// Score computes the weighted priority of one task under a strategy.
// blocked is the task's blocked-count from graph analysis; today anchors the
// urgency buckets.
func Score(t task.Task, blocked int, strategy Strategy, today task.Date) Scored {
	w := strategy.weights()

	urgencyBase, urgencyWhy := urgencyScore(t.Due, today)
	importanceBase, importanceWhy := importanceScore(t.Importance)
	effortBase, effortWhy := effortScore(t.Hours)
	dependencyBase, dependencyWhy := dependencyScore(blocked)

	b := Breakdown{
		Urgency:    urgencyBase * w.urgency / 10,
		Importance: importanceBase * w.importance / 10,
		Effort:     effortBase * w.effort / 10,
		Dependency: dependencyBase * w.dependency / 10,
	}
	score := b.Total()

	explanation := explain([]component{
		{value: b.Urgency, why: urgencyWhy},
		{value: b.Importance, why: importanceWhy},
		{value: b.Effort, why: effortWhy},
		{value: b.Dependency, why: dependencyWhy},
	})

	return Scored{
		Task:        t,
		Score:       score,
		Breakdown:   b,
		Tier:        TierFor(score),
		Explanation: explanation,
	}
}

// urgencyScore buckets due-date proximity. Buckets are checked from most to
// least urgent; the first match wins.
func urgencyScore(due *task.Date, today task.Date) (int, string) {
	if due == nil {
		return 0, "No due date specified"
	}
	days := due.DaysFrom(today)
	switch {
	case days < 0:
		return 100, fmt.Sprintf("Overdue by %d day(s)", -days)
	case days == 0:
		return 90, "Due today"
	case days == 1:
		return 80, "Due tomorrow"
	case days <= 3:
		return 50, fmt.Sprintf("Due in %d days", days)
	case days <= 7:
		return 30, fmt.Sprintf("Due in %d days", days)
	default:
		return 0, fmt.Sprintf("Due in %d days", days)
	}
}

// maxImportanceScore caps the importance component. With importance clamped
// to [1,10] the cap cannot bind; it guards the invariant anyway.
const maxImportanceScore = 50

func importanceScore(importance int) (int, string) {
	score := importance * 5
	if score > maxImportanceScore {
		score = maxImportanceScore
	}

	var label string
	switch {
	case importance >= 8:
		label = "High"
	case importance >= 5:
		label = "Medium"
	default:
		label = "Low"
	}
	return score, fmt.Sprintf("%s importance (%d/10)", label, importance)
}

func effortScore(hours int) (int, string) {
	switch {
	case hours < 2:
		return 15, fmt.Sprintf("Quick win (%dh)", hours)
	case hours <= 4:
		return 8, fmt.Sprintf("Medium effort (%dh)", hours)
	case hours <= 8:
		return 0, fmt.Sprintf("Standard task (%dh)", hours)
	default:
		return -5, fmt.Sprintf("Large task (%dh)", hours)
	}
}

func dependencyScore(blocked int) (int, string) {
	if blocked == 0 {
		return 0, "No dependency bonus"
	}
	return blocked * 20, fmt.Sprintf("Blocks %d other task(s)", blocked)
}

type component struct {
	value int
	why   string
}

// explain lists the non-zero components in descending magnitude order.
// Equal magnitudes keep the canonical urgency/importance/effort/dependency order.
func explain(components []component) string {
	sort.SliceStable(components, func(i, j int) bool {
		return abs(components[i].value) > abs(components[j].value)
	})

	var parts []string
	for _, c := range components {
		if c.value != 0 {
			parts = append(parts, c.why)
		}
	}
	if len(parts) == 0 {
		return "No scoring signals for this task"
	}
	return strings.Join(parts, "; ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
