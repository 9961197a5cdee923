package schedule

// Plan holds the complete dependency-ordered schedule for a batch.
type Plan struct {
	Slots        map[int]*Slot
	CriticalPath []int // ordered task ids on the critical path
	TotalHours   int
	Waves        []Wave // parallelizable groups
	Order        []int  // topological order
}

// Slot holds the scheduling info for a single task.
type Slot struct {
	TaskID   int
	ES, EF   int // earliest start/finish (hours)
	LS, LF   int // latest start/finish (hours)
	Slack    int
	Critical bool
	Wave     int
}

// Wave is a group of tasks whose prerequisites are all satisfied at the same
// time, so they can be worked in parallel.
type Wave struct {
	Index    int   `json:"index"`
	TaskIDs  []int `json:"task_ids"`
	Critical bool  `json:"critical"` // true if the wave contains critical-path tasks
}
