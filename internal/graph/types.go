package graph

// Result holds the dependency analysis for one validated batch.
// Adjacency lists only contain usable edges: both endpoints present in the
// batch and not internal to a detected cycle.
type Result struct {
	Adj    map[int][]int // task -> tasks it blocks
	RevAdj map[int][]int // task -> tasks that block it

	InCycle       map[int]bool     // ids participating in at least one cycle
	CycleWarnings []string         // one warning per distinct cycle
	TaskWarnings  map[int][]string // dangling-reference warnings keyed by owning task
}

// BlockedCount returns how many other tasks id directly blocks,
// counting only valid non-cyclic edges.
func (r *Result) BlockedCount(id int) int {
	return len(r.Adj[id])
}
