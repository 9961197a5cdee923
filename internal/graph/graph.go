package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/task"
)

// Analyze builds the dependency graph over a validated batch and computes
// per-task blocking information. An entry d in a task's dependency list names
// a prerequisite: d blocks that task, so the edge runs d -> task.
//
// Analysis never fails. Dangling references and cycles degrade to warnings,
// and cycle-internal edges are dropped so they earn no blocking credit.
func Analyze(tasks []task.Task) *Result {
	r := &Result{
		Adj:          make(map[int][]int),
		RevAdj:       make(map[int][]int),
		InCycle:      make(map[int]bool),
		TaskWarnings: make(map[int][]string),
	}

	known := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	// Full adjacency over valid endpoints, deduplicated. Cycle detection runs
	// on this; the usable edge set is filtered afterwards.
	full := make(map[int][]int)
	edgeSet := make(map[[2]int]bool)
	for _, t := range tasks {
		for _, dep := range t.Deps {
			if !known[dep] {
				r.TaskWarnings[t.ID] = append(r.TaskWarnings[t.ID],
					fmt.Sprintf("dependency %d not found in batch, ignored", dep))
				continue
			}
			key := [2]int{dep, t.ID}
			if edgeSet[key] {
				continue
			}
			edgeSet[key] = true
			full[dep] = append(full[dep], t.ID)
		}
	}

	// Sort adjacency and node order for deterministic traversal.
	ids := make([]int, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for id := range full {
		sort.Ints(full[id])
	}

	groups := newCycleGroups()
	r.CycleWarnings = detectCycles(ids, full, r.InCycle, groups)

	// Usable edges: drop anything internal to a cycle. An edge between two
	// distinct cycles lies on neither, so it keeps its blocking credit.
	for edge := range edgeSet {
		from, to := edge[0], edge[1]
		if r.InCycle[from] && r.InCycle[to] && groups.joined(from, to) {
			continue
		}
		r.Adj[from] = append(r.Adj[from], to)
		r.RevAdj[to] = append(r.RevAdj[to], from)
	}
	for id := range r.Adj {
		sort.Ints(r.Adj[id])
	}
	for id := range r.RevAdj {
		sort.Ints(r.RevAdj[id])
	}

	return r
}

// cycleGroups unions the members of each detected cycle so the edge filter
// can tell edges inside one cycle apart from edges bridging two of them.
// Overlapping cycles merge into a single group.
type cycleGroups struct {
	parent map[int]int
}

func newCycleGroups() *cycleGroups {
	return &cycleGroups{parent: make(map[int]int)}
}

func (g *cycleGroups) root(x int) int {
	p, ok := g.parent[x]
	if !ok {
		g.parent[x] = x
		return x
	}
	if p != x {
		p = g.root(p)
		g.parent[x] = p
	}
	return p
}

func (g *cycleGroups) union(a, b int) {
	ra, rb := g.root(a), g.root(b)
	if ra != rb {
		g.parent[ra] = rb
	}
}

// joined reports whether a and b belong to the same detected cycle.
func (g *cycleGroups) joined(a, b int) bool {
	return g.root(a) == g.root(b)
}

// detectCycles walks the whole graph with an iterative three-color DFS.
// A back edge into a gray node marks every node on the current path from that
// node onward as a cycle member. Traversal continues after a hit so every
// distinct cycle is reported exactly once.
func detectCycles(ids []int, adj map[int][]int, inCycle map[int]bool, groups *cycleGroups) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int, len(ids))
	seen := make(map[string]bool)
	var warnings []string

	type frame struct {
		node int
		next int
	}

	for _, start := range ids {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []frame{{node: start}}
		path := []int{start}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			neighbors := adj[f.node]
			if f.next >= len(neighbors) {
				color[f.node] = black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}

			next := neighbors[f.next]
			f.next++

			switch color[next] {
			case white:
				color[next] = gray
				stack = append(stack, frame{node: next})
				path = append(path, next)
			case gray:
				// Back edge: the cycle is the path suffix starting at next.
				i := len(path) - 1
				for i >= 0 && path[i] != next {
					i--
				}
				members := path[i:]
				for _, id := range members {
					inCycle[id] = true
					groups.union(id, next)
				}
				if w := cycleWarning(members); !seen[w] {
					seen[w] = true
					warnings = append(warnings, w)
				}
			}
		}
	}

	return warnings
}

func cycleWarning(members []int) string {
	sorted := make([]int, len(members))
	copy(sorted, members)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("circular dependency detected involving tasks %s", strings.Join(parts, ", "))
}
