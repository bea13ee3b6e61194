package dfs

import "github.com/katalvlaran/wordnet/digraph"

// walker holds the mutable state of one depth-first search over g.
type walker struct {
	graph *digraph.Digraph
	color []int   // White, Gray or Black per vertex
	stack []frame // current search path, bottom to top
	post  []int   // vertices in finishing order
	cycle []int   // first cycle found, closed; nil if none
}

// newWalker allocates state for a search over g.
func newWalker(g *digraph.Digraph) *walker {
	return &walker{
		graph: g,
		color: make([]int, g.V()),
		stack: make([]frame, 0, 16),
		post:  make([]int, 0, g.V()),
	}
}

// run searches from every White vertex in ascending order and stops at the
// first back edge. It reports whether the whole graph was explored
// without meeting a cycle.
func (w *walker) run() bool {
	for v := 0; v < w.graph.V(); v++ {
		if w.color[v] == White && !w.visit(v) {
			return false
		}
	}

	return true
}

// visit explores everything reachable from root. It returns false as soon
// as a Gray→Gray back edge closes a cycle; w.cycle then holds it.
func (w *walker) visit(root int) bool {
	// 1) Seed the stack with root
	w.color[root] = Gray
	w.stack = append(w.stack, frame{v: root})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		adj := w.graph.Adj(top.v)

		// 2) All neighbors examined: finish the vertex
		if top.next == len(adj) {
			w.color[top.v] = Black
			w.post = append(w.post, top.v)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3) Examine the next neighbor
		nbr := adj[top.next]
		top.next++
		switch w.color[nbr] {
		case White:
			w.color[nbr] = Gray
			w.stack = append(w.stack, frame{v: nbr})
		case Gray:
			w.recordCycle(nbr)
			return false
		}
	}

	return true
}

// recordCycle copies the stack segment starting at start and closes it.
func (w *walker) recordCycle(start int) {
	idx := len(w.stack) - 1
	for idx > 0 && w.stack[idx].v != start {
		idx--
	}
	cycle := make([]int, 0, len(w.stack)-idx+1)
	for _, f := range w.stack[idx:] {
		cycle = append(cycle, f.v)
	}
	w.cycle = append(cycle, start)
}
