// Package bfs provides multi-source breadth-first search over a digraph.Digraph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wordnet/digraph"
)

// walker encapsulates mutable BFS state.
// The queue is a slice consumed through head, so every vertex is appended
// once and never shifted.
type walker struct {
	graph *digraph.Digraph
	queue []int
	head  int
	res   *Result
}

// MultiSource runs breadth-first search on g seeded with every vertex in
// sources at distance 0.
// Returns ErrGraphNil, ErrNoSources or ErrSourceOutOfRange for invalid input.
func MultiSource(g *digraph.Digraph, sources []int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	// Validate every source before allocating
	n := g.V()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, s, n)
		}
	}

	// Prepare walker
	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			dist:   make([]int, n),
			parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.dist[v] = Unreachable
		w.res.parent[v] = noParent
	}

	// Seed queue with every distinct source (no parent)
	for _, s := range sources {
		if w.res.dist[s] == Unreachable {
			w.enqueue(s, 0, noParent)
		}
	}
	// Main loop
	w.loop()

	return w.res, nil
}

// Single runs breadth-first search from one source vertex.
func Single(g *digraph.Digraph, source int) (*Result, error) {
	return MultiSource(g, []int{source})
}

// enqueue marks v reached at depth d from parent and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.dist[v] = d
	w.res.parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, enqueueing each unseen neighbor.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		v := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, v)

		next := w.res.dist[v] + 1
		for _, nbr := range w.graph.Adj(v) {
			// first time seen?
			if w.res.dist[nbr] == Unreachable {
				w.enqueue(nbr, next, v)
			}
		}
	}
}
