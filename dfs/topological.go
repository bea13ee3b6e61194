// Package dfs provides topological sort over directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (frame stack and color slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordnet/digraph"
)

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected wrapped with the cycle.
func TopologicalSort(g *digraph.Digraph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Drive DFS from every unvisited vertex
	w := newWalker(g)
	if !w.run() {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, w.cycle)
	}
	// 3. Reverse post-order to produce topological order
	order := w.post
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
