// Package dfs implements directed cycle detection.
//
// FindCycle returns the first cycle reached by a three-color search, which
// is enough to reject a graph that must be acyclic.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import "github.com/katalvlaran/wordnet/digraph"

// FindCycle inspects g for a directed cycle.
// Returns the cycle as [v0 … vk v0] (v0 is the vertex the back edge points
// to), or nil if g is acyclic. Returns ErrGraphNil for a nil graph.
func FindCycle(g *digraph.Digraph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g)
	if w.run() {
		return nil, nil
	}

	return w.cycle, nil
}

// HasCycle reports whether g contains a directed cycle.
// A nil graph is treated as acyclic.
func HasCycle(g *digraph.Digraph) bool {
	cycle, _ := FindCycle(g)

	return cycle != nil
}
