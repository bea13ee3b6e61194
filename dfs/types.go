// Package dfs defines vertex colors and sentinel errors shared by
// cycle detection and topological sort.
package dfs

import "errors"

// Vertex colors used during the search.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current search path.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *digraph.Digraph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// frame is one entry of the explicit DFS stack: the vertex and the index
// of the next neighbor to examine.
type frame struct {
	v    int
	next int
}
