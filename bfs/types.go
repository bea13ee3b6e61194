// Package bfs defines error values and the Result type for breadth-first search.
package bfs

import (
	"errors"
	"fmt"
)

// Unreachable is the distance reported for vertices no source reaches.
const Unreachable = -1

// noParent marks sources and unreached vertices in Result.parent.
const noParent = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoSources is returned when the source list is empty.
	ErrNoSources = errors.New("bfs: no source vertices")

	// ErrSourceOutOfRange is returned when a source lies outside 0..V-1.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrNoPath is returned by PathTo when the target was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - dist:  per-vertex distance from the nearest source (Unreachable if none).
//   - parent: per-vertex predecessor in the BFS forest (noParent for sources).
type Result struct {
	Order  []int
	dist   []int
	parent []int
}

// DistTo returns the number of edges on a shortest path from any source to v,
// or Unreachable. Out-of-range vertices are reported as Unreachable.
func (r *Result) DistTo(v int) int {
	if v < 0 || v >= len(r.dist) {
		return Unreachable
	}

	return r.dist[v]
}

// HasPathTo reports whether some source reaches v.
func (r *Result) HasPathTo(v int) bool { return r.DistTo(v) != Unreachable }

// PathTo reconstructs a shortest path from a source to dest, source first.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.HasPathTo(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]int, 0, r.dist[dest]+1)
	for cur := dest; cur != noParent; cur = r.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
