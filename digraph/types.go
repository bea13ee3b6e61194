// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Digraph and Builder types plus sentinel errors.

package digraph

import "errors"

// MaxVertices bounds the vertex count of a Builder. The full WordNet noun
// hierarchy has about 82k synsets.
const MaxVertices = 1 << 24

// Sentinel errors for digraph construction and queries.
var (
	// ErrNegativeVertexCount indicates a builder was requested with v < 0.
	ErrNegativeVertexCount = errors.New("digraph: number of vertices must be non-negative")

	// ErrTooManyVertices indicates a builder was requested with v > MaxVertices.
	ErrTooManyVertices = errors.New("digraph: number of vertices exceeds MaxVertices")

	// ErrVertexOutOfRange indicates a vertex outside 0..V-1.
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrBuilderFrozen indicates AddEdge was called after Build.
	ErrBuilderFrozen = errors.New("digraph: builder already built")

	// ErrMalformedInput indicates Read could not parse its input.
	ErrMalformedInput = errors.New("digraph: malformed input")
)

// Digraph is an immutable directed graph over vertices 0..V-1.
//
// adj[v] holds the heads of all edges v→w in insertion order.
// indegree[w] counts edges whose head is w.
type Digraph struct {
	v        int
	e        int
	adj      [][]int
	indegree []int
}

// Builder accumulates edges for a Digraph. It is not safe for concurrent use.
type Builder struct {
	v        int
	e        int
	adj      [][]int
	indegree []int
	built    bool
}
