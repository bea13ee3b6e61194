// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: Builder lifecycle and read-only Digraph queries.
// Determinism:
//   - Adj(v) preserves edge insertion order; Sinks() is ascending.

package digraph

import (
	"fmt"
	"strings"
)

// NewBuilder returns a Builder for a digraph with v vertices and no edges.
// Returns ErrNegativeVertexCount if v < 0 and ErrTooManyVertices if
// v > MaxVertices.
// Complexity: O(V).
func NewBuilder(v int) (*Builder, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, v)
	}
	if v > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, v, MaxVertices)
	}

	return &Builder{
		v:        v,
		adj:      make([][]int, v),
		indegree: make([]int, v),
	}, nil
}

// AddEdge records the directed edge from→to.
// Both endpoints must lie in 0..V-1. Self-loops and parallel edges are accepted.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to int) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if err := checkRange(from, b.v); err != nil {
		return err
	}
	if err := checkRange(to, b.v); err != nil {
		return err
	}
	b.adj[from] = append(b.adj[from], to)
	b.indegree[to]++
	b.e++

	return nil
}

// V returns the number of vertices the builder was created with.
func (b *Builder) V() int { return b.v }

// Build freezes the builder and returns the resulting Digraph.
// The builder hands its storage over to the graph; later AddEdge calls
// return ErrBuilderFrozen.
// Complexity: O(1).
func (b *Builder) Build() *Digraph {
	b.built = true

	return &Digraph{v: b.v, e: b.e, adj: b.adj, indegree: b.indegree}
}

// V returns the number of vertices.
func (g *Digraph) V() int { return g.v }

// E returns the number of edges.
func (g *Digraph) E() int { return g.e }

// Validate returns ErrVertexOutOfRange (wrapped) unless 0 <= v < V.
func (g *Digraph) Validate(v int) error { return checkRange(v, g.v) }

// Adj returns the heads of the edges leaving v, in insertion order.
// The slice is shared with the graph and must not be modified.
// Panics if v is out of range; call Validate first for untrusted input.
func (g *Digraph) Adj(v int) []int { return g.adj[v] }

// OutDegree returns the number of edges leaving v.
func (g *Digraph) OutDegree(v int) int { return len(g.adj[v]) }

// InDegree returns the number of edges entering v.
func (g *Digraph) InDegree(v int) int { return g.indegree[v] }

// Sinks returns, in ascending order, every vertex with out-degree zero.
// In a hypernym graph these are the roots.
// Complexity: O(V).
func (g *Digraph) Sinks() []int {
	var sinks []int
	for v := 0; v < g.v; v++ {
		if len(g.adj[v]) == 0 {
			sinks = append(sinks, v)
		}
	}

	return sinks
}

// Reverse returns a new Digraph with every edge flipped.
// Edges are visited in (tail ascending, insertion order) sequence, so the
// result is deterministic.
// Complexity: O(V + E).
func (g *Digraph) Reverse() *Digraph {
	b, _ := NewBuilder(g.v) // g.v is never negative
	for v := 0; v < g.v; v++ {
		for _, w := range g.adj[v] {
			b.adj[w] = append(b.adj[w], v)
			b.indegree[v]++
			b.e++
		}
	}

	return b.Build()
}

// String renders the graph as "V vertices, E edges" followed by one
// "v: w1 w2 ..." line per vertex.
func (g *Digraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range g.adj[v] {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// checkRange reports whether v lies in 0..n-1.
func checkRange(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, n)
	}

	return nil
}
