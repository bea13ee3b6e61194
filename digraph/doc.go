// Package digraph provides an immutable, integer-indexed directed graph
// used as the storage layer for taxonomy and shortest-ancestral-path queries.
//
// What
//
//   - Vertices are dense integers 0..V-1; no per-vertex objects exist.
//   - Edges are stored as adjacency slices: Adj(v) lists the heads of every
//     edge leaving v, in insertion order. Self-loops and parallel edges are kept.
//   - A Builder collects edges; Build freezes them into a Digraph.
//   - Read parses the classic "V, E, then E pairs" text format.
//
// Lifecycle
//
//  1. b, err := digraph.NewBuilder(v)
//  2. b.AddEdge(from, to) for every edge
//  3. g := b.Build()    // b is frozen from here on
//  4. query g from any number of goroutines
//
// Concurrency
//
//	A Builder is single-writer. A built Digraph is never mutated again, so
//	concurrent readers need no locking. Slices returned by Adj are shared
//	with the graph and must be treated as read-only.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Build:   O(V + E)
//   - Adj:     O(1)
//   - Reverse: O(V + E)
//   - Memory:  O(V + E)
//
// Errors
//
//   - ErrNegativeVertexCount  if NewBuilder receives v < 0.
//   - ErrVertexOutOfRange     if an edge endpoint or queried vertex is outside 0..V-1.
//   - ErrBuilderFrozen        if AddEdge is called after Build.
//   - ErrMalformedInput       if Read meets a missing or non-integer token.
package digraph
