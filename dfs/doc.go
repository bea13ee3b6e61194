// Package dfs implements depth-first cycle detection and topological sort
// over a digraph.Digraph.
//
// What:
//
//   - FindCycle: returns the first directed cycle met by a White/Gray/Black
//     depth-first search, as a closed vertex sequence [v0 … vk v0], or nil
//     when the graph is acyclic. Self-loops are reported as [v v].
//   - TopologicalSort: orders vertices so that every edge u→v has u before v,
//     or fails with ErrCycleDetected.
//
// Why:
//   - Validate that a hypernym relation is a DAG before it is queried.
//   - Order synsets from most specific to most general for depth statistics.
//
// Determinism:
//
//	Roots of the search are taken in ascending vertex order and neighbors in
//	adjacency (insertion) order, so both results are reproducible.
//
// Stack safety:
//
//	The search keeps an explicit frame stack instead of recursing, so long
//	hypernym chains cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       if a nil graph is passed.
//   - ErrCycleDetected  from TopologicalSort when a cycle exists.
package dfs
