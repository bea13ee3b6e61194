// Package sap computes shortest ancestral paths in a digraph.
//
// An ancestral path between vertex sets V and W is a directed path from
// some v ∈ V to a common ancestor x, together with a directed path from
// some w ∈ W to the same x. A shortest ancestral path minimizes the total
// number of edges; x is its ancestor.
//
// Algorithm
//
//  1. Multi-source BFS from every vertex of V (bfs.MultiSource).
//  2. Multi-source BFS from every vertex of W.
//  3. One scan over 0..V-1 keeping the vertex u, reachable from both sides,
//     with the smallest distV[u]+distW[u]. The scan replaces the running
//     best only on a strictly smaller sum, so among ties the lowest vertex
//     id wins.
//
// The engine works on any digraph: cycles, several sinks and disconnected
// components are all allowed. When no vertex is reachable from both sides,
// Length and Ancestor report NoAncestor (-1); this is a normal outcome, not
// an error.
//
// Complexity
//
//   - Time:   O(V + E) per query, independent of |V| and |W|.
//   - Memory: O(V) per query, released on return.
//
// Concurrency
//
//	A SAP never mutates its digraph and keeps no state between calls, so one
//	value may serve concurrent queries.
//
// Errors
//
//   - ErrGraphNil         from New when the digraph is nil.
//   - ErrInvalidArgument  for a nil or empty vertex set or a vertex outside 0..V-1.
package sap
