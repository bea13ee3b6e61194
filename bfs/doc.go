// Package bfs provides multi-source breadth-first search over a
// digraph.Digraph, returning unweighted shortest distances, parent links,
// and visit order.
//
// What
//
//   - Every source vertex is seeded at distance 0; the search then follows
//     edges forward (tail→head). For a hypernym graph this walks from
//     specific synsets up towards the root.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - DistTo(v): fewest edges from the nearest source to v, or Unreachable
//   - PathTo(v): one shortest path from some source to v
//   - Duplicate sources are tolerated and counted once.
//
// Why
//
//   - Two multi-source searches and one linear scan are all the
//     shortest-ancestral-path engine needs, in O(V + E) per query no matter
//     how many sources each side has.
//
// Determinism
//
//	Sources are enqueued in the order given and neighbors in adjacency
//	order, so Order and the parent links are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, distance and parent slices)
//
// Usage
//
//	res, err := bfs.MultiSource(g, []int{3, 7})
//	if err != nil {
//		// ErrGraphNil, ErrNoSources or ErrSourceOutOfRange
//	}
//	d := res.DistTo(0)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrNoSources          if the source list is empty.
//   - ErrSourceOutOfRange   if a source is outside 0..V-1.
//   - ErrNoPath             from PathTo when the target was not reached.
package bfs
