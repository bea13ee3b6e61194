// Package outcast picks the least related noun of a group.
//
// For every noun x of the group, outcast sums the distances from x to each
// other member:
//
//	d(x) = Σ distance(x, y)   for y in group, y != x
//
// and returns the noun with the largest sum. Members are compared by value:
// repeated strings contribute nothing to each other. Ties resolve to the
// first maximal noun in input order.
//
// Any type with a Distance(a, b string) (int, error) method can back an
// Outcast; *wordnet.WordNet is the usual one. FindAll evaluates many groups
// concurrently and requires the Distancer to be safe for concurrent use.
package outcast
