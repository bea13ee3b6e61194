// Package taxonomy builds and queries a validated hypernym taxonomy: a
// rooted directed acyclic graph of synsets plus an index from each noun to
// the synsets that contain it.
//
// Construction
//
//	tx, err := taxonomy.Build(synsets, hypernyms)
//
// Build runs in stages and either returns a complete Taxonomy or an error,
// never a partial one:
//
//  1. Collect synset records. A repeated id overwrites the earlier record
//     (last write wins).
//  2. Check that the distinct ids are dense, 0..V-1.
//  3. Add one edge child→parent for every (child, parent) hypernym pair.
//  4. Require exactly one vertex with no outgoing edge (the root).
//  5. Require the edge relation to be acyclic.
//  6. Index nouns by scanning synsets in ascending id order.
//
// Queries
//
//	A Taxonomy is immutable. Nouns, IsNoun, SynsetsOf, Synset, Hyponyms and
//	Stats are read-only and safe to call from many goroutines at once.
//
// Errors
//
//   - ErrMalformedInput      a record is unusable (negative id, no words).
//   - ErrInvariantViolation  ids not dense, edge to an unknown id, root count
//     other than one (ErrNoRoot, ErrMultipleRoots) or a cycle (ErrCycle).
//   - ErrInvalidArgument     empty word or out-of-range synset id at query
//     time; ErrUnknownNoun for a word outside the vocabulary.
package taxonomy
