// SPDX-License-Identifier: MIT
//
// File: taxonomy.go
// Role: Read-only queries over a built Taxonomy.
// Concurrency:
//   - No method mutates the receiver; all are safe for concurrent use.

package taxonomy

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/wordnet/digraph"
)

// Taxonomy is an immutable, validated hypernym DAG with its noun index.
type Taxonomy struct {
	synsets  []Synset         // vertex id → synset
	graph    *digraph.Digraph // child → hypernym edges
	hyponyms *digraph.Digraph // hypernym → child edges
	root     int
	index    nounIndex
}

// V returns the number of synsets.
func (t *Taxonomy) V() int { return len(t.synsets) }

// Graph returns the hypernym digraph (edges point to more general synsets).
func (t *Taxonomy) Graph() *digraph.Digraph { return t.graph }

// Root returns the id of the unique most general synset.
func (t *Taxonomy) Root() int { return t.root }

// NounCount returns the number of distinct words.
func (t *Taxonomy) NounCount() int { return len(t.index.words) }

// Nouns returns a lazy sequence of the distinct words in order of first
// occurrence by ascending synset id, independent of record order. The
// sequence may be ranged over any number of times.
func (t *Taxonomy) Nouns() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range t.index.words {
			if !yield(w) {
				return
			}
		}
	}
}

// IsNoun reports whether word belongs to the vocabulary.
// An empty word is an invalid argument rather than a miss.
// Complexity: O(1) expected.
func (t *Taxonomy) IsNoun(word string) (bool, error) {
	if word == "" {
		return false, fmt.Errorf("%w: empty word", ErrInvalidArgument)
	}
	_, ok := t.index.ids[word]

	return ok, nil
}

// SynsetsOf returns the ids of every synset containing word, ascending.
// The slice is shared and must not be modified.
// Returns ErrInvalidArgument for an empty word and ErrUnknownNoun for a
// word outside the vocabulary.
func (t *Taxonomy) SynsetsOf(word string) ([]int, error) {
	if word == "" {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidArgument)
	}
	ids, ok := t.index.ids[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoun, word)
	}

	return ids, nil
}

// Synset returns the synset with the given id.
func (t *Taxonomy) Synset(id int) (Synset, error) {
	if id < 0 || id >= len(t.synsets) {
		return Synset{}, fmt.Errorf("%w: synset %d not in [0, %d)", ErrInvalidArgument, id, len(t.synsets))
	}

	return t.synsets[id], nil
}

// Hypernyms returns the ids of the direct hypernyms of id, in input order.
func (t *Taxonomy) Hypernyms(id int) ([]int, error) {
	if err := t.graph.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return t.graph.Adj(id), nil
}

// Hyponyms returns the ids of the synsets whose direct hypernym is id,
// in ascending order.
func (t *Taxonomy) Hyponyms(id int) ([]int, error) {
	if err := t.hyponyms.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return t.hyponyms.Adj(id), nil
}
