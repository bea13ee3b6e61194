package wordnet

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/wordnet/sap"
	"github.com/katalvlaran/wordnet/taxonomy"
)

var (
	// ErrInvalidArgument is returned for empty or unknown nouns.
	// It is the taxonomy sentinel, so errors.Is works across both packages.
	ErrInvalidArgument = taxonomy.ErrInvalidArgument

	// ErrTaxonomyNil is returned by New for a nil taxonomy.
	ErrTaxonomyNil = errors.New("wordnet: taxonomy is nil")

	// ErrNoCommonAncestor means two vocabulary nouns share no ancestor.
	// A validated taxonomy is connected through its root, so this signals a
	// broken invariant rather than a normal outcome.
	ErrNoCommonAncestor = errors.New("wordnet: no common ancestor")
)

// WordNet answers noun-level distance and ancestor queries.
type WordNet struct {
	tx  *taxonomy.Taxonomy
	sap *sap.SAP
}

// Relation describes how two nouns are connected.
type Relation struct {
	Distance int
	Ancestor taxonomy.Synset
	// Path lists synset ids from a synset of the first noun, up to Ancestor,
	// and down to a synset of the second noun.
	Path []int
}

// New wraps a built taxonomy.
func New(tx *taxonomy.Taxonomy) (*WordNet, error) {
	if tx == nil {
		return nil, ErrTaxonomyNil
	}
	s, err := sap.New(tx.Graph())
	if err != nil {
		return nil, fmt.Errorf("wordnet: %w", err)
	}

	return &WordNet{tx: tx, sap: s}, nil
}

// Taxonomy returns the underlying taxonomy.
func (w *WordNet) Taxonomy() *taxonomy.Taxonomy { return w.tx }

// Nouns returns a lazy, restartable sequence of every distinct noun.
func (w *WordNet) Nouns() iter.Seq[string] { return w.tx.Nouns() }

// IsNoun reports whether word is in the vocabulary; an empty word is an
// invalid argument.
func (w *WordNet) IsNoun(word string) (bool, error) { return w.tx.IsNoun(word) }

// Distance returns the shortest-ancestral-path length between any synset
// of a and any synset of b.
func (w *WordNet) Distance(a, b string) (int, error) {
	sa, sb, err := w.lookup(a, b)
	if err != nil {
		return 0, err
	}
	d, err := w.sap.LengthSet(sa, sb)
	if err != nil {
		return 0, fmt.Errorf("wordnet: distance(%q, %q): %w", a, b, err)
	}

	return d, nil
}

// SAP returns the words of the common-ancestor synset on a shortest
// ancestral path between a and b, space-joined.
func (w *WordNet) SAP(a, b string) (string, error) {
	sa, sb, err := w.lookup(a, b)
	if err != nil {
		return "", err
	}
	anc, err := w.sap.AncestorSet(sa, sb)
	if err != nil {
		return "", fmt.Errorf("wordnet: sap(%q, %q): %w", a, b, err)
	}
	if anc == sap.NoAncestor {
		return "", fmt.Errorf("%w: %q and %q", ErrNoCommonAncestor, a, b)
	}
	s, err := w.tx.Synset(anc)
	if err != nil {
		return "", err
	}

	return s.String(), nil
}

// Relation returns the distance, ancestor synset and connecting path of
// a and b.
func (w *WordNet) Relation(a, b string) (Relation, error) {
	sa, sb, err := w.lookup(a, b)
	if err != nil {
		return Relation{}, err
	}
	res, path, err := w.sap.FindPath(sa, sb)
	if err != nil {
		return Relation{}, fmt.Errorf("wordnet: relation(%q, %q): %w", a, b, err)
	}
	if !res.Found() {
		return Relation{}, fmt.Errorf("%w: %q and %q", ErrNoCommonAncestor, a, b)
	}
	anc, err := w.tx.Synset(res.Ancestor)
	if err != nil {
		return Relation{}, err
	}

	return Relation{Distance: res.Length, Ancestor: anc, Path: path}, nil
}

// lookup resolves both nouns to their synset ids.
func (w *WordNet) lookup(a, b string) ([]int, []int, error) {
	sa, err := w.tx.SynsetsOf(a)
	if err != nil {
		return nil, nil, err
	}
	sb, err := w.tx.SynsetsOf(b)
	if err != nil {
		return nil, nil, err
	}

	return sa, sb, nil
}
