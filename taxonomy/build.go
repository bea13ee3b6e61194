// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Staged construction and validation of a Taxonomy.

package taxonomy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/dfs"
	"github.com/katalvlaran/wordnet/digraph"
)

// Build constructs a validated Taxonomy from parsed synset and hypernym
// records. See the package documentation for the stages and errors.
// Complexity: O(V + E + W) where W is the total number of word occurrences.
func Build(synsets []SynsetRecord, hypernyms []HypernymRecord, opts ...Option) (*Taxonomy, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	log.Debug("taxonomy build started",
		zap.Int("synset_records", len(synsets)),
		zap.Int("hypernym_records", len(hypernyms)))

	// 1) Collect synsets, last write wins
	nodes, err := collectSynsets(synsets)
	if err != nil {
		return nil, err
	}
	log.Debug("synsets collected", zap.Int("vertices", len(nodes)))

	// 2) Link hypernym edges
	g, err := linkHypernyms(len(nodes), hypernyms)
	if err != nil {
		return nil, err
	}
	log.Debug("hypernyms linked", zap.Int("edges", g.E()))

	// 3) Exactly one root
	root, err := findRoot(g)
	if err != nil {
		return nil, err
	}
	log.Debug("root found", zap.Int("root", root))

	// 4) No cycles
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	if cycle != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrInvariantViolation, ErrCycle, cycle)
	}
	log.Debug("cycle check passed")

	// 5) Noun index
	idx := buildIndex(nodes)
	log.Debug("taxonomy build finished",
		zap.Int("vertices", g.V()),
		zap.Int("edges", g.E()),
		zap.Int("nouns", len(idx.words)))

	return &Taxonomy{
		synsets:  nodes,
		graph:    g,
		hyponyms: g.Reverse(),
		root:     root,
		index:    idx,
	}, nil
}

// collectSynsets keys records by id (later records replace earlier ones)
// and checks the ids are exactly 0..V-1. The result is indexed by id.
func collectSynsets(records []SynsetRecord) ([]Synset, error) {
	latest := make(map[int]int, len(records)) // id → index of surviving record
	for i, r := range records {
		if r.ID < 0 {
			return nil, fmt.Errorf("%w: synset record %d: negative id %d", ErrMalformedInput, i+1, r.ID)
		}
		if len(r.Words) == 0 {
			return nil, fmt.Errorf("%w: synset %d has no words", ErrMalformedInput, r.ID)
		}
		latest[r.ID] = i
	}
	if len(latest) == 0 {
		return nil, fmt.Errorf("%w: %w: no synsets", ErrInvariantViolation, ErrNoRoot)
	}

	v := len(latest)
	nodes := make([]Synset, v)
	for i, r := range records {
		if latest[r.ID] != i {
			continue // overwritten by a later record
		}
		if r.ID >= v {
			return nil, fmt.Errorf("%w: synset ids are not dense: %d with only %d synsets",
				ErrInvariantViolation, r.ID, v)
		}
		words := make([]string, len(r.Words))
		copy(words, r.Words)
		nodes[r.ID] = Synset{ID: r.ID, Words: words, Gloss: r.Gloss}
	}

	return nodes, nil
}

// linkHypernyms adds an edge child→parent for every pair in records.
func linkHypernyms(v int, records []HypernymRecord) (*digraph.Digraph, error) {
	b, err := digraph.NewBuilder(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	for _, r := range records {
		for _, p := range r.Parents {
			if err = b.AddEdge(r.ID, p); err != nil {
				return nil, fmt.Errorf("%w: hypernym %d→%d: %v", ErrInvariantViolation, r.ID, p, err)
			}
		}
		// a record without parents still has to name a known synset
		if len(r.Parents) == 0 {
			if r.ID < 0 || r.ID >= v {
				return nil, fmt.Errorf("%w: hypernym record for unknown synset %d", ErrInvariantViolation, r.ID)
			}
		}
	}

	return b.Build(), nil
}

// findRoot returns the single vertex without outgoing edges.
func findRoot(g *digraph.Digraph) (int, error) {
	sinks := g.Sinks()
	switch {
	case len(sinks) == 0:
		return 0, fmt.Errorf("%w: %w", ErrInvariantViolation, ErrNoRoot)
	case len(sinks) > 1:
		shown := sinks
		if len(shown) > 10 {
			shown = shown[:10]
		}
		return 0, fmt.Errorf("%w: %w: %d candidates, first %v", ErrInvariantViolation, ErrMultipleRoots, len(sinks), shown)
	}

	return sinks[0], nil
}
