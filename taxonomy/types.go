// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Input records, the Synset value, build options and sentinel errors.

package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for taxonomy construction and queries.
var (
	// ErrMalformedInput indicates a record that cannot describe a synset or edge.
	ErrMalformedInput = errors.New("taxonomy: malformed input")

	// ErrInvariantViolation indicates the records do not form a rooted DAG
	// over dense ids. It is always wrapped with a more specific cause.
	ErrInvariantViolation = errors.New("taxonomy: invariant violation")

	// ErrNoRoot indicates no synset lacks a hypernym.
	ErrNoRoot = errors.New("no root synset")

	// ErrMultipleRoots indicates more than one synset lacks a hypernym.
	ErrMultipleRoots = errors.New("multiple root synsets")

	// ErrCycle indicates the hypernym relation contains a directed cycle.
	ErrCycle = errors.New("hypernym cycle")

	// ErrInvalidArgument indicates a missing word or out-of-range synset id.
	ErrInvalidArgument = errors.New("taxonomy: invalid argument")

	// ErrUnknownNoun indicates a word outside the vocabulary. It wraps
	// ErrInvalidArgument so callers may test for either.
	ErrUnknownNoun = fmt.Errorf("%w: unknown noun", ErrInvalidArgument)
)

// SynsetRecord is one parsed line of the synset source.
type SynsetRecord struct {
	ID    int      `msgpack:"id"`
	Words []string `msgpack:"words"`
	Gloss string   `msgpack:"gloss,omitempty"`
}

// HypernymRecord is one parsed line of the hypernym source: a child synset
// and its direct hypernyms. Parents may be empty.
type HypernymRecord struct {
	ID      int   `msgpack:"id"`
	Parents []int `msgpack:"parents"`
}

// Synset is a vertex of the taxonomy with its member words.
type Synset struct {
	ID    int
	Words []string
	Gloss string
}

// String renders the member words space-joined, in order.
func (s Synset) String() string { return strings.Join(s.Words, " ") }

// Option configures Build.
type Option func(*buildOptions)

// buildOptions holds Build settings.
type buildOptions struct {
	logger *zap.Logger
}

// defaultBuildOptions returns options with a no-op logger.
func defaultBuildOptions() buildOptions {
	return buildOptions{logger: zap.NewNop()}
}

// WithLogger sets the logger used for stage-level debug output.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
