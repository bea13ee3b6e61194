package sap

import "errors"

// NoAncestor is the Length and Ancestor reported when no common ancestor exists.
const NoAncestor = -1

var (
	// ErrGraphNil is returned by New for a nil digraph.
	ErrGraphNil = errors.New("sap: graph is nil")

	// ErrInvalidArgument is returned for empty vertex sets and out-of-range vertices.
	ErrInvalidArgument = errors.New("sap: invalid argument")
)

// Result is the outcome of a shortest-ancestral-path query.
// Both fields are NoAncestor when the two sides share no ancestor.
type Result struct {
	Length   int
	Ancestor int
}

// Found reports whether a common ancestor exists.
func (r Result) Found() bool { return r.Ancestor != NoAncestor }
