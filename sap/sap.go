package sap

import (
	"fmt"

	"github.com/katalvlaran/wordnet/bfs"
	"github.com/katalvlaran/wordnet/digraph"
)

// SAP answers shortest-ancestral-path queries over one digraph.
type SAP struct {
	g *digraph.Digraph
}

// New returns a SAP engine over g. The digraph is shared, not copied; it is
// immutable by construction.
func New(g *digraph.Digraph) (*SAP, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &SAP{g: g}, nil
}

// Graph returns the digraph the engine queries.
func (s *SAP) Graph() *digraph.Digraph { return s.g }

// Length returns the length of a shortest ancestral path between v and w,
// or NoAncestor if there is none.
func (s *SAP) Length(v, w int) (int, error) {
	res, err := s.Find([]int{v}, []int{w})

	return res.Length, err
}

// Ancestor returns a common ancestor of v and w on a shortest ancestral
// path, or NoAncestor if there is none.
func (s *SAP) Ancestor(v, w int) (int, error) {
	res, err := s.Find([]int{v}, []int{w})

	return res.Ancestor, err
}

// LengthSet returns the length of a shortest ancestral path between any
// vertex in vs and any vertex in ws, or NoAncestor if there is none.
func (s *SAP) LengthSet(vs, ws []int) (int, error) {
	res, err := s.Find(vs, ws)

	return res.Length, err
}

// AncestorSet returns a common ancestor on a shortest ancestral path between
// any vertex in vs and any vertex in ws, or NoAncestor if there is none.
func (s *SAP) AncestorSet(vs, ws []int) (int, error) {
	res, err := s.Find(vs, ws)

	return res.Ancestor, err
}

// Find runs one query and returns both the length and the ancestor.
// On error the returned Result is {NoAncestor, NoAncestor}.
func (s *SAP) Find(vs, ws []int) (Result, error) {
	fromV, fromW, err := s.search(vs, ws)
	if err != nil {
		return Result{Length: NoAncestor, Ancestor: NoAncestor}, err
	}

	return s.scan(fromV, fromW), nil
}

// Path returns the vertices of a shortest ancestral path: from a vertex of
// vs up to the ancestor, then down to a vertex of ws. Returns nil when no
// common ancestor exists.
func (s *SAP) Path(vs, ws []int) ([]int, error) {
	_, path, err := s.FindPath(vs, ws)

	return path, err
}

// FindPath is Find plus the path of Path, computed from the same two
// traversals.
func (s *SAP) FindPath(vs, ws []int) (Result, []int, error) {
	none := Result{Length: NoAncestor, Ancestor: NoAncestor}
	fromV, fromW, err := s.search(vs, ws)
	if err != nil {
		return none, nil, err
	}
	res := s.scan(fromV, fromW)
	if !res.Found() {
		return res, nil, nil
	}

	// 1) source in vs → ancestor
	up, err := fromV.PathTo(res.Ancestor)
	if err != nil {
		return none, nil, err
	}
	// 2) source in ws → ancestor, walked backwards and without the ancestor
	down, err := fromW.PathTo(res.Ancestor)
	if err != nil {
		return none, nil, err
	}
	path := make([]int, 0, len(up)+len(down)-1)
	path = append(path, up...)
	for i := len(down) - 2; i >= 0; i-- {
		path = append(path, down[i])
	}

	return res, path, nil
}

// search validates both vertex sets and runs one BFS per side.
func (s *SAP) search(vs, ws []int) (*bfs.Result, *bfs.Result, error) {
	if err := s.validate("first", vs); err != nil {
		return nil, nil, err
	}
	if err := s.validate("second", ws); err != nil {
		return nil, nil, err
	}
	fromV, err := bfs.MultiSource(s.g, vs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	fromW, err := bfs.MultiSource(s.g, ws)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return fromV, fromW, nil
}

// scan picks, in ascending vertex order, the first vertex with the smallest
// finite distV+distW. Later vertices with an equal sum never replace it.
func (s *SAP) scan(fromV, fromW *bfs.Result) Result {
	best := Result{Length: NoAncestor, Ancestor: NoAncestor}
	for u := 0; u < s.g.V(); u++ {
		dv, dw := fromV.DistTo(u), fromW.DistTo(u)
		if dv == bfs.Unreachable || dw == bfs.Unreachable {
			continue
		}
		if sum := dv + dw; best.Ancestor == NoAncestor || sum < best.Length {
			best = Result{Length: sum, Ancestor: u}
		}
	}

	return best
}

// validate rejects nil or empty sets and vertices outside 0..V-1.
func (s *SAP) validate(side string, vs []int) error {
	if len(vs) == 0 {
		return fmt.Errorf("%w: %s vertex set is empty", ErrInvalidArgument, side)
	}
	for _, v := range vs {
		if err := s.g.Validate(v); err != nil {
			return fmt.Errorf("%w: %s vertex set: %v", ErrInvalidArgument, side, err)
		}
	}

	return nil
}
