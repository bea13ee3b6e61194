package sap_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordnet/digraph"
	"github.com/katalvlaran/wordnet/sap"
)

// digraph1 is the classic 13-vertex sample: a rooted DAG at 0 plus the
// isolated vertex 6.
const digraph1 = `13
11
 7  3
 8  3
 3  1
 4  1
 5  1
 9  5
10  5
11 10
12 10
 1  0
 2  0
`

// newSAP parses text with digraph.Read and wraps it in an engine.
func newSAP(t testing.TB, text string) *sap.SAP {
	t.Helper()
	g, err := digraph.Read(strings.NewReader(text))
	require.NoError(t, err)
	s, err := sap.New(g)
	require.NoError(t, err)

	return s
}

// edges builds a digraph from an edge list and wraps it in an engine.
func edges(t testing.TB, v int, es ...[2]int) *sap.SAP {
	t.Helper()
	b, err := digraph.NewBuilder(v)
	require.NoError(t, err)
	for _, e := range es {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	s, err := sap.New(b.Build())
	require.NoError(t, err)

	return s
}

// TestNew_NilGraph rejects a nil digraph.
func TestNew_NilGraph(t *testing.T) {
	_, err := sap.New(nil)
	assert.ErrorIs(t, err, sap.ErrGraphNil)
}

// TestSingle_Digraph1 checks the reference answers on digraph1.
func TestSingle_Digraph1(t *testing.T) {
	s := newSAP(t, digraph1)

	cases := []struct {
		v, w, length, ancestor int
	}{
		{3, 11, 4, 1},
		{9, 12, 3, 5},
		{7, 2, 4, 0},
		{1, 6, -1, -1},
		{12, 12, 0, 12},
		{10, 12, 1, 10},
	}
	for _, tc := range cases {
		l, err := s.Length(tc.v, tc.w)
		require.NoError(t, err)
		a, err := s.Ancestor(tc.v, tc.w)
		require.NoError(t, err)
		assert.Equal(t, tc.length, l, "length(%d,%d)", tc.v, tc.w)
		assert.Equal(t, tc.ancestor, a, "ancestor(%d,%d)", tc.v, tc.w)

		// symmetry of the length
		lr, err := s.Length(tc.w, tc.v)
		require.NoError(t, err)
		assert.Equal(t, l, lr)
	}
}

// TestSingle_SelfIsAncestor covers length(v,v)=0 and ancestor(v,v)=v on every vertex.
func TestSingle_SelfIsAncestor(t *testing.T) {
	s := newSAP(t, digraph1)
	for v := 0; v < s.Graph().V(); v++ {
		res, err := s.Find([]int{v}, []int{v})
		require.NoError(t, err)
		assert.Equal(t, sap.Result{Length: 0, Ancestor: v}, res)
	}
}

// TestSingle_TwoChildrenOfRoot covers the minimal A→R, B→R taxonomy.
func TestSingle_TwoChildrenOfRoot(t *testing.T) {
	// R=0, A=1, B=2
	s := edges(t, 3, [2]int{1, 0}, [2]int{2, 0})

	l, err := s.Length(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, l)
	a, err := s.Ancestor(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
}

// TestTieBreak_LowestID ensures equal sums keep the lowest vertex id,
// whatever the edge insertion order.
func TestTieBreak_LowestID(t *testing.T) {
	// 0 and 1 both reach 2 and 3 in one step.
	a := edges(t, 4, [2]int{0, 3}, [2]int{0, 2}, [2]int{1, 3}, [2]int{1, 2})
	b := edges(t, 4, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3})

	for _, s := range []*sap.SAP{a, b} {
		res, err := s.Find([]int{0}, []int{1})
		require.NoError(t, err)
		assert.Equal(t, sap.Result{Length: 2, Ancestor: 2}, res)
	}
}

// TestTieBreak_ShorterBeatsLowerID makes sure a strictly shorter sum at a
// higher id replaces an earlier, longer candidate.
func TestTieBreak_ShorterBeatsLowerID(t *testing.T) {
	// 3 and 4 each have edges to 1 and 2; 1 → 0.
	s := edges(t, 5, [2]int{3, 1}, [2]int{1, 0}, [2]int{3, 2}, [2]int{4, 2}, [2]int{4, 1})

	res, err := s.Find([]int{3}, []int{4})
	require.NoError(t, err)
	// vertex 1 is reachable in 1+1=2 and so is 2 (1+1); 1 comes first.
	assert.Equal(t, sap.Result{Length: 2, Ancestor: 1}, res)

	// Now 4 only reaches 0 through 2: sum at 0 is 2+2, at 2 it is 1+1.
	s = edges(t, 5, [2]int{3, 1}, [2]int{1, 0}, [2]int{3, 2}, [2]int{4, 2}, [2]int{2, 0})
	res, err = s.Find([]int{3}, []int{4})
	require.NoError(t, err)
	assert.Equal(t, sap.Result{Length: 2, Ancestor: 2}, res)
}

// TestCyclicGraph verifies termination and correctness on a directed cycle.
func TestCyclicGraph(t *testing.T) {
	// 0 → 1 → 2 → 3 → 4 → 5 → 0
	s := edges(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0},
	)
	res, err := s.Find([]int{1}, []int{5})
	require.NoError(t, err)
	// 5 reaches 1 in two steps (5→0→1); 1 itself is at distance 0.
	assert.Equal(t, sap.Result{Length: 2, Ancestor: 1}, res)
}

// TestDisconnected reports NoAncestor across components and multiple sinks.
func TestDisconnected(t *testing.T) {
	s := edges(t, 4, [2]int{0, 1}, [2]int{2, 3})

	res, err := s.Find([]int{0}, []int{2})
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, sap.NoAncestor, res.Length)

	path, err := s.Path([]int{0}, []int{2})
	require.NoError(t, err)
	assert.Nil(t, path)
}

// TestSet_MatchesSingleMinimum checks length(V,W) = min over pairs.
func TestSet_MatchesSingleMinimum(t *testing.T) {
	s := newSAP(t, digraph1)
	sets := []struct{ vs, ws []int }{
		{[]int{3, 11}, []int{9}},
		{[]int{7, 12}, []int{2}},
		{[]int{12, 8}, []int{4, 6}},
		{[]int{6}, []int{0, 2}},
	}
	for _, tc := range sets {
		want := -1
		for _, v := range tc.vs {
			for _, w := range tc.ws {
				l, err := s.Length(v, w)
				require.NoError(t, err)
				if l != -1 && (want == -1 || l < want) {
					want = l
				}
			}
		}
		got, err := s.LengthSet(tc.vs, tc.ws)
		require.NoError(t, err)
		assert.Equal(t, want, got, "length(%v,%v)", tc.vs, tc.ws)
	}
}

// TestSet_SharedVertex covers V ∩ W ≠ ∅.
func TestSet_SharedVertex(t *testing.T) {
	s := newSAP(t, digraph1)

	l, err := s.LengthSet([]int{3, 9, 4}, []int{12, 9})
	require.NoError(t, err)
	assert.Equal(t, 0, l)
	a, err := s.AncestorSet([]int{3, 9, 4}, []int{12, 9})
	require.NoError(t, err)
	assert.Equal(t, 9, a)
}

// TestInvalidArguments covers empty sets and out-of-range ids on both sides.
func TestInvalidArguments(t *testing.T) {
	s := newSAP(t, digraph1)

	cases := []struct {
		name   string
		vs, ws []int
	}{
		{"nil first", nil, []int{1}},
		{"empty second", []int{1}, []int{}},
		{"negative", []int{-1}, []int{1}},
		{"too large", []int{1}, []int{13}},
		{"one bad in set", []int{1, 2, 99}, []int{3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.LengthSet(tc.vs, tc.ws)
			assert.ErrorIs(t, err, sap.ErrInvalidArgument)
			_, err = s.AncestorSet(tc.vs, tc.ws)
			assert.ErrorIs(t, err, sap.ErrInvalidArgument)
			_, err = s.Path(tc.vs, tc.ws)
			assert.ErrorIs(t, err, sap.ErrInvalidArgument)
		})
	}

	_, err := s.Length(0, 13)
	assert.ErrorIs(t, err, sap.ErrInvalidArgument)
	_, err = s.Ancestor(-3, 0)
	assert.ErrorIs(t, err, sap.ErrInvalidArgument)
}

// TestPath reconstructs the path through the ancestor.
func TestPath(t *testing.T) {
	s := newSAP(t, digraph1)

	path, err := s.Path([]int{3}, []int{11})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 5, 10, 11}, path)

	res, path, err := s.FindPath([]int{9}, []int{12})
	require.NoError(t, err)
	assert.Equal(t, sap.Result{Length: 3, Ancestor: 5}, res)
	assert.Equal(t, []int{9, 5, 10, 12}, path)

	path, err = s.Path([]int{4}, []int{4})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, path)
}

// TestConcurrentQueries runs read-only queries from many goroutines.
func TestConcurrentQueries(t *testing.T) {
	s := newSAP(t, digraph1)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := s.Length(3, 11)
			if err != nil {
				errs <- err
				return
			}
			if l != 4 {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
