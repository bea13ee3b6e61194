package taxonomy

import "github.com/katalvlaran/wordnet/dfs"

// Stats summarizes the shape of a taxonomy.
type Stats struct {
	Synsets    int // vertices
	Hypernyms  int // edges
	Nouns      int // distinct words
	Polysemous int // words found in more than one synset
	Leaves     int // synsets without hyponyms
	Root       int
	MaxDepth   int // longest hypernym chain from any synset to the root
}

// Stats computes summary figures in O(V + E).
func (t *Taxonomy) Stats() Stats {
	st := Stats{
		Synsets:   t.V(),
		Hypernyms: t.graph.E(),
		Nouns:     t.NounCount(),
		Root:      t.root,
	}
	for _, ids := range t.index.ids {
		if len(ids) > 1 {
			st.Polysemous++
		}
	}
	for v := 0; v < t.graph.V(); v++ {
		if t.graph.InDegree(v) == 0 {
			st.Leaves++
		}
	}
	st.MaxDepth = t.maxDepth()

	return st
}

// maxDepth walks a topological order backwards, so every hypernym is
// finished before its hyponyms, and keeps the longest distance to the root.
func (t *Taxonomy) maxDepth() int {
	order, err := dfs.TopologicalSort(t.graph)
	if err != nil {
		return 0 // unreachable: Build rejects cycles
	}
	depth := make([]int, t.graph.V())
	best := 0
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		for _, p := range t.graph.Adj(v) {
			if d := depth[p] + 1; d > depth[v] {
				depth[v] = d
			}
		}
		if depth[v] > best {
			best = depth[v]
		}
	}

	return best
}
