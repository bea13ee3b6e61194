package taxonomy

// nounIndex maps each word to the ids of the synsets containing it.
// words keeps the distinct words in order of first occurrence.
type nounIndex struct {
	ids   map[string][]int
	words []string
}

// buildIndex scans synsets in ascending id order, words in record order,
// appending each synset id to its words' entries. Every id list is
// therefore ascending, and first occurrence means lowest synset id.
// Complexity: O(total word occurrences).
func buildIndex(nodes []Synset) nounIndex {
	idx := nounIndex{ids: make(map[string][]int, len(nodes))}
	for id := range nodes {
		for _, w := range nodes[id].Words {
			ids, seen := idx.ids[w]
			if !seen {
				idx.words = append(idx.words, w)
			}
			// a word repeated inside one synset is indexed once
			if n := len(ids); n > 0 && ids[n-1] == id {
				continue
			}
			idx.ids[w] = append(ids, id)
		}
	}

	return idx
}
