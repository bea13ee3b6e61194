// Package wordnet measures semantic relatedness between nouns of a lexical
// taxonomy: a rooted DAG of synsets joined by hypernym ("is a kind of")
// edges.
//
// The distance between two nouns is the length of the shortest ancestral
// path (SAP) between any synset of the first and any synset of the second:
// up from one to a common ancestor, then down to the other. The SAP of two
// nouns is that ancestor synset.
//
// Under the hood, everything is organized in small packages:
//
//	digraph/  immutable integer-indexed digraph, text reader
//	dfs/      cycle detection and topological sort
//	bfs/      multi-source breadth-first search
//	sap/      shortest ancestral path over any digraph
//	taxonomy/ validated synset DAG and noun index
//	outcast/  least related word in a group
//	records/  synset, hypernym and word-list parsers
//	snapshot/ msgpack snapshots of parsed records
//	loader/   files or snapshot to taxonomy
//	config/   YAML/TOML configuration
//	logging/  zap logger setup
//	cmd/wordnet command-line front end
//
// Quick example:
//
//	         entity
//	        /      \
//	   animal      furniture
//	    /   \          \
//	  cat   dog        table
//
//	distance(cat, dog)   = 2, sap = animal
//	distance(cat, table) = 4, sap = entity
//
// A WordNet is immutable: any number of goroutines may query it at once.
package wordnet
