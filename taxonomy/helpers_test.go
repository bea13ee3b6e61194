package taxonomy_test

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wordnet/taxonomy"
)

// fixture is a small noun taxonomy rooted at "entity" (id 0). "table" is
// polysemous (ids 4 and 5) and "miniature" (11) has two hypernyms.
var fixture = []string{
	"0,entity",
	"1,object physical_object",
	"2,animal beast animate_being",
	"3,furniture piece_of_furniture",
	"4,table",
	"5,table tabular_array",
	"6,mammal",
	"7,carnivore",
	"8,canine canid",
	"9,dog domestic_dog Canis_familiaris",
	"10,poodle poodle_dog",
	"11,miniature miniature_poodle",
	"12,feline felid",
	"13,arrangement",
	"14,abstraction abstract_entity",
	"15,cat true_cat",
	"16,bear",
	"17,equine equid",
	"18,ungulate hoofed_mammal",
	"19,horse Equus_caballus",
	"20,zebra",
}

var fixtureHypernyms = []string{
	"1,0", "2,1", "3,1", "4,3", "5,13", "6,2", "7,6", "8,7", "9,8", "10,9",
	"11,10,9", "12,7", "13,14", "14,0", "15,12", "16,7", "17,18", "18,6",
	"19,17", "20,17",
}

// synsetRecords turns "id,words" lines into records.
func synsetRecords(lines ...string) []taxonomy.SynsetRecord {
	out := make([]taxonomy.SynsetRecord, 0, len(lines))
	for _, l := range lines {
		f := strings.SplitN(l, ",", 2)
		id, _ := strconv.Atoi(f[0])
		out = append(out, taxonomy.SynsetRecord{ID: id, Words: strings.Fields(f[1])})
	}

	return out
}

// hypernymRecords turns "id,p1,p2" lines into records.
func hypernymRecords(lines ...string) []taxonomy.HypernymRecord {
	out := make([]taxonomy.HypernymRecord, 0, len(lines))
	for _, l := range lines {
		f := strings.Split(l, ",")
		id, _ := strconv.Atoi(f[0])
		r := taxonomy.HypernymRecord{ID: id}
		for _, p := range f[1:] {
			n, _ := strconv.Atoi(p)
			r.Parents = append(r.Parents, n)
		}
		out = append(out, r)
	}

	return out
}
