package wordnet_test

import (
	"fmt"

	"github.com/katalvlaran/wordnet"
	"github.com/katalvlaran/wordnet/taxonomy"
)

// Example builds the taxonomy from the package documentation.
func Example() {
	synsets := []taxonomy.SynsetRecord{
		{ID: 0, Words: []string{"entity"}},
		{ID: 1, Words: []string{"animal"}},
		{ID: 2, Words: []string{"furniture"}},
		{ID: 3, Words: []string{"cat"}},
		{ID: 4, Words: []string{"dog"}},
		{ID: 5, Words: []string{"table"}},
	}
	hypernyms := []taxonomy.HypernymRecord{
		{ID: 1, Parents: []int{0}},
		{ID: 2, Parents: []int{0}},
		{ID: 3, Parents: []int{1}},
		{ID: 4, Parents: []int{1}},
		{ID: 5, Parents: []int{2}},
	}
	tx, err := taxonomy.Build(synsets, hypernyms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	wn, _ := wordnet.New(tx)

	for _, pair := range [][2]string{{"cat", "dog"}, {"cat", "table"}} {
		d, _ := wn.Distance(pair[0], pair[1])
		s, _ := wn.SAP(pair[0], pair[1])
		fmt.Printf("distance(%s, %s) = %d, sap = %s\n", pair[0], pair[1], d, s)
	}
	// Output:
	// distance(cat, dog) = 2, sap = animal
	// distance(cat, table) = 4, sap = entity
}
