// Command wordnet answers distance, ancestor and outcast queries over a
// WordNet-style noun taxonomy.
//
//	wordnet --synsets synsets.txt --hypernyms hypernyms.txt distance cat horse
//	wordnet outcast outcast5.txt outcast8.txt
//	wordnet digraph digraph1.txt < pairs.txt
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	a := &app{}
	err := a.rootCmd().Execute()
	a.sync()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
