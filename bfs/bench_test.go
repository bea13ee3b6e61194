package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wordnet/bfs"
	"github.com/katalvlaran/wordnet/digraph"
)

// BenchmarkMultiSource_BinaryTree runs BFS from all leaves of a complete
// binary tree whose edges point from child to parent.
func BenchmarkMultiSource_BinaryTree(b *testing.B) {
	const depth = 14 // 2^14 − 1 = 16383 vertices
	n := (1 << depth) - 1
	bld, _ := digraph.NewBuilder(n)
	for i := 1; i < n; i++ {
		_ = bld.AddEdge(i, (i-1)/2)
	}
	g := bld.Build()

	leaves := make([]int, 0, n/2+1)
	for i := n / 2; i < n; i++ {
		leaves = append(leaves, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.MultiSource(g, leaves)
	}
}
