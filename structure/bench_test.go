package structure_test

import (
	"testing"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// BenchmarkCladeSizes measures the uncached postorder pass; each iteration
// uses a fresh tree so the memo never hits.
func BenchmarkCladeSizes(b *testing.B) {
	trees := make([]*tree.Tree, b.N)
	for i := range trees {
		trees[i], _ = tree.Yule(512, tree.WithSeed(int64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = structure.CladeSizes(trees[i])
	}
}
