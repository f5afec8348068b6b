package batch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/batch"
	"github.com/katalvlaran/treeshape/tree"
)

// BenchmarkRun_Yule100x64 measures the full catalog on 64 fresh trees.
// Trees are rebuilt every iteration so the memo starts cold.
func BenchmarkRun_Yule100x64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		trees := make([]*tree.Tree, 64)
		for j := range trees {
			trees[j], _ = tree.Yule(100, tree.WithSeed(int64(j)))
		}
		b.StartTimer()
		_, _ = batch.Run(context.Background(), trees, treeshape.Binary)
	}
}
