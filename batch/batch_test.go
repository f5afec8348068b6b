package batch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/batch"
	"github.com/katalvlaran/treeshape/internal/fixtures"
	"github.com/katalvlaran/treeshape/tree"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_InputOrder(t *testing.T) {
	trees := fixtures.Fischer()
	entries, err := batch.Run(context.Background(), trees, treeshape.Binary,
		batch.WithWorkers(3), batch.WithIndices("sackin_index", "colless_index"))
	require.NoError(t, err)
	require.Len(t, entries, len(trees))

	wantSackin := []float64{20, 19, 18, 17, 16, 16}
	wantColless := []float64{10, 7, 6, 5, 2, 2}
	for i, e := range entries {
		assert.Equal(t, i, e.Pos)
		require.NoError(t, e.Err)
		require.Len(t, e.Report.Results, 2)
		v, err := e.Report.Get("sackin_index")
		require.NoError(t, err)
		assert.Equal(t, wantSackin[i], v, i)
		v, err = e.Report.Get("colless_index")
		require.NoError(t, err)
		assert.Equal(t, wantColless[i], v, i)
	}
}

func TestRun_FullCatalog(t *testing.T) {
	entries, err := batch.Run(context.Background(), []*tree.Tree{fixtures.Mixed()}, treeshape.Arbitrary)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	v, err := entries[0].Report.Get("sackin_index")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	for name, ferr := range entries[0].Report.Failures() {
		assert.ErrorIs(t, ferr, treeshape.ErrMode, name)
	}
}

func TestRun_Relative(t *testing.T) {
	entries, err := batch.Run(context.Background(), []*tree.Tree{fixtures.Fischer1()}, treeshape.Binary,
		batch.WithKind(treeshape.KindRelative), batch.WithIndices("colless_index"))
	require.NoError(t, err)
	v, err := entries[0].Report.Get("colless_index")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestRun_InvalidTreeAborts(t *testing.T) {
	trees := []*tree.Tree{fixtures.Fischer1(), fixtures.Star4(), fixtures.Fischer2()}
	_, err := batch.Run(context.Background(), trees, treeshape.Binary, batch.WithWorkers(1))
	assert.ErrorIs(t, err, treeshape.ErrNotBifurcating)
}

func TestRun_SkipInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	trees := []*tree.Tree{fixtures.Fischer1(), fixtures.Star4(), nil}
	entries, err := batch.Run(context.Background(), trees, treeshape.Binary,
		batch.WithSkipInvalid(), batch.WithLogger(zap.New(core)), batch.WithIndices("cherry_index"))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.NoError(t, entries[0].Err)
	assert.ErrorIs(t, entries[1].Err, treeshape.ErrNotBifurcating)
	assert.Empty(t, entries[1].Report.Results)
	assert.ErrorIs(t, entries[2].Err, treeshape.ErrNilTree)
	assert.Equal(t, 2, logs.FilterMessage("tree skipped").Len())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.Run(ctx, fixtures.Fischer(), treeshape.Binary)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_Empty(t *testing.T) {
	entries, err := batch.Run(context.Background(), nil, treeshape.Binary)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_ManyTrees(t *testing.T) {
	trees := make([]*tree.Tree, 64)
	for i := range trees {
		tr, err := tree.Yule(20, tree.WithSeed(int64(i)))
		require.NoError(t, err)
		trees[i] = tr
	}
	entries, err := batch.Run(context.Background(), trees, treeshape.Binary, batch.WithWorkers(8))
	require.NoError(t, err)
	for i, e := range entries {
		// n=20 binary: every index evaluates.
		assert.Empty(t, e.Report.Failures(), i)
		assert.Equal(t, 20, e.Report.Leaves)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := batch.NewMetrics(reg)
	trees := []*tree.Tree{fixtures.Fischer1(), fixtures.Fischer5(), fixtures.Star4()}

	_, err := batch.Run(context.Background(), trees, treeshape.Binary,
		batch.WithMetrics(m), batch.WithSkipInvalid(),
		batch.WithIndices("sackin_index", "furnas_rank"))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		switch mf.GetName() {
		case "treeshape_evaluations_total":
			assert.Len(t, mf.GetMetric(), 2)
			for _, metric := range mf.GetMetric() {
				got["evaluations"] += metric.GetCounter().GetValue()
			}
		case "treeshape_tree_seconds":
			got["trees"] = float64(mf.GetMetric()[0].GetHistogram().GetSampleCount())
		case "treeshape_tree_errors_total":
			got["rejected"] = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"evaluations": 4, "trees": 2, "rejected": 1}, got)

	assert.Panics(t, func() { batch.NewMetrics(reg) })
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.Panics(t, func() { batch.WithMetrics(nil) })
	assert.Panics(t, func() { batch.WithLogger(nil) })
	assert.Panics(t, func() { batch.WithKind(treeshape.Kind(0)) })
}
