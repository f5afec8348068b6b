package treeshape_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/index"
	"github.com/katalvlaran/treeshape/internal/fixtures"
	"github.com/katalvlaran/treeshape/tree"
)

func mustEngine(t *testing.T, tr *tree.Tree, mode treeshape.Mode, opts ...treeshape.Option) *treeshape.Engine {
	t.Helper()
	e, err := treeshape.New(tr, mode, opts...)
	require.NoError(t, err)
	return e
}

func TestNew_Errors(t *testing.T) {
	_, err := treeshape.New(nil, treeshape.Binary)
	assert.ErrorIs(t, err, treeshape.ErrNilTree)

	_, err = treeshape.New(fixtures.Fischer1(), treeshape.Mode(0))
	assert.ErrorIs(t, err, treeshape.ErrUnknownMode)

	_, err = treeshape.New(fixtures.Star4(), treeshape.Binary)
	assert.ErrorIs(t, err, treeshape.ErrNotBifurcating)
}

func TestNew_SizeParameters(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer1(), treeshape.Binary)
	assert.Equal(t, 6, e.Leaves())
	assert.Equal(t, 5, e.Internal())

	e = mustEngine(t, fixtures.Mixed(), treeshape.Arbitrary)
	assert.Equal(t, 5, e.Leaves())
	assert.Equal(t, 3, e.Internal())
}

func TestFischer1_Caterpillar(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer1(), treeshape.Binary)
	want := map[string]float64{
		"sackin_index":         20,
		"colless_index":        10,
		"cherry_index":         1,
		"diameter":             6,
		"colijn_plazotta_rank": 68,
	}
	for name, w := range want {
		v, err := e.Absolute(name)
		require.NoError(t, err, name)
		assert.Equal(t, w, v, name)
	}

	rel, err := e.Relative("colless_index")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rel)
}

func TestFischer6_Balanced(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer6(), treeshape.Binary)
	for name, w := range map[string]float64{"colless_index": 2, "I_root": 0, "mean_I": 0} {
		v, err := e.Absolute(name)
		require.NoError(t, err, name)
		assert.Equal(t, w, v, name)
	}
}

func TestAbsolute_Idempotent(t *testing.T) {
	tr := fixtures.Fischer2()
	e := mustEngine(t, tr, treeshape.Binary)
	for _, name := range index.Names() {
		a, err := e.Absolute(name)
		require.NoError(t, err, name)
		b, err := e.Absolute(name)
		require.NoError(t, err, name)
		assert.Equal(t, math.Float64bits(a), math.Float64bits(b), name)
		assert.Equal(t, 1, tr.Memo().Computations(tree.Attr(name)), name)
	}
}

func TestAbsolute_UnknownIndex(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer1(), treeshape.Binary)
	_, err := e.Absolute("nope")
	assert.ErrorIs(t, err, treeshape.ErrUnknownIndex)
	_, err = e.Relative("nope")
	assert.ErrorIs(t, err, treeshape.ErrUnknownIndex)
	_, err = e.RelativeNormalized("nope")
	assert.ErrorIs(t, err, treeshape.ErrUnknownIndex)
	_, _, err = e.Bounds("nope")
	assert.ErrorIs(t, err, treeshape.ErrUnknownIndex)
}

// TestRelative_RoundTrip checks rel·(max-min)+min reproduces the absolute
// value whenever Relative succeeds.
func TestRelative_RoundTrip(t *testing.T) {
	trees := append(fixtures.Fischer(), fixtures.Mixed(), fixtures.Star4())
	for _, tr := range trees {
		for _, mode := range []treeshape.Mode{treeshape.Binary, treeshape.Arbitrary} {
			e, err := treeshape.New(tr, mode)
			if errors.Is(err, treeshape.ErrNotBifurcating) {
				continue
			}
			require.NoError(t, err)
			for _, name := range index.Names() {
				rel, err := e.Relative(name)
				if err != nil {
					assert.NotErrorIs(t, err, treeshape.ErrInvariantViolation, name)
					continue
				}
				assert.GreaterOrEqual(t, rel, 0.0, name)
				assert.LessOrEqual(t, rel, 1.0, name)

				abs, err := e.Absolute(name)
				require.NoError(t, err)
				lo, hi, err := e.Bounds(name)
				require.NoError(t, err)
				assert.InDelta(t, abs, rel*(hi-lo)+lo, 1e-5, name)
			}
		}
	}
}

func TestRelative_SingleLeaf(t *testing.T) {
	for _, mode := range []treeshape.Mode{treeshape.Binary, treeshape.Arbitrary} {
		e := mustEngine(t, fixtures.Single(), mode)
		for _, name := range index.Names() {
			v, err := e.Absolute(name)
			if err == nil {
				assert.False(t, math.IsNaN(v), name)
			}

			_, err = e.Relative(name)
			require.Error(t, err, name)
			assert.True(t,
				errors.Is(err, treeshape.ErrMode) || errors.Is(err, treeshape.ErrDegenerateRange),
				"%s: %v", name, err)
		}
	}
}

func TestRelative_Errors(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer3(), treeshape.Binary)

	_, err := e.Relative("B_1_index")
	assert.ErrorIs(t, err, treeshape.ErrNotNormalizable)

	_, err = e.Relative("variance_of_leaves_depths")
	assert.ErrorIs(t, err, treeshape.ErrNotNormalizable)

	arb := mustEngine(t, fixtures.Mixed(), treeshape.Arbitrary)
	_, err = arb.Relative("colless_index")
	assert.ErrorIs(t, err, treeshape.ErrMode)

	two := mustEngine(t, tree.MustNew(tree.Inner(tree.Leaf("a"), tree.Leaf("b"))), treeshape.Binary)
	_, err = two.Relative("colless_index")
	assert.ErrorIs(t, err, treeshape.ErrDegenerateRange)
}

func TestRelativeNormalized(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer5(), treeshape.Binary)

	// BALANCE: flipped
	rel, err := e.Relative("B_2_index")
	require.NoError(t, err)
	norm, err := e.RelativeNormalized("B_2_index")
	require.NoError(t, err)
	assert.InDelta(t, 1-rel, norm, 1e-12)

	// IMBALANCE: unchanged
	rel, err = e.Relative("sackin_index")
	require.NoError(t, err)
	norm, err = e.RelativeNormalized("sackin_index")
	require.NoError(t, err)
	assert.Equal(t, rel, norm)

	// NEUTRAL
	_, err = e.RelativeNormalized("cherry_index")
	assert.ErrorIs(t, err, treeshape.ErrNotAnImbalanceIndex)
}

// TestRelative_InvariantViolation uses unary nodes, which no bound formula
// accounts for, to push maximum_depth past its maximum.
func TestRelative_InvariantViolation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := tree.MustNew(tree.Inner(
		tree.Inner(tree.Inner(tree.Leaf("a"))),
		tree.Leaf("b"),
		tree.Leaf("c"),
	))
	e := mustEngine(t, tr, treeshape.Arbitrary, treeshape.WithLogger(zap.New(core)))

	_, err := e.Relative("maximum_depth")
	assert.ErrorIs(t, err, treeshape.ErrInvariantViolation)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "maximum_depth", errs[0].ContextMap()["index"])
}

func TestAbsolute_LogsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := mustEngine(t, fixtures.Fischer4(), treeshape.Binary, treeshape.WithLogger(zap.New(core)))
	_, err := e.Absolute("sackin_index")
	require.NoError(t, err)

	entries := logs.FilterMessage("evaluated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, 17.0, entries[0].ContextMap()["value"])
	assert.Equal(t, "BINARY", entries[0].ContextMap()["mode"])
}

func TestAllAbsolute_SkipsFailures(t *testing.T) {
	e := mustEngine(t, fixtures.Mixed(), treeshape.Arbitrary)
	rep := e.AllAbsolute()
	require.Len(t, rep.Results, len(index.Names()))
	assert.Equal(t, treeshape.Arbitrary, rep.Mode)

	for name, err := range rep.Failures() {
		assert.ErrorIs(t, err, treeshape.ErrMode, name)
		idx, lerr := index.Lookup(name)
		require.NoError(t, lerr)
		assert.True(t, idx.BinaryOnly(), name)
	}
	v, err := rep.Get("sackin_index")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	assert.Contains(t, rep.Values(), "cherry_index")

	_, err = rep.Get("nope")
	assert.ErrorIs(t, err, treeshape.ErrUnknownIndex)
}

func TestAllRelative(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer1(), treeshape.Binary)
	rep := e.AllRelative()
	v, err := rep.Get("colless_index")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	_, err = rep.Get("B_1_index")
	assert.ErrorIs(t, err, treeshape.ErrNotNormalizable)

	norm := e.AllRelativeNormalized()
	_, err = norm.Get("cherry_index")
	assert.ErrorIs(t, err, treeshape.ErrNotAnImbalanceIndex)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { treeshape.WithLogger(nil) })
	assert.Panics(t, func() { treeshape.WithTolerance(-1) })
}

// TestConcurrentEvaluation runs every index from many goroutines on one tree.
func TestConcurrentEvaluation(t *testing.T) {
	tr, err := tree.Yule(40, tree.WithSeed(5))
	require.NoError(t, err)
	e := mustEngine(t, tr, treeshape.Binary)

	done := make(chan treeshape.Report, 8)
	for i := 0; i < cap(done); i++ {
		go func() { done <- e.AllAbsolute() }()
	}
	first := <-done
	for i := 1; i < cap(done); i++ {
		assert.Equal(t, first.Values(), (<-done).Values())
	}
	for _, name := range index.Names() {
		assert.Equal(t, 1, tr.Memo().Computations(tree.Attr(name)), name)
	}
}

func TestKind_ParseAndEval(t *testing.T) {
	for _, s := range []string{"absolute", "Relative", "NORMALIZED"} {
		k, err := treeshape.ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, strings.ToLower(s), k.String())
	}
	_, err := treeshape.ParseKind("z-score")
	assert.ErrorIs(t, err, treeshape.ErrUnknownKind)

	e := mustEngine(t, fixtures.Fischer1(), treeshape.Binary)
	_, err = e.Eval(treeshape.Kind(9), "sackin_index")
	assert.ErrorIs(t, err, treeshape.ErrUnknownKind)

	v, err := e.Eval(treeshape.KindRelative, "colless_index")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestReport_Subset(t *testing.T) {
	e := mustEngine(t, fixtures.Fischer6(), treeshape.Binary)
	rep := e.Report(treeshape.KindAbsolute, "colless_index", "nope", "sackin_index")
	require.Len(t, rep.Results, 3)
	assert.Equal(t, "colless_index", rep.Results[0].Name)
	assert.Equal(t, 2.0, rep.Results[0].Value)
	assert.ErrorIs(t, rep.Results[1].Err, treeshape.ErrUnknownIndex)
	assert.Equal(t, 16.0, rep.Results[2].Value)
}
