package combinatorics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/internal/fixtures"
	"github.com/katalvlaran/treeshape/tree"
)

func rootValue(t *tree.Tree, xs []float64) float64 { return xs[t.Root().ID()] }

func TestWE(t *testing.T) {
	want := []float64{1, 1, 1, 2, 3, 6, 11, 23, 46, 98, 207}
	for i, w := range want {
		assert.Equal(t, w, combinatorics.WE(i+1), "WE(%d)", i+1)
	}
	assert.Equal(t, 8884204649055027.0, combinatorics.WE(combinatorics.MaxWE))
	assert.True(t, math.IsNaN(combinatorics.WE(0)))
	assert.True(t, math.IsNaN(combinatorics.WE(combinatorics.MaxWE+1)))
}

func TestFurnasRanks_Fischer(t *testing.T) {
	for i, tr := range fixtures.Fischer() {
		assert.Equal(t, float64(i+1), rootValue(tr, combinatorics.FurnasRanks(tr)), "fischer%d", i+1)
	}
}

// TestFurnasRanks_Bijective checks random shapes land in [1, WE(n)] and
// that all WE(5) shapes on five leaves are reached.
func TestFurnasRanks_Bijective(t *testing.T) {
	seen := make(map[float64]bool)
	for seed := int64(0); seed < 200; seed++ {
		tr, err := tree.Yule(5, tree.WithSeed(seed))
		require.NoError(t, err)
		r := rootValue(tr, combinatorics.FurnasRanks(tr))
		require.GreaterOrEqual(t, r, 1.0)
		require.LessOrEqual(t, r, combinatorics.WE(5))
		seen[r] = true
	}
	assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, seen)

	big, err := tree.Yule(30, tree.WithSeed(11))
	require.NoError(t, err)
	r := rootValue(big, combinatorics.FurnasRanks(big))
	assert.GreaterOrEqual(t, r, 1.0)
	assert.LessOrEqual(t, r, combinatorics.WE(30))
}

func TestFurnasRanks_NaNBeyondTable(t *testing.T) {
	tr, err := tree.Caterpillar(combinatorics.MaxWE + 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rootValue(tr, combinatorics.FurnasRanks(tr))))

	star := fixtures.Star4()
	assert.True(t, math.IsNaN(rootValue(star, combinatorics.FurnasRanks(star))))
}

func TestFurnasRanks_Extremes(t *testing.T) {
	for n := 1; n <= 20; n++ {
		cat, _ := tree.Caterpillar(n)
		assert.Equal(t, 1.0, rootValue(cat, combinatorics.FurnasRanks(cat)), "caterpillar %d", n)
	}
}

func TestColijnPlazottaRanks_Fischer(t *testing.T) {
	want := []float64{68, 30, 17, 13, 9, 7}
	for i, tr := range fixtures.Fischer() {
		assert.Equal(t, want[i], rootValue(tr, combinatorics.ColijnPlazottaRanks(tr)), "fischer%d", i+1)
	}
	assert.Equal(t, 1.0, rootValue(fixtures.Single(), combinatorics.ColijnPlazottaRanks(fixtures.Single())))
}

func TestRanks_MirrorInvariant(t *testing.T) {
	a, b := fixtures.Fischer6(), fixtures.Mirror6()
	assert.Equal(t,
		rootValue(a, combinatorics.FurnasRanks(a)),
		rootValue(b, combinatorics.FurnasRanks(b)))
	assert.Equal(t,
		rootValue(a, combinatorics.ColijnPlazottaRanks(a)),
		rootValue(b, combinatorics.ColijnPlazottaRanks(b)))
}

func TestElementarySymmetric(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	want := []float64{1, 15, 85, 225, 274, 120}
	for k, w := range want {
		assert.InDelta(t, w, combinatorics.ElementarySymmetric(k, xs), 1e-9, "e_%d", k)
	}
	assert.Zero(t, combinatorics.ElementarySymmetric(6, xs))
	assert.Zero(t, combinatorics.ElementarySymmetric(-1, xs))
	assert.Equal(t, 1.0, combinatorics.ElementarySymmetric(0, nil))
}

func TestChoose(t *testing.T) {
	assert.Equal(t, 0.0, combinatorics.Choose(1, 2))
	assert.Equal(t, 0.0, combinatorics.Choose(3, -1))
	assert.Equal(t, 15.0, combinatorics.Choose(6, 2))
	assert.Equal(t, 4950.0, combinatorics.Choose(100, 2))
	assert.Equal(t, 416_416_712_497_500.0, combinatorics.Choose(10_000, 4))
	assert.InEpsilon(t, 4.16625e18, combinatorics.Choose(100_000, 4), 1e-3)
}

func TestRootedQuartetIndex(t *testing.T) {
	want := []float64{0, 3, 9, 18, 21, 27}
	for i, tr := range fixtures.Fischer() {
		assert.InDelta(t, want[i], combinatorics.RootedQuartetIndex(tr), 1e-9, "fischer%d", i+1)
	}
	// every quartet of a star is fully symmetric
	assert.InDelta(t, 4.0, combinatorics.RootedQuartetIndex(fixtures.Star4()), 1e-9)
	assert.Zero(t, combinatorics.RootedQuartetIndex(fixtures.Single()))

	// q_0 counts every quartet
	q := combinatorics.QuartetWeights{1, 0, 0, 0, 0}
	assert.InDelta(t, 15.0, combinatorics.RootedQuartetIndexWeighted(fixtures.Fischer1(), q), 1e-9)
}

func TestBetweennessAndFarness(t *testing.T) {
	tr := fixtures.Fischer1()
	bc := combinatorics.Betweenness(tr)
	assert.Equal(t, 9.0, rootValue(tr, bc))
	for _, leaf := range tr.Leaves() {
		assert.Zero(t, bc[leaf.ID()])
	}

	far := combinatorics.Farness(tr)
	lo, hi, total := math.Inf(1), math.Inf(-1), 0.0
	for _, f := range far {
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
		total += f
	}
	assert.Equal(t, 20.0, lo)
	assert.Equal(t, 39.0, hi)
	assert.Equal(t, 320.0, total)

	// farness agrees with BFS distances
	for _, v := range tr.Nodes() {
		dist, err := tr.Distances(v)
		require.NoError(t, err)
		sum := 0
		for _, d := range dist {
			sum += d
		}
		assert.Equal(t, float64(sum), far[v.ID()])
	}
}

func TestLadderLengths(t *testing.T) {
	want := []int{4, 2, 1, 2, 0, 1}
	for i, tr := range fixtures.Fischer() {
		assert.Equal(t, want[i], combinatorics.MaxLadder(tr), "fischer%d", i+1)
	}
	assert.Zero(t, combinatorics.MaxLadder(fixtures.Single()))
	assert.Zero(t, combinatorics.MaxLadder(fixtures.Star4()))

	tr := fixtures.Fischer1()
	for _, leaf := range tr.Leaves() {
		assert.Equal(t, -1, combinatorics.LadderLengths(tr)[leaf.ID()])
	}
}

func TestDiameter(t *testing.T) {
	want := []int{6, 5, 5, 6, 5, 6}
	for i, tr := range fixtures.Fischer() {
		d, err := combinatorics.Diameter(tr)
		require.NoError(t, err)
		assert.Equal(t, want[i], d, "fischer%d", i+1)
	}
	d, err := combinatorics.Diameter(fixtures.Single())
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = combinatorics.Diameter(fixtures.Star4())
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestShapeClasses(t *testing.T) {
	tr := fixtures.Fischer6()
	kids := tr.Root().Children()
	assert.True(t, combinatorics.Isomorphic(tr, kids[0], kids[1]))

	tr = fixtures.Fischer4()
	kids = tr.Root().Children()
	assert.False(t, combinatorics.Isomorphic(tr, kids[0], kids[1]))

	for _, leaf := range tr.Leaves() {
		assert.Zero(t, combinatorics.ShapeClasses(tr)[leaf.ID()])
	}

	tr = fixtures.Mixed()
	kids = tr.Root().Children()
	assert.False(t, combinatorics.Isomorphic(tr, kids[0], kids[1]))
}
