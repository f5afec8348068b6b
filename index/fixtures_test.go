package index_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treeshape/index"
	"github.com/katalvlaran/treeshape/internal/fixtures"
)

// fischerWant holds the absolute values of every index on Fischer1..Fischer6.
var fischerWant = map[string][6]float64{
	"average_leaf_depth":         {3.333333333, 3.166666667, 3, 2.833333333, 2.666666667, 2.666666667},
	"variance_of_leaves_depths":  {2.222222222, 1.472222222, 1, 0.8055555556, 0.2222222222, 0.2222222222},
	"sackin_index":               {20, 19, 18, 17, 16, 16},
	"total_path_length":          {30, 28, 26, 24, 22, 22},
	"total_internal_path_length": {10, 9, 8, 7, 6, 6},
	"average_vertex_depth":       {2.727272727, 2.545454545, 2.363636364, 2.181818182, 2, 2},
	"maximum_depth":              {5, 4, 4, 4, 3, 3},
	"B_1_index":                  {2.083333333, 2.833333333, 2.833333333, 2.833333333, 3.5, 3},
	"B_2_index":                  {1.9375, 2, 2.125, 2.375, 2.5, 2.5},
	"maximum_width":              {2, 4, 4, 4, 4, 4},
	"maxdiff_widths":             {1, 2, 2, 2, 2, 2},
	"modified_maxdiff_widths":    {1, 2, 2, 2, 2, 2},
	"max_width_over_max_depth":   {0.4, 1, 1, 1, 1.333333333, 1.333333333},
	"s_shape":                    {6.906890596, 5.906890596, 5.321928095, 4.906890596, 3.906890596, 4.321928095},
	"d_index":                    {1.32, 1.52, 1.08, 0.72, 1.72, 1.48},
	"rooted_quartet_index":       {0, 3, 9, 18, 21, 27},
	"ladder_length":              {4, 2, 1, 2, 0, 1},
	"IL_number":                  {4, 2, 2, 2, 0, 2},
	"cherry_index":               {1, 2, 2, 2, 3, 2},
	"modified_cherry_index":      {4, 2, 2, 2, 0, 2},
	"pitchforks":                 {1, 0, 1, 1, 0, 2},
	"four_caterpillars":          {1, 0, 0, 1, 0, 0},
	"double_cherries":            {0, 1, 0, 0, 1, 0},
	"total_cophenetic_index":     {20, 18, 15, 11, 9, 8},
	"diameter":                   {6, 5, 5, 6, 5, 6},
	"area_per_pair_index":        {4, 3.933333333, 4, 4.2, 4.133333333, 4.266666667},
	"wiener_index":               {60, 59, 60, 63, 62, 64},
	"minimum_farness":            {20, 18, 19, 21, 19, 22},
	"maximum_farness":            {39, 37, 35, 38, 36, 37},
	"total_farness":              {320, 308, 312, 332, 320, 336},
	"minimum_bcent":              {9, 9, 9, 17, 17, 17},
	"maximum_bcent":              {29, 33, 31, 29, 33, 27},
	"mean_bcent":                 {21, 19.8, 20.2, 22.2, 21, 22.6},
	"bcent_variance":             {52.8, 63.36, 61.76, 24.96, 38.4, 21.44},
	"bcent_root":                 {9, 9, 9, 21, 21, 25},
	"root_imbalance":             {0.8333333333, 0.8333333333, 0.8333333333, 0.6666666667, 0.6666666667, 0.5},
	"I_root":                     {1, 1, 1, 0.5, 0.5, 0},
	"colless_index":              {10, 7, 6, 5, 2, 2},
	"corrected_colless_index":    {1, 0.7, 0.6, 0.5, 0.2, 0.2},
	"quadratic_colless_index":    {30, 25, 18, 9, 4, 2},
	"I_2_index":                  {1, 0.5, 0.5833333333, 0.625, 0.125, 0.5},
	"stairs1":                    {0.8, 0.4, 0.6, 0.6, 0.2, 0.4},
	"stairs2":                    {0.4566666667, 0.69, 0.6733333333, 0.6666666667, 0.9, 0.8},
	"rogers_j_index":             {4, 2, 3, 3, 1, 2},
	"mean_I":                     {1, 0.6666666667, 0.5, 0.75, 0.25, 0},
	"total_I":                    {3, 2, 1, 1.5, 0.5, 0},
	"mean_I_prime":               {0.8611111111, 0.6111111111, 0.4166666667, 0.5833333333, 0.2083333333, 0},
	"total_I_prime":              {2.583333333, 1.833333333, 0.8333333333, 1.166666667, 0.4166666667, 0},
	"mean_I_w":                   {1, 0.55, 0.4545454545, 0.7368421053, 0.1785714286, 0},
	"total_I_w":                  {3, 1.65, 0.9090909091, 1.473684211, 0.3571428571, 0},
	"colijn_plazotta_rank":       {68, 30, 17, 13, 9, 7},
	"furnas_rank":                {1, 2, 3, 4, 5, 6},
	"symmetry_nodes_index":       {4, 2, 3, 3, 1, 2},
	"treeness":                   {0.4, 0.4, 0.4, 0.4, 0.4, 0.4},
	"stemminess":                 {0.1968253968, 0.2301587302, 0.2444444444, 0.2523809524, 0.2857142857, 0.2666666667},
}

func TestCatalog_FischerFixtures(t *testing.T) {
	require.Len(t, fischerWant, len(index.Names()))

	for i, tr := range fixtures.Fischer() {
		t.Run(fmt.Sprintf("fischer%d", i+1), func(t *testing.T) {
			got := make(map[string]float64, len(fischerWant))
			want := make(map[string]float64, len(fischerWant))
			for _, idx := range index.All() {
				v, err := idx.Evaluate(tr, index.Binary)
				require.NoError(t, err, idx.Name())
				got[idx.Name()] = v
				want[idx.Name()] = fischerWant[idx.Name()][i]
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
