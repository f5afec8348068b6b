package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/batch"
	"github.com/katalvlaran/treeshape/index"
	"github.com/katalvlaran/treeshape/tree"
)

// Shapes accepted by --shape.
var shapes = map[string]func(n int, opts ...tree.BuilderOption) (*tree.Tree, error){
	"caterpillar": tree.Caterpillar,
	"balanced":    tree.Balanced,
	"yule":        tree.Yule,
	"star":        tree.Star,
}

func buildShape(shape string, n int, seed int64) (*tree.Tree, error) {
	build, ok := shapes[shape]
	if !ok {
		return nil, fmt.Errorf("shape %q: %w", shape, errConfig)
	}
	return build(n, tree.WithSeed(seed))
}

// selected returns the catalog restricted to the --index subset.
func (a *app) selected() []index.Index {
	if len(a.set.indices) == 0 {
		return index.All()
	}
	out := make([]index.Index, 0, len(a.set.indices))
	for _, name := range a.set.indices {
		idx, _ := index.Lookup(name) // validated in setup
		out = append(out, idx)
	}
	return out
}

// ---- catalog ----

type catalogRow struct {
	Name        string `yaml:"name"`
	Orientation string `yaml:"orientation"`
	BinaryOnly  bool   `yaml:"binary_only"`
}

type catalogOut struct {
	Indices []catalogRow `yaml:"indices"`
}

func (c catalogOut) headers() []string { return []string{"INDEX", "ORIENTATION", "BINARY ONLY"} }

func (c catalogOut) rows() [][]string {
	rows := make([][]string, len(c.Indices))
	for i, r := range c.Indices {
		rows[i] = []string{r.Name, r.Orientation, strconv.FormatBool(r.BinaryOnly)}
	}
	return rows
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the indices with orientation and binary-only flag",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var out catalogOut
			for _, idx := range a.selected() {
				out.Indices = append(out.Indices, catalogRow{
					Name:        idx.Name(),
					Orientation: idx.Orientation().String(),
					BinaryOnly:  idx.BinaryOnly(),
				})
			}
			return render(a.out, a.set.format, out)
		},
	}
}

// ---- bounds ----

type boundRow struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

type boundsOut struct {
	Mode     string     `yaml:"mode"`
	Leaves   int        `yaml:"leaves"`
	Internal int        `yaml:"internal"`
	Bounds   []boundRow `yaml:"bounds"`
}

func (b boundsOut) headers() []string { return []string{"INDEX", "MIN", "MAX"} }

func (b boundsOut) rows() [][]string {
	rows := make([][]string, len(b.Bounds))
	for i, r := range b.Bounds {
		rows[i] = []string{r.Name, ftoa(r.Min), ftoa(r.Max)}
	}
	return rows
}

func newBoundsCmd(a *app) *cobra.Command {
	var n, m int
	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print the minimum and maximum of every index for n leaves",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if n < 1 {
				return fmt.Errorf("leaves=%d: %w", n, errConfig)
			}
			if m < 0 {
				m = n - 1
			}
			out := boundsOut{Mode: a.set.mode.String(), Leaves: n, Internal: m}
			for _, idx := range a.selected() {
				out.Bounds = append(out.Bounds, boundRow{
					Name: idx.Name(),
					Min:  idx.Minimum(n, m, a.set.mode),
					Max:  idx.Maximum(n, m, a.set.mode),
				})
			}
			return render(a.out, a.set.format, out)
		},
	}
	cmd.Flags().IntVarP(&n, "leaves", "n", 0, "number of leaves")
	cmd.Flags().IntVarP(&m, "internal", "m", -1, "number of internal nodes (default n-1)")
	_ = cmd.MarkFlagRequired("leaves")
	return cmd
}

// ---- eval ----

type resultRow struct {
	Name  string   `yaml:"name"`
	Value *float64 `yaml:"value,omitempty"`
	Error string   `yaml:"error,omitempty"`
}

func resultRows(rep treeshape.Report) []resultRow {
	rows := make([]resultRow, len(rep.Results))
	for i, res := range rep.Results {
		rows[i].Name = res.Name
		if res.OK() {
			v := res.Value
			rows[i].Value = &v
		} else {
			rows[i].Error = res.Err.Error()
		}
	}
	return rows
}

func (r resultRow) cells() []string {
	if r.Value == nil {
		return []string{r.Name, "-", r.Error}
	}
	return []string{r.Name, ftoa(*r.Value), ""}
}

type evalOut struct {
	Shape    string      `yaml:"shape"`
	Mode     string      `yaml:"mode"`
	Kind     string      `yaml:"kind"`
	Leaves   int         `yaml:"leaves"`
	Internal int         `yaml:"internal"`
	Newick   string      `yaml:"newick"`
	Results  []resultRow `yaml:"results"`
}

func (e evalOut) headers() []string { return []string{"INDEX", "VALUE", "ERROR"} }

func (e evalOut) rows() [][]string {
	rows := make([][]string, len(e.Results))
	for i, r := range e.Results {
		rows[i] = r.cells()
	}
	return rows
}

func newEvalCmd(a *app) *cobra.Command {
	var (
		shape string
		n     int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the indices on one generated shape",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			t, err := buildShape(shape, n, seed)
			if err != nil {
				return err
			}
			e, err := treeshape.New(t, a.set.mode,
				treeshape.WithLogger(a.logger), treeshape.WithTolerance(a.set.tolerance))
			if err != nil {
				return err
			}
			rep := e.Report(a.set.kind, a.set.indices...)
			return render(a.out, a.set.format, evalOut{
				Shape:    shape,
				Mode:     rep.Mode.String(),
				Kind:     a.set.kind.String(),
				Leaves:   rep.Leaves,
				Internal: rep.Internal,
				Newick:   t.String(),
				Results:  resultRows(rep),
			})
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "yule", "caterpillar, balanced, yule or star")
	cmd.Flags().IntVarP(&n, "leaves", "n", 0, "number of leaves")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for yule")
	_ = cmd.MarkFlagRequired("leaves")
	return cmd
}

// ---- sweep ----

type sweepTree struct {
	Leaves  int         `yaml:"leaves"`
	Error   string      `yaml:"error,omitempty"`
	Results []resultRow `yaml:"results,omitempty"`
}

type sweepOut struct {
	Shape    string             `yaml:"shape"`
	Mode     string             `yaml:"mode"`
	Kind     string             `yaml:"kind"`
	Trees    []sweepTree        `yaml:"trees"`
	Outcomes map[string]float64 `yaml:"outcomes"`
}

func (s sweepOut) headers() []string { return []string{"LEAVES", "INDEX", "VALUE", "ERROR"} }

func (s sweepOut) rows() [][]string {
	var rows [][]string
	for _, t := range s.Trees {
		leaves := strconv.Itoa(t.Leaves)
		if t.Error != "" {
			rows = append(rows, []string{leaves, "", "-", t.Error})
			continue
		}
		for _, r := range t.Results {
			rows = append(rows, append([]string{leaves}, r.cells()...))
		}
	}
	return rows
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		shape    string
		from, to int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate one shape family over a range of leaf counts in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from < 1 || to < from {
				return fmt.Errorf("range [%d, %d]: %w", from, to, errConfig)
			}
			trees := make([]*tree.Tree, 0, to-from+1)
			for n := from; n <= to; n++ {
				t, err := buildShape(shape, n, seed+int64(n))
				if err != nil {
					return err
				}
				trees = append(trees, t)
			}
			return a.sweep(cmd.Context(), shape, trees)
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "yule", "caterpillar, balanced, yule or star")
	cmd.Flags().IntVar(&from, "from", 2, "smallest leaf count")
	cmd.Flags().IntVar(&to, "to", 16, "largest leaf count")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base seed for yule (tree n uses seed+n)")
	return cmd
}

func (a *app) sweep(ctx context.Context, shape string, trees []*tree.Tree) error {
	reg := prometheus.NewRegistry()
	opts := []batch.Option{
		batch.WithSkipInvalid(),
		batch.WithKind(a.set.kind),
		batch.WithIndices(a.set.indices...),
		batch.WithMetrics(batch.NewMetrics(reg)),
		batch.WithLogger(a.logger),
		batch.WithEngineOptions(treeshape.WithTolerance(a.set.tolerance)),
	}
	if a.set.workers > 0 {
		opts = append(opts, batch.WithWorkers(a.set.workers))
	}
	entries, err := batch.Run(ctx, trees, a.set.mode, opts...)
	if err != nil {
		return err
	}

	out := sweepOut{Shape: shape, Mode: a.set.mode.String(), Kind: a.set.kind.String()}
	for i, e := range entries {
		st := sweepTree{Leaves: trees[i].Len()}
		if e.Err != nil {
			st.Error = e.Err.Error()
		} else {
			st.Results = resultRows(e.Report)
		}
		out.Trees = append(out.Trees, st)
	}
	if out.Outcomes, err = outcomeTotals(reg); err != nil {
		return err
	}
	return render(a.out, a.set.format, out)
}

// outcomeTotals sums treeshape_evaluations_total by its outcome label.
func outcomeTotals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	totals := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "treeshape_evaluations_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "outcome" {
					totals[lp.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return totals, nil
}
