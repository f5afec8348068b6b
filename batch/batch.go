// SPDX-License-Identifier: MIT
// Package: treeshape/batch
//
// batch.go — parallel evaluation of many trees.
//
// Contract:
//   - One treeshape.Engine per tree; trees are independent, so they are
//     evaluated concurrently on at most WithWorkers goroutines.
//   - Entries come back in input order.
//   - Index failures live in each Report and never stop the batch.
//   - An engine construction failure aborts the batch unless WithSkipInvalid.
//   - A cancelled context stops scheduling and is returned.

// Package batch evaluates the index catalog over many trees in parallel and
// records the outcomes as Prometheus metrics.
package batch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treeshape"
	"github.com/katalvlaran/treeshape/tree"
)

const methodRun = "Run"

// Entry is the outcome for one input tree.
type Entry struct {
	// Position of the tree in the input slice.
	Pos int
	// Report is empty when Err is set.
	Report treeshape.Report
	// Err is the engine construction error (only with WithSkipInvalid).
	Err error
}

// Run evaluates every tree under mode.
//
// Steps:
//  1. Start an errgroup bound to ctx with SetLimit(workers).
//  2. Per tree: build the engine, evaluate the selected indices, observe metrics.
//  3. Wait; the first construction error (without WithSkipInvalid) or the
//     context error wins.
//
// Complexity: O(Σ cost(tree)) work, spread over the workers.
func Run(ctx context.Context, trees []*tree.Tree, mode treeshape.Mode, opts ...Option) ([]Entry, error) {
	cfg := newConfig(opts...)
	engineOpts := append([]treeshape.Option{treeshape.WithLogger(cfg.logger)}, cfg.engineOpts...)
	entries := make([]Entry, len(trees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, t := range trees {
		if gctx.Err() != nil {
			break
		}
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i].Pos = i

			start := time.Now()
			e, err := treeshape.New(t, mode, engineOpts...)
			if err != nil {
				cfg.metrics.rejected()
				if cfg.skipInvalid {
					cfg.logger.Warn("tree skipped", zap.Int("pos", i), zap.Error(err))
					entries[i].Err = err
					return nil
				}
				return fmt.Errorf("%s: tree %d: %w", methodRun, i, err)
			}
			entries[i].Report = e.Report(cfg.kind, cfg.names...)
			cfg.metrics.observe(entries[i].Report, time.Since(start).Seconds())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	cfg.logger.Debug("batch done",
		zap.Int("trees", len(trees)),
		zap.Stringer("mode", mode),
		zap.Stringer("kind", cfg.kind))
	return entries, nil
}
