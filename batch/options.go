// SPDX-License-Identifier: MIT
// Package: treeshape/batch
//
// options.go — functional options for Run.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Run itself never panics; it returns errors.

package batch

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/treeshape"
)

// Option customizes Run.
type Option func(*config)

type config struct {
	workers     int
	skipInvalid bool
	kind        treeshape.Kind
	names       []string
	metrics     *Metrics
	logger      *zap.Logger
	engineOpts  []treeshape.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		kind:    treeshape.KindAbsolute,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers bounds the number of trees evaluated at once. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("batch: WithWorkers(k<1)")
	}
	return func(c *config) { c.workers = k }
}

// WithSkipInvalid records engine construction failures in the Entry
// instead of aborting the batch.
func WithSkipInvalid() Option {
	return func(c *config) { c.skipInvalid = true }
}

// WithKind selects absolute, relative or normalized values. Panics on an
// unknown kind.
func WithKind(k treeshape.Kind) Option {
	if _, err := treeshape.ParseKind(k.String()); err != nil {
		panic("batch: WithKind(" + k.String() + ")")
	}
	return func(c *config) { c.kind = k }
}

// WithIndices restricts every report to names, in that order.
func WithIndices(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *config) { c.names = cp }
}

// WithMetrics records outcomes and per-tree durations in m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("batch: WithMetrics(nil)")
	}
	return func(c *config) { c.metrics = m }
}

// WithLogger sets the batch logger; it is also handed to every engine.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithEngineOptions passes opts to every treeshape.New call.
func WithEngineOptions(opts ...treeshape.Option) Option {
	cp := append([]treeshape.Option(nil), opts...)
	return func(c *config) { c.engineOpts = append(c.engineOpts, cp...) }
}
