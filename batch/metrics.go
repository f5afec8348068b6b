package batch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/treeshape"
)

// Outcome labels of treeshape_evaluations_total.
const (
	OutcomeOK                 = "ok"
	OutcomeMode               = "mode"
	OutcomeNotNormalizable    = "not_normalizable"
	OutcomeDegenerateRange    = "degenerate_range"
	OutcomeInvariantViolation = "invariant_violation"
	OutcomeNotAnImbalance     = "not_imbalance"
	OutcomeUnknownIndex       = "unknown_index"
	OutcomeError              = "error"
)

// Metrics holds the batch collectors. Create it once per registry.
type Metrics struct {
	evaluations *prometheus.CounterVec
	treeSeconds prometheus.Histogram
	treeErrors  prometheus.Counter
}

// NewMetrics registers the batch collectors on reg. It panics when they
// are already registered there, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treeshape_evaluations_total",
			Help: "Index evaluations by index name and outcome",
		}, []string{"index", "outcome"}),
		treeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "treeshape_tree_seconds",
			Help:    "Time to evaluate every requested index on one tree",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		treeErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "treeshape_tree_errors_total",
			Help: "Trees rejected by engine construction",
		}),
	}
}

func (m *Metrics) observe(rep treeshape.Report, seconds float64) {
	if m == nil {
		return
	}
	for _, res := range rep.Results {
		m.evaluations.WithLabelValues(res.Name, Outcome(res.Err)).Inc()
	}
	m.treeSeconds.Observe(seconds)
}

func (m *Metrics) rejected() {
	if m != nil {
		m.treeErrors.Inc()
	}
}

// Outcome classifies an evaluation error into its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, treeshape.ErrMode):
		return OutcomeMode
	case errors.Is(err, treeshape.ErrNotNormalizable):
		return OutcomeNotNormalizable
	case errors.Is(err, treeshape.ErrDegenerateRange):
		return OutcomeDegenerateRange
	case errors.Is(err, treeshape.ErrInvariantViolation):
		return OutcomeInvariantViolation
	case errors.Is(err, treeshape.ErrNotAnImbalanceIndex):
		return OutcomeNotAnImbalance
	case errors.Is(err, treeshape.ErrUnknownIndex):
		return OutcomeUnknownIndex
	default:
		return OutcomeError
	}
}
