package treeshape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/treeshape/index"
)

// Result is the outcome of one index on one tree.
type Result struct {
	Name  string
	Value float64
	Err   error
}

// OK reports whether the evaluation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Report collects one Result per catalog index, in catalog order. Failing
// indices are recorded and skipped, never fatal.
type Report struct {
	Mode     Mode
	Leaves   int
	Internal int
	Results  []Result
}

// Get returns the value or error recorded for name.
func (r Report) Get(name string) (float64, error) {
	for _, res := range r.Results {
		if res.Name == name {
			return res.Value, res.Err
		}
	}
	return 0, fmt.Errorf("Get(%q): %w", name, ErrUnknownIndex)
}

// Values returns the successful results by name.
func (r Report) Values() map[string]float64 {
	out := make(map[string]float64, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			out[res.Name] = res.Value
		}
	}
	return out
}

// Failures returns the failed results by name.
func (r Report) Failures() map[string]error {
	out := make(map[string]error)
	for _, res := range r.Results {
		if !res.OK() {
			out[res.Name] = res.Err
		}
	}
	return out
}

// Kind selects which value a Report holds.
type Kind int

// Kinds.
const (
	KindAbsolute Kind = iota + 1
	KindRelative
	KindRelativeNormalized
)

var kindNames = map[Kind]string{
	KindAbsolute:           "absolute",
	KindRelative:           "relative",
	KindRelativeNormalized: "normalized",
}

// String returns the lower-case name used by ParseKind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUnknownKind indicates a Kind outside the declared set.
var ErrUnknownKind = errors.New("treeshape: unknown kind")

// ParseKind maps "absolute", "relative" or "normalized" to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Eval dispatches to Absolute, Relative or RelativeNormalized.
func (e *Engine) Eval(kind Kind, name string) (float64, error) {
	switch kind {
	case KindAbsolute:
		return e.Absolute(name)
	case KindRelative:
		return e.Relative(name)
	case KindRelativeNormalized:
		return e.RelativeNormalized(name)
	default:
		return 0, fmt.Errorf("Eval: %v: %w", kind, ErrUnknownKind)
	}
}

// Report evaluates names (every catalog index when empty) as kind. Unknown
// names and failing indices are recorded in their Result.
func (e *Engine) Report(kind Kind, names ...string) Report {
	if len(names) == 0 {
		names = index.Names()
	}
	rep := Report{Mode: e.mode, Leaves: e.n, Internal: e.m, Results: make([]Result, len(names))}
	for i, name := range names {
		v, err := e.Eval(kind, name)
		rep.Results[i] = Result{Name: name, Value: v, Err: err}
	}
	return rep
}

// AllAbsolute evaluates every catalog index.
func (e *Engine) AllAbsolute() Report { return e.Report(KindAbsolute) }

// AllRelative normalizes every catalog index against its bounds.
func (e *Engine) AllRelative() Report { return e.Report(KindRelative) }

// AllRelativeNormalized orients every catalog index; NEUTRAL ones fail.
func (e *Engine) AllRelativeNormalized() Report { return e.Report(KindRelativeNormalized) }
