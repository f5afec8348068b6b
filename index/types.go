// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// types.go — Mode, Orientation, the Index contract and its sentinels.

package index

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/treeshape/tree"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrMode indicates the index is undefined for the requested mode.
	ErrMode = errors.New("index: undefined for mode")

	// ErrUnknownMode indicates a mode value or name outside {BINARY, ARBITRARY}.
	ErrUnknownMode = errors.New("index: unknown mode")

	// ErrUnknownIndex indicates a name missing from the catalog.
	ErrUnknownIndex = errors.New("index: unknown index")

	// ErrNotBifurcating indicates BINARY evaluation of a tree with a node of
	// arity other than 0 or 2.
	ErrNotBifurcating = errors.New("index: tree is not bifurcating")

	// ErrNilTree indicates Evaluate received a nil tree.
	ErrNilTree = errors.New("index: tree is nil")
)

// Mode is the topology constraint an index is evaluated under.
type Mode int

const (
	// Binary requires every internal node to have exactly two children.
	Binary Mode = iota + 1
	// Arbitrary allows any arity.
	Arbitrary
)

// String returns "BINARY" or "ARBITRARY".
func (m Mode) String() string {
	switch m {
	case Binary:
		return "BINARY"
	case Arbitrary:
		return "ARBITRARY"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Binary or Arbitrary.
func (m Mode) Valid() bool { return m == Binary || m == Arbitrary }

// ParseMode parses a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BINARY":
		return Binary, nil
	case "ARBITRARY":
		return Arbitrary, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("MarshalText: %v: %w", m, ErrUnknownMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Orientation tells how a normalized value relates to balance.
type Orientation int

const (
	// Neutral indices have no balance semantics.
	Neutral Orientation = 0
	// Imbalance indices grow as the tree gets less balanced.
	Imbalance Orientation = 1
	// Balance indices grow as the tree gets more balanced.
	Balance Orientation = -1
)

// String returns "IMBALANCE", "BALANCE" or "NEUTRAL".
func (o Orientation) String() string {
	switch o {
	case Imbalance:
		return "IMBALANCE"
	case Balance:
		return "BALANCE"
	default:
		return "NEUTRAL"
	}
}

// Index is one tree-shape statistic.
type Index interface {
	// Name is the catalog name, e.g. "sackin_index".
	Name() string

	// Evaluate returns the absolute value for t under mode.
	Evaluate(t *tree.Tree, mode Mode) (float64, error)

	// Minimum and Maximum return the tight bounds over all trees with n
	// leaves and m internal nodes, or NaN when no bound is known.
	Minimum(n, m int, mode Mode) float64
	Maximum(n, m int, mode Mode) float64

	// Orientation reports the balance semantics.
	Orientation() Orientation

	// BinaryOnly reports whether Evaluate rejects Arbitrary.
	BinaryOnly() bool
}
