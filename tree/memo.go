// SPDX-License-Identifier: MIT
// Package: treeshape/tree
//
// memo.go — per-tree memo side table.
//
// Contract:
//   - Every attribute is computed at most once per Tree; later loads return the
//     stored value without calling compute again.
//   - Compute-once is atomic per key, so concurrent loads on one tree are safe.
//     Distinct keys may be computed concurrently and may load each other.
//   - There is no invalidation: the topology of a frozen tree never changes.

package tree

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Attr names a memoized attribute, e.g. "clade_size" or "sackin_index".
type Attr string

// memoEntry holds one attribute value and how often it was computed.
type memoEntry struct {
	once         sync.Once
	value        any
	computations atomic.Int64
}

// Memo maps attribute names to lazily computed values.
type Memo struct {
	mu      sync.Mutex // guards entries
	entries map[Attr]*memoEntry
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[Attr]*memoEntry)}
}

// entry returns the slot for key, creating it if missing.
func (m *Memo) entry(key Attr) *memoEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		e = &memoEntry{}
		m.entries[key] = e
	}
	return e
}

// Load returns the value stored under key, calling compute exactly once
// on first access. compute must not load the same key.
//
// Complexity: O(1) plus the first compute.
func Load[T any](m *Memo, key Attr, compute func() T) T {
	e := m.entry(key)
	e.once.Do(func() {
		e.value = compute()
		e.computations.Add(1)
	})
	return e.value.(T)
}

// Has reports whether key was already computed.
func (m *Memo) Has(key Attr) bool {
	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	return ok && e.computations.Load() > 0
}

// Computations reports how many times the value for key was computed (0 or 1).
func (m *Memo) Computations(key Attr) int {
	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		return 0
	}
	return int(e.computations.Load())
}

// Keys returns the computed attribute names in sorted order.
func (m *Memo) Keys() []Attr {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]Attr, 0, len(m.entries))
	for k, e := range m.entries {
		if e.computations.Load() > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
