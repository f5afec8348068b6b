// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// catalog.go — the static registry of all indices.
//
// Contract:
//   - Built once at package initialization from the family tables.
//   - Names are unique; Names() and All() keep family order.
//   - Read-only afterwards, so safe for concurrent use.

package index

import "fmt"

var (
	catalog []Index
	byName  map[string]Index
)

func init() {
	families := [][]*strategy{
		depthFamily(),
		widthFamily(),
		structureFamily(),
		subgraphFamily(),
		distanceFamily(),
		networkFamily(),
		rootFamily(),
		balanceFamily(),
		iValueFamily(),
		rankingFamily(),
		branchFamily(),
	}

	byName = make(map[string]Index)
	for _, family := range families {
		for _, s := range family {
			if _, dup := byName[s.name]; dup {
				panic(fmt.Sprintf("index: duplicate catalog entry %q", s.name))
			}
			byName[s.name] = s
			catalog = append(catalog, s)
		}
	}
}

// Lookup returns the index registered under name.
func Lookup(name string) (Index, error) {
	idx, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownIndex)
	}
	return idx, nil
}

// Names returns every catalog name in family order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, idx := range catalog {
		out[i] = idx.Name()
	}
	return out
}

// All returns every index in family order. The slice is a copy.
func All() []Index {
	return append([]Index(nil), catalog...)
}
