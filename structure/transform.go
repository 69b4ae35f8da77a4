// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"slices"
)

func (s *Structure) checkIDs(ids []int) error {
	for _, id := range ids {
		if id < 0 || id >= len(s.Atoms) {
			return fmt.Errorf("atom %d of %d: %w", id, len(s.Atoms), ErrAtomOutOfRange)
		}
	}

	return nil
}

// Subset returns the structure restricted to ids. Atoms keep their
// relative order, so position k of the result is the k-th smallest id.
// Duplicate ids are collapsed. The species table is re-derived.
func (s *Structure) Subset(ids []int) (*Structure, error) {
	if err := s.checkIDs(ids); err != nil {
		return nil, err
	}
	keep := slices.Clone(ids)
	slices.Sort(keep)
	keep = slices.Compact(keep)

	out := &Structure{Comment: s.Comment, Lattice: s.Lattice, Atoms: make([]Atom, len(keep))}
	for k, id := range keep {
		out.Atoms[k] = s.Atoms[id]
	}

	return out, nil
}

// Relabel returns a copy with the element of every atom in ids replaced by
// element. Positions and order are unchanged; the species table is dropped
// because its blocks no longer hold.
func (s *Structure) Relabel(ids []int, element string) (*Structure, error) {
	if element == "" {
		return nil, ErrEmptyElement
	}
	if err := s.checkIDs(ids); err != nil {
		return nil, err
	}
	out := &Structure{Comment: s.Comment, Lattice: s.Lattice, Atoms: slices.Clone(s.Atoms)}
	for _, id := range ids {
		out.Atoms[id].Element = element
	}

	return out, nil
}

// Append returns a copy with atoms added at the end.
func (s *Structure) Append(atoms ...Atom) (*Structure, error) {
	for i, a := range atoms {
		if a.Element == "" {
			return nil, fmt.Errorf("appended atom %d: %w", i, ErrEmptyElement)
		}
	}
	out := &Structure{
		Comment: s.Comment,
		Lattice: s.Lattice,
		Atoms:   append(slices.Clone(s.Atoms), atoms...),
	}

	return out, nil
}

// SortBySpecies returns a copy with atoms grouped by element in
// first-appearance order (stable within each element) and a matching
// species table, the layout structure files require.
func (s *Structure) SortBySpecies() *Structure {
	table := (&Structure{Atoms: s.Atoms}).SpeciesCounts()
	rank := make(map[string]int, len(table))
	for k, sp := range table {
		rank[sp.Element] = k
	}
	atoms := slices.Clone(s.Atoms)
	slices.SortStableFunc(atoms, func(a, b Atom) int {
		return rank[a.Element] - rank[b.Element]
	})

	return &Structure{Comment: s.Comment, Lattice: s.Lattice, Atoms: atoms, Species: table}
}
