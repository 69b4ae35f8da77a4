// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/defectra/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is one site of the structure.
type Atom struct {
	// Element is the chemical label, e.g. "C" or "Si". Placeholder labels
	// such as "X" are allowed but have no covalent radius.
	Element string

	// Frac is the position in fractional (Direct) coordinates.
	Frac r3.Vec
}

// SpeciesCount is one row of a species-count table.
type SpeciesCount struct {
	Element string
	Count   int
}

// Structure is a periodic cell with atoms. Treat it as read-only once built.
type Structure struct {
	// Comment is the free-text title line.
	Comment string

	// Lattice rows are the cell vectors in ångström.
	Lattice geometry.Lattice

	// Atoms in file order.
	Atoms []Atom

	// Species is the ordered species-count table as declared by the source
	// file. Nil means "derive from Atoms in first-appearance order".
	Species []SpeciesCount
}

// New validates the lattice, the atoms and the optional species table and
// returns a Structure that owns copies of both slices.
func New(comment string, lattice geometry.Lattice, atoms []Atom, species []SpeciesCount) (*Structure, error) {
	if err := lattice.Validate(); err != nil {
		return nil, err
	}
	if len(atoms) == 0 {
		return nil, ErrNoAtoms
	}
	for i, a := range atoms {
		if a.Element == "" {
			return nil, fmt.Errorf("atom %d: %w", i, ErrEmptyElement)
		}
	}
	s := &Structure{
		Comment: comment,
		Lattice: lattice,
		Atoms:   slices.Clone(atoms),
		Species: slices.Clone(species),
	}
	if err := s.checkSpecies(); err != nil {
		return nil, err
	}

	return s, nil
}

// checkSpecies verifies that the declared table, read as consecutive
// blocks, labels every atom correctly.
func (s *Structure) checkSpecies() error {
	if s.Species == nil {
		return nil
	}
	i := 0
	for _, sp := range s.Species {
		if sp.Count < 0 {
			return fmt.Errorf("%s count %d: %w", sp.Element, sp.Count, ErrSpeciesMismatch)
		}
		for k := 0; k < sp.Count; k++ {
			if i >= len(s.Atoms) || s.Atoms[i].Element != sp.Element {
				return fmt.Errorf("atom %d not %s: %w", i, sp.Element, ErrSpeciesMismatch)
			}
			i++
		}
	}
	if i != len(s.Atoms) {
		return fmt.Errorf("table covers %d of %d atoms: %w", i, len(s.Atoms), ErrSpeciesMismatch)
	}

	return nil
}

// Len returns the number of atoms.
func (s *Structure) Len() int { return len(s.Atoms) }

// Element returns the label of atom i.
func (s *Structure) Element(i int) (string, error) {
	if i < 0 || i >= len(s.Atoms) {
		return "", fmt.Errorf("atom %d of %d: %w", i, len(s.Atoms), ErrAtomOutOfRange)
	}

	return s.Atoms[i].Element, nil
}

// Elements returns the label of every atom, index-aligned.
func (s *Structure) Elements() []string {
	out := make([]string, len(s.Atoms))
	for i, a := range s.Atoms {
		out[i] = a.Element
	}

	return out
}

// Cartesian returns every atom position in ångström, index-aligned.
func (s *Structure) Cartesian() []r3.Vec {
	out := make([]r3.Vec, len(s.Atoms))
	for i, a := range s.Atoms {
		out[i] = s.Lattice.ToCartesian(a.Frac)
	}

	return out
}

// SpeciesCounts returns the ordered species table: the declared one when
// present, otherwise one row per distinct element in first-appearance order.
func (s *Structure) SpeciesCounts() []SpeciesCount {
	if s.Species != nil {
		return slices.Clone(s.Species)
	}
	var out []SpeciesCount
	pos := make(map[string]int)
	for _, a := range s.Atoms {
		k, ok := pos[a.Element]
		if !ok {
			k = len(out)
			pos[a.Element] = k
			out = append(out, SpeciesCount{Element: a.Element})
		}
		out[k].Count++
	}

	return out
}

// Clone returns a deep copy.
func (s *Structure) Clone() *Structure {
	return &Structure{
		Comment: s.Comment,
		Lattice: s.Lattice,
		Atoms:   slices.Clone(s.Atoms),
		Species: slices.Clone(s.Species),
	}
}
