// SPDX-License-Identifier: MIT

package structure_test

import (
	"testing"

	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var box = geometry.Lattice{{X: 10}, {Y: 10}, {Z: 10}}

// mixed returns C, H, C, O at distinct x positions.
func mixed(t *testing.T) *structure.Structure {
	t.Helper()
	s, err := structure.New("mixed", box, []structure.Atom{
		{Element: "C", Frac: r3.Vec{X: 0.1}},
		{Element: "H", Frac: r3.Vec{X: 0.2}},
		{Element: "C", Frac: r3.Vec{X: 0.3}},
		{Element: "O", Frac: r3.Vec{X: 0.4}},
	}, nil)
	require.NoError(t, err)

	return s
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := structure.New("", geometry.Lattice{}, []structure.Atom{{Element: "C"}}, nil)
	assert.ErrorIs(t, err, geometry.ErrDegenerateLattice)

	_, err = structure.New("", box, nil, nil)
	assert.ErrorIs(t, err, structure.ErrNoAtoms)

	_, err = structure.New("", box, []structure.Atom{{Element: ""}}, nil)
	assert.ErrorIs(t, err, structure.ErrEmptyElement)

	atoms := []structure.Atom{{Element: "Si"}, {Element: "Si"}, {Element: "O"}}
	_, err = structure.New("", box, atoms, []structure.SpeciesCount{{Element: "Si", Count: 1}, {Element: "O", Count: 2}})
	assert.ErrorIs(t, err, structure.ErrSpeciesMismatch)
	_, err = structure.New("", box, atoms, []structure.SpeciesCount{{Element: "Si", Count: 2}})
	assert.ErrorIs(t, err, structure.ErrSpeciesMismatch)

	s, err := structure.New("", box, atoms, []structure.SpeciesCount{{Element: "Si", Count: 2}, {Element: "O", Count: 1}})
	require.NoError(t, err)
	atoms[0].Element = "Ge"
	assert.Equal(t, "Si", s.Atoms[0].Element, "New must own its atoms")
}

func TestSpeciesCounts_FirstAppearance(t *testing.T) {
	t.Parallel()

	s := mixed(t)
	assert.Equal(t, []structure.SpeciesCount{{Element: "C", Count: 2}, {Element: "H", Count: 1}, {Element: "O", Count: 1}}, s.SpeciesCounts())
	assert.Equal(t, []string{"C", "H", "C", "O"}, s.Elements())

	el, err := s.Element(3)
	require.NoError(t, err)
	assert.Equal(t, "O", el)
	_, err = s.Element(4)
	assert.ErrorIs(t, err, structure.ErrAtomOutOfRange)
}

func TestCartesian(t *testing.T) {
	t.Parallel()

	c := mixed(t).Cartesian()
	require.Len(t, c, 4)
	assert.InDelta(t, 3.0, c[2].X, 1e-12)
}

func TestSubset(t *testing.T) {
	t.Parallel()

	s := mixed(t)
	sub, err := s.Subset([]int{3, 0, 3})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	assert.Equal(t, []string{"C", "O"}, sub.Elements())

	_, err = s.Subset([]int{9})
	assert.ErrorIs(t, err, structure.ErrAtomOutOfRange)
}

func TestRelabelAndAppend_DoNotMutate(t *testing.T) {
	t.Parallel()

	s := mixed(t)
	r, err := s.Relabel([]int{1}, "X")
	require.NoError(t, err)
	assert.Equal(t, "X", r.Atoms[1].Element)
	assert.Equal(t, "H", s.Atoms[1].Element)

	_, err = s.Relabel([]int{1}, "")
	assert.ErrorIs(t, err, structure.ErrEmptyElement)

	a, err := s.Append(structure.Atom{Element: "H", Frac: r3.Vec{Y: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 4, s.Len())
}

func TestSortBySpecies(t *testing.T) {
	t.Parallel()

	s := mixed(t)
	sorted := s.SortBySpecies()
	assert.Equal(t, []string{"C", "C", "H", "O"}, sorted.Elements())
	assert.InDelta(t, 0.3, sorted.Atoms[1].Frac.X, 1e-12)
	assert.Equal(t, []structure.SpeciesCount{{Element: "C", Count: 2}, {Element: "H", Count: 1}, {Element: "O", Count: 1}}, sorted.Species)

	c := sorted.Clone()
	c.Atoms[0].Element = "N"
	c.Species[0].Count = 7
	assert.Equal(t, "C", sorted.Atoms[0].Element)
	assert.Equal(t, 2, sorted.Species[0].Count)
}
