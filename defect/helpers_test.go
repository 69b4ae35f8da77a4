// SPDX-License-Identifier: MIT

package defect_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/defectra/defect"
	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/structure"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// populations places the given species on a simple cubic grid with 4 Å
// spacing, far enough apart that no two atoms bond.
func populations(t testing.TB, table ...structure.SpeciesCount) *structure.Structure {
	t.Helper()
	total := 0
	for _, sp := range table {
		total += sp.Count
	}
	k := int(math.Ceil(math.Cbrt(float64(total))))
	a := 4.0 * float64(k)
	atoms := make([]structure.Atom, 0, total)
	for _, sp := range table {
		for n := 0; n < sp.Count; n++ {
			i := len(atoms)
			f := r3.Vec{X: float64(i%k) / float64(k), Y: float64(i/k%k) / float64(k), Z: float64(i/(k*k)) / float64(k)}
			atoms = append(atoms, structure.Atom{Element: sp.Element, Frac: f})
		}
	}
	s, err := structure.New("populations", geometry.Lattice{{X: a}, {Y: a}, {Z: a}}, atoms, table)
	require.NoError(t, err)

	return s
}

// ring is a closed 40-atom carbon ring (1.4 Å spacing in a 56 Å cell) with
// atom 10 replaced by silicon.
func ring(t testing.TB) *structure.Structure {
	t.Helper()
	const n, spacing, a = 40, 1.4, 56.0
	atoms := make([]structure.Atom, n)
	for i := range atoms {
		atoms[i] = structure.Atom{Element: "C", Frac: r3.Vec{X: float64(i) * spacing / a, Y: 0.5, Z: 0.5}}
	}
	atoms[10].Element = "Si"
	s, err := structure.New("ring", geometry.Lattice{{X: a}, {Y: 10}, {Z: 10}}, atoms, nil)
	require.NoError(t, err)

	return s
}

func classifier(t testing.TB, s *structure.Structure, opts ...defect.Option) *defect.Classifier {
	t.Helper()
	idx, err := neighbor.Build(s)
	require.NoError(t, err)
	c, err := defect.NewClassifier(idx, s, opts...)
	require.NoError(t, err)

	return c
}
