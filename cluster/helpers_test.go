// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/katalvlaran/defectra/cluster"
	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/structure"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// ring lays n carbon atoms 1.4 Å apart along x in an (n·1.4)×10×10 cell, so
// the last atom bonds to the first through the boundary. extra atoms are
// appended after the ring.
func ring(t testing.TB, n int, extra ...structure.Atom) *structure.Structure {
	t.Helper()
	a := 1.4 * float64(n)
	atoms := make([]structure.Atom, 0, n+len(extra))
	for i := 0; i < n; i++ {
		atoms = append(atoms, structure.Atom{Element: "C", Frac: r3.Vec{X: float64(i) / float64(n), Y: 0.5, Z: 0.5}})
	}
	atoms = append(atoms, extra...)
	s, err := structure.New("ring", geometry.Lattice{{X: a}, {Y: 10}, {Z: 10}}, atoms, nil)
	require.NoError(t, err)

	return s
}

func engine(t testing.TB, s *structure.Structure, opts ...cluster.Option) *cluster.Engine {
	t.Helper()
	e, err := cluster.New(s, opts...)
	require.NoError(t, err)

	return e
}

func seed(t testing.TB, e *cluster.Engine, ids ...int) cluster.MarkedSet {
	t.Helper()
	m, err := e.Seed(ids)
	require.NoError(t, err)

	return m
}
