// SPDX-License-Identifier: MIT

package poscar_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/poscar"
	"github.com/katalvlaran/defectra/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const graphene = `graphene 2x1 with N
   2.0
     1.2300000000    -2.1304224933     0.0000000000
     1.2300000000     2.1304224933     0.0000000000
     0.0000000000     0.0000000000     7.5000000000
   C N
   3 1
Selective dynamics
Direct
  0.0000000000  0.0000000000  0.5000000000 T T F
  0.3333333333  0.6666666667  0.5000000000 T T F
  0.5000000000  0.0000000000  0.5000000000 T T F
  0.8333333333  0.6666666667  1.5000000000 T T F ! N1
`

func TestRead_Graphene(t *testing.T) {
	t.Parallel()

	s, err := poscar.Read(strings.NewReader(graphene))
	require.NoError(t, err)
	assert.Equal(t, "graphene 2x1 with N", s.Comment)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"C", "C", "C", "N"}, s.Elements())
	assert.Equal(t, []structure.SpeciesCount{{Element: "C", Count: 3}, {Element: "N", Count: 1}}, s.Species)
	assert.InDelta(t, 2.46, s.Lattice[0].X, 1e-9)
	assert.InDelta(t, 15.0, s.Lattice[2].Z, 1e-9)
	assert.InDelta(t, 0.5, s.Atoms[3].Frac.Z, 1e-12, "wrapped")
}

func TestRead_CartesianAndVolumeScale(t *testing.T) {
	t.Parallel()

	in := `cube
  -125
  1 0 0
  0 1 0
  0 0 1
  Si
  2
cartesian
  0 0 0
  0.5 0.5 0.5
`
	s, err := poscar.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.InDelta(t, 125.0, s.Lattice.Volume(), 1e-9)
	// Cartesian input is scaled with the cell.
	assert.InDelta(t, 0.5, s.Atoms[1].Frac.X, 1e-12)
}

func TestRead_PerAxisScale(t *testing.T) {
	t.Parallel()

	in := "box\n 2 3 4\n1 0 0\n0 1 0\n0 0 1\nH\n1\nD\n0.1 0.2 0.3\n"
	s, err := poscar.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 3, 4}, s.Lattice.Lengths())
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		line int
	}{
		{"empty", "", 0},
		{"bad scale", "x\nabc\n", 2},
		{"short lattice row", "x\n1\n1 0\n", 3},
		{"vasp4 counts only", "x\n1\n1 0 0\n0 1 0\n0 0 1\n2\nDirect\n", 6},
		{"count mismatch", "x\n1\n1 0 0\n0 1 0\n0 0 1\nC O\n1\n", 7},
		{"negative count", "x\n1\n1 0 0\n0 1 0\n0 0 1\nC\n-1\n", 7},
		{"missing positions", "x\n1\n1 0 0\n0 1 0\n0 0 1\nC\n2\nDirect\n0 0 0\n", 0},
		{"bad position", "x\n1\n1 0 0\n0 1 0\n0 0 1\nC\n1\nDirect\n0 a 0\n", 9},
		{"zero scale", "x\n0\n1 0 0\n0 1 0\n0 0 1\nC\n1\nDirect\n0 0 0\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poscar.Read(strings.NewReader(tt.in))
			require.ErrorIs(t, err, poscar.ErrMalformed)
			var pe *poscar.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
		})
	}

	flat := "x\n1\n1 0 0\n2 0 0\n0 0 1\nC\n1\nDirect\n0 0 0\n"
	_, err := poscar.Read(strings.NewReader(flat))
	assert.ErrorIs(t, err, geometry.ErrDegenerateLattice)
	assert.ErrorIs(t, err, poscar.ErrMalformed)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := poscar.Read(strings.NewReader(graphene))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, s))
	back, err := poscar.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, s.Comment, back.Comment)
	assert.Equal(t, s.Species, back.Species)
	require.Equal(t, s.Len(), back.Len())
	for i := range s.Atoms {
		assert.Equal(t, s.Atoms[i].Element, back.Atoms[i].Element)
		assert.InDelta(t, s.Atoms[i].Frac.X, back.Atoms[i].Frac.X, 1e-9)
		assert.InDelta(t, s.Atoms[i].Frac.Y, back.Atoms[i].Frac.Y, 1e-9)
		assert.InDelta(t, s.Atoms[i].Frac.Z, back.Atoms[i].Frac.Z, 1e-9)
	}
	for i := range s.Lattice {
		assert.InDelta(t, 0, r3.Norm(r3.Sub(s.Lattice[i], back.Lattice[i])), 1e-9)
	}
}

func TestWrite_KeepsAtomOrderWithRuns(t *testing.T) {
	t.Parallel()

	s, err := poscar.Read(strings.NewReader(graphene))
	require.NoError(t, err)
	marked, err := s.Relabel([]int{1}, "X")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, poscar.Write(&buf, marked))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, []string{"C", "X", "C", "N"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"1", "1", "1", "1"}, strings.Fields(lines[6]))
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := poscar.Read(strings.NewReader(graphene))
	require.NoError(t, err)

	path := filepath.Join(dir, "POSCAR")
	require.NoError(t, poscar.WriteFile(path, s))
	back, err := poscar.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Elements(), back.Elements())

	_, err = poscar.ReadFile(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteXYZ(t *testing.T) {
	t.Parallel()

	s, err := poscar.Read(strings.NewReader(graphene))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, poscar.WriteXYZ(&buf, s))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "4", lines[0])
	f := strings.Fields(lines[5])
	assert.Equal(t, "N", f[0])
	assert.Equal(t, "7.50000000", f[3])
}
