// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateTol is the smallest |det| (Å³) accepted for a lattice.
const degenerateTol = 1e-10

// Lattice holds the three basis vectors of a periodic cell as rows.
// A Cartesian position is the row vector frac · L.
type Lattice [3]r3.Vec

// NewLattice builds a Lattice from row vectors and validates it.
// Returns ErrDegenerateLattice when the rows are linearly dependent.
func NewLattice(a, b, c r3.Vec) (Lattice, error) {
	l := Lattice{a, b, c}
	if err := l.Validate(); err != nil {
		return Lattice{}, err
	}

	return l, nil
}

// Matrix returns the lattice as a 3×3 gonum matrix (rows = basis vectors).
func (l Lattice) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		l[0].X, l[0].Y, l[0].Z,
		l[1].X, l[1].Y, l[1].Z,
		l[2].X, l[2].Y, l[2].Z,
	})
}

// Det returns the signed determinant of the lattice matrix.
func (l Lattice) Det() float64 {
	return r3.Dot(l[0], r3.Cross(l[1], l[2]))
}

// Volume returns the cell volume |det L|.
func (l Lattice) Volume() float64 {
	return math.Abs(l.Det())
}

// Validate reports ErrDegenerateLattice when the rows do not span 3-space.
func (l Lattice) Validate() error {
	if det := l.Det(); math.IsNaN(det) || math.Abs(det) < degenerateTol {
		return fmt.Errorf("det=%g: %w", det, ErrDegenerateLattice)
	}

	return nil
}

// Lengths returns |a|, |b|, |c|.
func (l Lattice) Lengths() [3]float64 {
	return [3]float64{r3.Norm(l[0]), r3.Norm(l[1]), r3.Norm(l[2])}
}

// Widths returns the perpendicular distance between opposite faces of the
// cell for each lattice direction (V/|b×c|, V/|c×a|, V/|a×b|). Minimum-image
// distances are exact for cutoffs below half the smallest width.
func (l Lattice) Widths() [3]float64 {
	v := l.Volume()
	return [3]float64{
		v / r3.Norm(r3.Cross(l[1], l[2])),
		v / r3.Norm(r3.Cross(l[2], l[0])),
		v / r3.Norm(r3.Cross(l[0], l[1])),
	}
}

// Scale returns the lattice with every row multiplied by f.
func (l Lattice) Scale(f float64) Lattice {
	return Lattice{r3.Scale(f, l[0]), r3.Scale(f, l[1]), r3.Scale(f, l[2])}
}

// ToCartesian converts a fractional position to Cartesian coordinates.
func (l Lattice) ToCartesian(f r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(f.X, l[0]), r3.Scale(f.Y, l[1])), r3.Scale(f.Z, l[2]))
}

// ToFractional converts a Cartesian position to fractional coordinates
// (c · L⁻¹). The result is not wrapped.
func (l Lattice) ToFractional(c r3.Vec) (r3.Vec, error) {
	var inv mat.Dense
	if err := inv.Inverse(l.Matrix()); err != nil {
		return r3.Vec{}, fmt.Errorf("ToFractional: %v: %w", err, ErrDegenerateLattice)
	}
	row := mat.NewDense(1, 3, []float64{c.X, c.Y, c.Z})
	var out mat.Dense
	out.Mul(row, &inv)

	return r3.Vec{X: out.At(0, 0), Y: out.At(0, 1), Z: out.At(0, 2)}, nil
}

// Images returns the Cartesian shift vectors of the 27 nearest periodic
// replicas, zero shift first. A nil lattice yields only the zero shift.
func Images(l *Lattice) []r3.Vec {
	if l == nil {
		return []r3.Vec{{}}
	}
	shifts := make([]r3.Vec, 0, 27)
	shifts = append(shifts, r3.Vec{})
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				shifts = append(shifts, l.ToCartesian(r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}))
			}
		}
	}

	return shifts
}
