// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/defectra/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Distances returns the N×N matrix of minimum-image Euclidean distances
// between Cartesian positions.
//
// Implementation:
//   - Stage 1: build the shift list (27 replicas, or only the zero shift when lattice is nil).
//   - Stage 2: start from +Inf and, for every shift s, lower cell (i,j) to |p_i − (p_j + s)|.
//     This is the element-wise minimum over the 27 candidate matrices without
//     materializing them.
//   - Stage 3: optionally split rows across WithWorkers goroutines; each worker
//     owns a disjoint row range, so writes never overlap.
//
// Behavior highlights:
//   - Diagonal is exactly 0 (zero shift is always evaluated).
//   - Symmetric up to floating-point rounding.
//   - Sequential and parallel paths produce bit-identical matrices.
//
// Errors:
//   - ErrNoPositions for an empty input; ErrBadWorkers from options.
//
// Complexity:
//   - Time O(27·N²), Space O(N²).
func Distances(positions []r3.Vec, lattice *Lattice, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n := len(positions)
	if n == 0 {
		return nil, ErrNoPositions
	}

	dist, err := matrix.NewFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	shifts := Images(lattice)

	workers := o.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return dist, fillRows(dist, positions, shifts, 0, n)
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			return fillRows(dist, positions, shifts, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dist, nil
}

// fillRows computes rows [lo,hi) of the minimum-image matrix in place.
// Loop order is fixed (row → shift → column) so every cell sees the same
// sequence of candidates regardless of the row partition.
func fillRows(dist *matrix.Dense, positions []r3.Vec, shifts []r3.Vec, lo, hi int) error {
	var (
		i, j  int
		d     float64
		image r3.Vec
	)
	for i = lo; i < hi; i++ {
		row, err := dist.RawRow(i)
		if err != nil {
			return err
		}
		for _, s := range shifts {
			for j = range positions {
				image = r3.Add(positions[j], s)
				d = r3.Norm(r3.Sub(positions[i], image))
				if d < row[j] {
					row[j] = d
				}
			}
		}
	}

	return nil
}

// Distance returns the minimum-image distance between two Cartesian
// positions. A nil lattice gives the plain Euclidean distance.
func Distance(a, b r3.Vec, lattice *Lattice) float64 {
	best := math.Inf(1)
	for _, s := range Images(lattice) {
		if d := r3.Norm(r3.Sub(a, r3.Add(b, s))); d < best {
			best = d
		}
	}

	return best
}
