// SPDX-License-Identifier: MIT

// Package geometry implements the periodic-boundary geometry of a crystal:
// lattice algebra, fractional/Cartesian conversion and the minimum-image
// distance matrix.
//
// What:
//
//   - Lattice: three basis vectors stored as rows; cart = frac · L.
//   - Distances: N×N minimum-image distances over the 27 nearest periodic
//     replicas (shifts i·a + j·b + k·c, i,j,k ∈ {−1,0,1}).
//   - MinimumImageDelta: fractional displacement corrected per axis by ±1.
//
// Why 27 images:
//
//   - Evaluating every neighbouring replica is correct for any cell shape,
//     not only orthorhombic ones, at 27× the pairwise work. It runs once per
//     structure, not in a hot loop.
//
// Limits:
//
//   - Results are exact only while the bonding cutoff stays below half the
//     narrowest cell width (see Lattice.Widths). This is not checked.
//
// Complexity:
//
//   - Distances: O(27·N²) time, O(N²) memory. WithWorkers splits rows.
package geometry
