// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used to hold pairwise
// distance tables.
//
// What:
//
//   - Dense: row-major N×M storage with bounds-checked At and a raw row
//     accessor for kernels that fill disjoint rows in parallel.
//   - Validators: ValidateSquare, ValidateSymmetric and ValidateZeroDiagonal,
//     the structural invariants of a minimum-image distance matrix.
//
// Matrices are dense on purpose: a distance table over N atoms is O(N²) no
// matter how it is stored, and the callers read every cell.
package matrix
