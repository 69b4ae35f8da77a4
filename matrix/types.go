// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix view shared by Dense and validators.
package matrix

// Matrix is a two-dimensional array of float64 values as seen by the
// validators.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
