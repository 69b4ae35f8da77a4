// SPDX-License-Identifier: MIT

package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrDegenerateLattice indicates linearly dependent (or zero) lattice rows.
	ErrDegenerateLattice = errors.New("geometry: lattice vectors are linearly dependent")

	// ErrNoPositions indicates an empty position list was passed to Distances.
	ErrNoPositions = errors.New("geometry: no positions given")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("geometry: worker count must be >= 0")
)
