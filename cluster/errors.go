// SPDX-License-Identifier: MIT

package cluster

import "errors"

// Sentinel errors for cluster operations.
var (
	// ErrNilStructure indicates New received a nil structure.
	ErrNilStructure = errors.New("cluster: structure is nil")

	// ErrIndexMismatch indicates WithIndex supplied an index for a different atom count.
	ErrIndexMismatch = errors.New("cluster: neighbor index does not match structure")

	// ErrAtomOutOfRange indicates a seed index outside the structure.
	ErrAtomOutOfRange = errors.New("cluster: atom index out of range")

	// ErrNegativeShells indicates Extend was asked for fewer than zero shells.
	ErrNegativeShells = errors.New("cluster: shell count must be >= 0")

	// ErrBadCutoff indicates a negative smoothing cutoff.
	ErrBadCutoff = errors.New("cluster: coordination cutoff must be >= 0")

	// ErrEmptyCluster indicates Materialize was given nothing to write.
	ErrEmptyCluster = errors.New("cluster: no atoms left in cluster")

	// ErrCoincidentAtoms indicates a bond of zero length, which has no direction.
	ErrCoincidentAtoms = errors.New("cluster: bonded atoms share a position")
)
