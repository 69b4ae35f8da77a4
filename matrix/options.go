// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

// DefaultEpsilon defines the non-negative tolerance used by structural checks
// (symmetry, zero diagonal) on distance matrices.
const DefaultEpsilon = 1e-9
