// SPDX-License-Identifier: MIT

package defect

import (
	"errors"
	"fmt"
)

// Sentinel errors for defect classification.
var (
	// ErrNilInput indicates a nil index or structure.
	ErrNilInput = errors.New("defect: nil index or structure")

	// ErrIndexMismatch indicates an index built for a different atom count.
	ErrIndexMismatch = errors.New("defect: neighbor index does not match structure")

	// ErrUnknownMethod indicates an unrecognized Method.
	ErrUnknownMethod = errors.New("defect: unknown method")

	// ErrExtremaOrder is matched by every *ExtremaOrderError.
	ErrExtremaOrder = errors.New("defect: density extrema do not alternate max-min-max")

	// ErrBadPolicy indicates invalid policy parameters.
	ErrBadPolicy = errors.New("defect: invalid threshold policy")
)

// ExtremaOrderError reports a density curve without strictly more maxima
// than minima. The positions are in population-size units.
type ExtremaOrderError struct {
	Minima []float64
	Maxima []float64
}

// Error implements error.
func (e *ExtremaOrderError) Error() string {
	return fmt.Sprintf("defect: density extrema out of order: minima=%v maxima=%v", e.Minima, e.Maxima)
}

// Is reports whether target is ErrExtremaOrder.
func (e *ExtremaOrderError) Is(target error) bool {
	return target == ErrExtremaOrder
}
