// SPDX-License-Identifier: MIT

package bond

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is matched by every LookupError.
var ErrUnknownElement = errors.New("bond: unknown element")

// LookupError reports an element label absent from the radii table.
type LookupError struct {
	Element string
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("bond: no covalent radius for element %q", e.Element)
}

// Is reports whether target is ErrUnknownElement.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownElement
}
