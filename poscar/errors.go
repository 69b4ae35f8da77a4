// SPDX-License-Identifier: MIT

package poscar

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *ParseError.
var ErrMalformed = errors.New("poscar: malformed file")

// ParseError locates a problem in the input.
type ParseError struct {
	// Line is 1-based; 0 means end of input.
	Line int
	Msg  string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line == 0 {
		return "poscar: unexpected end of input: " + msg
	}

	return fmt.Sprintf("poscar: line %d: %s", e.Line, msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformed.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
