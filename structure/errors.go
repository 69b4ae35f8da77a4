// SPDX-License-Identifier: MIT

package structure

import "errors"

// Sentinel errors for structure operations.
var (
	// ErrNoAtoms indicates a structure with zero atoms.
	ErrNoAtoms = errors.New("structure: no atoms")

	// ErrEmptyElement indicates an atom with an empty element label.
	ErrEmptyElement = errors.New("structure: empty element label")

	// ErrAtomOutOfRange indicates an atom index outside [0, Len()).
	ErrAtomOutOfRange = errors.New("structure: atom index out of range")

	// ErrSpeciesMismatch indicates a species table whose counts do not
	// describe the atom list.
	ErrSpeciesMismatch = errors.New("structure: species table does not match atoms")
)
