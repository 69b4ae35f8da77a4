// SPDX-License-Identifier: MIT

// Package structure holds an immutable snapshot of a periodic crystal:
// the lattice, the atoms in fractional coordinates and, optionally, the
// ordered species-count table a structure file declared.
//
// An atom's index is its position in Structure.Atoms. Every method that
// changes the structure (Subset, Relabel, Append, SortBySpecies) returns a
// new Structure and leaves the receiver untouched, so a Structure can be
// shared between goroutines once built.
package structure
