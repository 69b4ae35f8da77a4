// SPDX-License-Identifier: MIT

// Package poscar reads and writes VASP POSCAR files and writes XYZ files.
//
// Supported input is the VASP 5 layout:
//
//	comment
//	scale                      (one value; negative = target cell volume in Å³,
//	                            or three per-axis factors)
//	a1 a2 a3                   lattice rows
//	b1 b2 b3
//	c1 c2 c3
//	Si O                       species names (required)
//	8  16                      counts
//	Selective dynamics         optional, flags are dropped
//	Direct | Cartesian         first letter decides; C/c/K/k mean Cartesian
//	x y z [flags] [label]      one line per atom
//
// Files without the species-name line (VASP 4) are rejected. Output is
// always Direct coordinates with scale 1; atom order is preserved and the
// species line lists each consecutive run of equal elements.
package poscar
