// SPDX-License-Identifier: MIT

// Command defectra finds defects in periodic crystal structures and cuts
// terminated clusters around them.
//
// Usage:
//
//	defectra neighbors POSCAR
//	defectra defects POSCAR --method any --placeholder X -o POSCAR.defects
//	defectra cluster POSCAR -o CLUSTER --shells 2 --smooth --hydrogenate
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
