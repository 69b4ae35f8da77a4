// SPDX-License-Identifier: MIT

package neighbor_test

import (
	"fmt"

	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/structure"
	"gonum.org/v1/gonum/spatial/r3"
)

// A methane-like fragment: one carbon with four hydrogens at 1.09 Å.
func ExampleBuild() {
	const a = 10.0
	d := 1.09 / a
	atoms := []structure.Atom{
		{Element: "C", Frac: r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}},
		{Element: "H", Frac: r3.Vec{X: 0.5 + d, Y: 0.5, Z: 0.5}},
		{Element: "H", Frac: r3.Vec{X: 0.5 - d, Y: 0.5, Z: 0.5}},
		{Element: "H", Frac: r3.Vec{X: 0.5, Y: 0.5 + d, Z: 0.5}},
		{Element: "H", Frac: r3.Vec{X: 0.5, Y: 0.5 - d, Z: 0.5}},
	}
	s, _ := structure.New("CH4", geometry.Lattice{{X: a}, {Y: a}, {Z: a}}, atoms, nil)
	idx, _ := neighbor.Build(s)

	fmt.Println(idx.Coordinations())
	for _, c := range idx.CoordinationStats() {
		fmt.Printf("%d-fold: %d\n", c.Coordination, c.Atoms)
	}
	// Output:
	// [4 1 1 1 1]
	// 1-fold: 4
	// 4-fold: 1
}
