// SPDX-License-Identifier: MIT

// Package bond estimates covalent bond lengths from tabulated radii.
//
// The built-in table holds Pyykkö's single, double and triple bond covalent
// radii in picometres. Estimate(a, b) is the sum of each element's largest
// available radius converted to ångström, which is an upper estimate: it
// deliberately favours the loosest bond an element can form.
//
// Example:
//
//	d, err := bond.Estimate("C", "H") // 0.75 + 0.32 = 1.07 Å
//
// Callers that need different radii build their own Table and pass it to
// neighbor.WithTable.
package bond
