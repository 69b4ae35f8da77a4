// SPDX-License-Identifier: MIT

package bond

import "maps"

// pmPerAngstrom converts tabulated picometres to ångström.
const pmPerAngstrom = 100.0

// Table maps element labels to covalent radii.
// The zero value is an empty table; every lookup fails.
type Table struct {
	radii map[string]Radii
}

var defaultTable = &Table{radii: pyykko}

// Default returns the built-in Pyykkö table. It is shared and read-only.
func Default() *Table { return defaultTable }

// NewTable returns a table holding a copy of radii (pm).
func NewTable(radii map[string]Radii) *Table {
	return &Table{radii: maps.Clone(radii)}
}

// With returns a copy of t with el set to r.
func (t *Table) With(el string, r Radii) *Table {
	out := NewTable(t.radii)
	if out.radii == nil {
		out.radii = make(map[string]Radii, 1)
	}
	out.radii[el] = r

	return out
}

// Has reports whether el has at least one tabulated radius.
func (t *Table) Has(el string) bool {
	return t.radii[el].Max() > 0
}

// MaxRadius returns the largest covalent radius of el in ångström.
func (t *Table) MaxRadius(el string) (float64, error) {
	r := t.radii[el].Max()
	if r <= 0 {
		return 0, &LookupError{Element: el}
	}

	return r / pmPerAngstrom, nil
}

// Estimate returns the bond-length estimate between elements a and b in
// ångström: the sum of each element's largest covalent radius.
// The result is symmetric in its arguments.
func (t *Table) Estimate(a, b string) (float64, error) {
	ra, err := t.MaxRadius(a)
	if err != nil {
		return 0, err
	}
	rb, err := t.MaxRadius(b)
	if err != nil {
		return 0, err
	}

	return ra + rb, nil
}

// Estimate is Default().Estimate(a, b).
func Estimate(a, b string) (float64, error) {
	return defaultTable.Estimate(a, b)
}
