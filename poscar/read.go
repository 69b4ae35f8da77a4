// SPDX-License-Identifier: MIT

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/structure"
	"gonum.org/v1/gonum/spatial/r3"
)

// lineReader hands out trimmed lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next(what string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("poscar: %w", err)
		}
		return "", &ParseError{Msg: "missing " + what}
	}
	r.line++

	return strings.TrimSpace(r.sc.Text()), nil
}

func (r *lineReader) fail(format string, args ...any) error {
	return &ParseError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// floats parses the first n fields of s.
func (r *lineReader) floats(s string, n int, what string) ([]float64, error) {
	f := strings.Fields(s)
	if len(f) < n {
		return nil, r.fail("%s: want %d numbers, got %d fields", what, n, len(f))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, r.fail("%s: bad number %q", what, f[i])
		}
		out[i] = v
	}

	return out, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*structure.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("poscar: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a POSCAR. Direct positions are wrapped into [0,1).
func Read(in io.Reader) (*structure.Structure, error) {
	r := &lineReader{sc: bufio.NewScanner(in)}

	comment, err := r.next("comment")
	if err != nil {
		return nil, err
	}

	line, err := r.next("scale")
	if err != nil {
		return nil, err
	}
	var scale []float64
	if len(strings.Fields(line)) >= 3 {
		scale, err = r.floats(line, 3, "scale")
	} else {
		scale, err = r.floats(line, 1, "scale")
	}
	if err != nil {
		return nil, err
	}
	scaleLine := r.line

	var lat geometry.Lattice
	for i := range lat {
		if line, err = r.next("lattice vector"); err != nil {
			return nil, err
		}
		v, err := r.floats(line, 3, "lattice vector")
		if err != nil {
			return nil, err
		}
		lat[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	lat, factor, err := applyScale(lat, scale)
	if err != nil {
		return nil, &ParseError{Line: scaleLine, Msg: "scale", Err: err}
	}

	if line, err = r.next("species names"); err != nil {
		return nil, err
	}
	names := strings.Fields(line)
	if len(names) == 0 || !unicode.IsLetter(rune(names[0][0])) {
		return nil, r.fail("species names required (VASP 4 layout is not supported)")
	}

	if line, err = r.next("species counts"); err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != len(names) {
		return nil, r.fail("%d counts for %d species", len(fields), len(names))
	}
	species := make([]structure.SpeciesCount, len(names))
	total := 0
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, r.fail("bad count %q", f)
		}
		species[i] = structure.SpeciesCount{Element: names[i], Count: n}
		total += n
	}
	if total == 0 {
		return nil, r.fail("no atoms")
	}

	if line, err = r.next("coordinate mode"); err != nil {
		return nil, err
	}
	if line != "" && (line[0] == 'S' || line[0] == 's') {
		if line, err = r.next("coordinate mode"); err != nil {
			return nil, err
		}
	}
	cartesian := line != "" && strings.ContainsRune("CcKk", rune(line[0]))

	atoms := make([]structure.Atom, 0, total)
	for _, sp := range species {
		for k := 0; k < sp.Count; k++ {
			if line, err = r.next("position"); err != nil {
				return nil, err
			}
			v, err := r.floats(line, 3, "position")
			if err != nil {
				return nil, err
			}
			p := r3.Vec{X: v[0], Y: v[1], Z: v[2]}
			if cartesian {
				p = r3.Scale(factor, p)
				if p, err = lat.ToFractional(p); err != nil {
					return nil, err
				}
			}
			atoms = append(atoms, structure.Atom{Element: sp.Element, Frac: geometry.Wrap(p)})
		}
	}

	return structure.New(comment, lat, atoms, species)
}

// applyScale implements the VASP scaling line: one positive factor, one
// negative target volume, or three per-axis factors applied to the
// Cartesian components of every lattice row. It also returns the uniform
// factor Cartesian positions are multiplied by (1 for the per-axis form).
func applyScale(lat geometry.Lattice, scale []float64) (geometry.Lattice, float64, error) {
	if len(scale) == 3 {
		for _, f := range scale {
			if f <= 0 {
				return lat, 0, fmt.Errorf("per-axis factors must be positive, got %v", scale)
			}
		}
		for i := range lat {
			lat[i] = r3.Vec{X: lat[i].X * scale[0], Y: lat[i].Y * scale[1], Z: lat[i].Z * scale[2]}
		}
		return lat, 1, lat.Validate()
	}
	f := scale[0]
	if f == 0 {
		return lat, 0, fmt.Errorf("factor must be non-zero")
	}
	if err := lat.Validate(); err != nil {
		return lat, 0, err
	}
	if f < 0 {
		f = math.Cbrt(-f / lat.Volume())
	}

	return lat.Scale(f), f, nil
}
