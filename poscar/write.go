// SPDX-License-Identifier: MIT

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/defectra/structure"
)

// runs returns the species line for s: the declared table when present,
// otherwise one entry per consecutive run of equal elements.
func runs(s *structure.Structure) []structure.SpeciesCount {
	if s.Species != nil {
		return s.Species
	}
	var out []structure.SpeciesCount
	for _, a := range s.Atoms {
		if n := len(out); n > 0 && out[n-1].Element == a.Element {
			out[n-1].Count++
			continue
		}
		out = append(out, structure.SpeciesCount{Element: a.Element, Count: 1})
	}

	return out
}

// Write serializes s as a VASP 5 POSCAR in Direct coordinates.
func Write(w io.Writer, s *structure.Structure) error {
	bw := bufio.NewWriter(w)
	comment := strings.ReplaceAll(s.Comment, "\n", " ")
	fmt.Fprintln(bw, comment)
	fmt.Fprintln(bw, "   1.0")
	for _, v := range s.Lattice {
		fmt.Fprintf(bw, "  %16.10f %16.10f %16.10f\n", v.X, v.Y, v.Z)
	}

	table := runs(s)
	names := make([]string, len(table))
	counts := make([]string, len(table))
	for i, sp := range table {
		width := max(len(sp.Element), len(fmt.Sprint(sp.Count)))
		names[i] = fmt.Sprintf("%*s", width, sp.Element)
		counts[i] = fmt.Sprintf("%*d", width, sp.Count)
	}
	fmt.Fprintln(bw, "  "+strings.Join(names, " "))
	fmt.Fprintln(bw, "  "+strings.Join(counts, " "))
	fmt.Fprintln(bw, "Direct")
	for _, a := range s.Atoms {
		fmt.Fprintf(bw, "  %14.10f %14.10f %14.10f\n", a.Frac.X, a.Frac.Y, a.Frac.Z)
	}

	return bw.Flush()
}

// WriteFile writes s to path, creating or truncating it.
func WriteFile(path string, s *structure.Structure) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("poscar: %w", err)
	}
	if err = Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("poscar: %w", err)
	}

	return f.Close()
}

// WriteXYZ serializes s as an XYZ file with Cartesian coordinates in Å.
func WriteXYZ(w io.Writer, s *structure.Structure) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, s.Len())
	fmt.Fprintln(bw, strings.ReplaceAll(s.Comment, "\n", " "))
	for i, c := range s.Cartesian() {
		fmt.Fprintf(bw, "%-3s %14.8f %14.8f %14.8f\n", s.Atoms[i].Element, c.X, c.Y, c.Z)
	}

	return bw.Flush()
}
