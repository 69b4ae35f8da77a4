// SPDX-License-Identifier: MIT

package neighbor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/matrix"
	"github.com/katalvlaran/defectra/structure"
	"go.uber.org/zap"
)

// Index is the neighbor graph of one structure. It is immutable after Build
// and safe for concurrent readers.
type Index struct {
	lists     [][]int
	opts      Options
	maxCutoff float64
}

// CoordinationCount is one bin of the coordination histogram.
type CoordinationCount struct {
	Coordination int
	Atoms        int
}

// pairKey orders an element pair so (a,b) and (b,a) share a cache slot.
type pairKey struct{ a, b string }

func orderedPair(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a, b}
}

// Build computes the neighbor index of s.
//
// Steps:
//  1. Minimum-image distance matrix over the 27 periodic images.
//  2. For every pair i<j, compare the distance with the cached cutoff
//     Estimate(el_i, el_j) × tolerance and record the edge both ways.
//
// Lists come out ascending because pairs are visited in (i,j) order.
//
// Errors: ErrNilStructure, ErrBadTolerance, geometry errors, and
// *bond.LookupError (matching bond.ErrUnknownElement) for an element with no
// covalent radius.
//
// Complexity: O(27·N²) time, O(N²) transient memory for the distance matrix.
func Build(s *structure.Structure, opts ...Option) (*Index, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNilStructure
	}

	dist, err := geometry.Distances(s.Cartesian(), &s.Lattice, geometry.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("neighbor: %w", err)
	}
	if err = matrix.ValidateDistanceMatrix(dist, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("neighbor: %w", err)
	}

	n := s.Len()
	cutoffs := make(map[pairKey]float64)
	lists := make([][]int, n)
	edges := 0
	for i := 0; i < n; i++ {
		row, _ := dist.RawRow(i)
		ei := s.Atoms[i].Element
		for j := i + 1; j < n; j++ {
			ej := s.Atoms[j].Element
			key := orderedPair(ei, ej)
			cut, ok := cutoffs[key]
			if !ok {
				est, err := o.Table.Estimate(ei, ej)
				if err != nil {
					return nil, fmt.Errorf("neighbor: atoms %d-%d: %w", i, j, err)
				}
				cut = est * o.Tolerance
				cutoffs[key] = cut
			}
			if row[j] <= cut {
				lists[i] = append(lists[i], j)
				lists[j] = append(lists[j], i)
				edges++
			}
		}
	}

	o.Logger.Debug("neighbor index built",
		zap.Int("atoms", n),
		zap.Int("edges", edges),
		zap.Float64("tolerance", o.Tolerance),
	)

	maxCut := 0.0
	for _, c := range cutoffs {
		maxCut = max(maxCut, c)
	}

	return &Index{lists: lists, opts: o, maxCutoff: maxCut}, nil
}

// Options returns the parameters the index was built with.
func (x *Index) Options() Options {
	o := x.opts
	o.err = nil

	return o
}

// MaxCutoff returns the largest pair cutoff (Å) used during Build. Results
// are only reliable while it stays below half the narrowest cell width.
func (x *Index) MaxCutoff() float64 { return x.maxCutoff }

// Len returns the number of atoms.
func (x *Index) Len() int { return len(x.lists) }

func (x *Index) check(i int) error {
	if i < 0 || i >= len(x.lists) {
		return fmt.Errorf("atom %d of %d: %w", i, len(x.lists), ErrAtomOutOfRange)
	}

	return nil
}

// Neighbors returns a copy of atom i's ascending neighbor list.
func (x *Index) Neighbors(i int) ([]int, error) {
	if err := x.check(i); err != nil {
		return nil, err
	}

	return slices.Clone(x.lists[i]), nil
}

// Coordination returns the number of neighbors of atom i.
func (x *Index) Coordination(i int) (int, error) {
	if err := x.check(i); err != nil {
		return 0, err
	}

	return len(x.lists[i]), nil
}

// Coordinations returns every coordination number, index-aligned.
func (x *Index) Coordinations() []int {
	out := make([]int, len(x.lists))
	for i, l := range x.lists {
		out[i] = len(l)
	}

	return out
}

// IsNeighbor reports whether i and j share an edge. Out-of-range indices
// are never neighbors.
func (x *Index) IsNeighbor(i, j int) bool {
	if x.check(i) != nil || x.check(j) != nil {
		return false
	}
	_, found := slices.BinarySearch(x.lists[i], j)

	return found
}

// Lists returns a deep copy of every neighbor list.
func (x *Index) Lists() [][]int {
	out := make([][]int, len(x.lists))
	for i, l := range x.lists {
		out[i] = slices.Clone(l)
	}

	return out
}

// Each calls fn for every neighbor of atom i in ascending order without
// copying. fn must not retain the index.
func (x *Index) Each(i int, fn func(j int)) {
	if x.check(i) != nil {
		return
	}
	for _, j := range x.lists[i] {
		fn(j)
	}
}

// CoordinationStats returns how many atoms have each coordination number,
// ascending by coordination.
func (x *Index) CoordinationStats() []CoordinationCount {
	hist := make(map[int]int)
	for _, l := range x.lists {
		hist[len(l)]++
	}
	out := make([]CoordinationCount, 0, len(hist))
	for c, k := range hist {
		out = append(out, CoordinationCount{Coordination: c, Atoms: k})
	}
	slices.SortFunc(out, func(a, b CoordinationCount) int { return a.Coordination - b.Coordination })

	return out
}
