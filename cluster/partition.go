// SPDX-License-Identifier: MIT

package cluster

import "slices"

// Partition lists the connected clusters of a marked set. Clusters are
// disjoint and non-empty, each sorted ascending, and ordered by their
// smallest atom.
type Partition [][]int

// Sizes returns the atom count of each cluster.
func (p Partition) Sizes() []int {
	out := make([]int, len(p))
	for i, c := range p {
		out[i] = len(c)
	}

	return out
}

// Find returns the position of the cluster holding atom i, or -1.
func (p Partition) Find(i int) int {
	for k, c := range p {
		if _, ok := slices.BinarySearch(c, i); ok {
			return k
		}
	}

	return -1
}

// FindClusters returns the connected components of the neighbor graph
// restricted to m. Every edge (a,b) with b < a and both marked is merged
// once; the result does not depend on merge order.
//
// Complexity: O(|m|·z·α(|m|)).
func (e *Engine) FindClusters(m MarkedSet) Partition {
	ids := m.IDs()
	if len(ids) == 0 {
		return Partition{}
	}
	pos := make(map[int]int, len(ids))
	for k, id := range ids {
		pos[id] = k
	}

	ds := newDisjointSet(len(ids))
	for k, a := range ids {
		e.idx.Each(a, func(b int) {
			if b >= a {
				return
			}
			if kb, ok := pos[b]; ok {
				ds.union(k, kb)
			}
		})
	}

	// ids ascend, so clusters appear in order of their smallest atom and
	// fill in ascending order.
	slot := make(map[int]int)
	var out Partition
	for k, id := range ids {
		r := ds.find(k)
		s, ok := slot[r]
		if !ok {
			s = len(out)
			slot[r] = s
			out = append(out, nil)
		}
		out[s] = append(out[s], id)
	}

	return out
}
