// SPDX-License-Identifier: MIT

// Package cluster grows, trims and chemically terminates a connected group
// of atoms around a seed set, typically the defects found by package defect.
//
// The working state is a MarkedSet: an immutable set of atom indices. Every
// Engine operation takes a MarkedSet and returns a new one, so a sequence
// such as
//
//	m, _ := e.Seed(defects)
//	st, _ := e.Extend(m, 2)
//	st, _, _ = e.SmoothUntilStable(st.Marked)
//	terms, _ := e.Hydrogenate(st.Marked, cluster.HydrogenateOptions{})
//	out, _ := e.Materialize(st.Marked, terms)
//
// can be replayed, branched or tested one step at a time.
//
// Operations:
//
//   - FindClusters: connected components of the neighbor graph restricted to
//     the marked atoms (disjoint-set, union by rank and path compression).
//   - Extend: n breadth-first neighbor shells.
//   - Smooth: one pass of dangling-atom removal on the restricted graph.
//   - Hydrogenate: a terminating atom on every bond that leaves the set,
//     placed along the minimum-image bond direction.
//
// The Engine deep-copies its structure on construction and never mutates
// it; it is safe for concurrent use.
package cluster
