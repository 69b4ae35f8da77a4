// SPDX-License-Identifier: MIT

// Package defectra finds defects in periodic crystal structures and cuts
// chemically terminated clusters around them.
//
// 🚀 What is defectra?
//
//	An in-memory engine that brings together:
//		• Geometry: lattice algebra, minimum-image distances over 27 images
//		• Bonds: covalent-radius bond-length estimates
//		• Neighbors: the periodic nearest-neighbor graph
//		• Defects: rare species and rare local environments via KDE thresholds
//		• Clusters: extend, smooth and hydrogenate a marked set of atoms
//
// ✨ Design
//
//   - Immutable snapshots: structures, indices and marked sets never change
//     after construction; every step returns a new value
//   - Pluggable thresholds: defect.ThresholdPolicy decides where "rare" ends
//   - Deterministic: same input, same partition, same caps
//
// Packages, leaf first:
//
//	matrix/     dense float64 matrix and distance-matrix validators
//	geometry/   Lattice, Wrap, MinimumImageDelta, Distances
//	bond/       covalent radii table, Estimate
//	structure/  Atom, Structure, Subset/Relabel/Append
//	neighbor/   Index: neighbors, coordination, statistics
//	density/    Gaussian KDE and interior extrema
//	defect/     Classifier, FirstMinimum, FractionOfAtoms
//	cluster/    Engine, MarkedSet, Partition, Termination
//	poscar/     VASP POSCAR and XYZ I/O
//	config/     YAML configuration with environment overrides
//
// Quick example: a four-atom periodic chain A–B–C–D where D bonds back to A
// through the cell boundary.
//
//	    ┌──────────────┐
//	  ──A───B───C───D──
//	    └──────────────┘
//
// Marking {A, B, C} gives one cluster; marking {A, C, D} also gives one,
// joined across the boundary.
//
//	go install github.com/katalvlaran/defectra/cmd/defectra@latest
package defectra
