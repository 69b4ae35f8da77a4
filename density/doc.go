// SPDX-License-Identifier: MIT

// Package density provides a one-dimensional Gaussian kernel density
// estimate, dense sampling of its log-density and detection of strict
// interior local extrema.
//
// The log-density at x is
//
//	log f(x) = LogSumExp_i( log N(x; d_i, h) ) − log n
//
// which stays finite far into the tails where f itself underflows. Only the
// shape of the curve matters to callers, so working in log space changes
// nothing about where the extrema are.
//
// Extrema treats a run of equal samples as a single point, so a peak that
// falls exactly between two grid points is still reported.
package density
