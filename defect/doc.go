// SPDX-License-Identifier: MIT

// Package defect flags atoms that do not belong to the dominant host
// lattice of a structure.
//
// Two tests are available, each reducing the structure to a list of
// population sizes and asking a ThresholdPolicy where "rare" ends:
//
//   - species abundance: population = atoms per species; every atom of a
//     species whose count is ≤ threshold is a defect.
//   - local environment: population = atoms sharing a signature (own element
//     followed by the sorted labels of its neighbors); atoms whose signature
//     count is < threshold are defects.
//
// The default policy, FirstMinimum, fits a Gaussian KDE over the population
// sizes and cuts at the first local minimum of the log-density. The curve is
// padded on both sides so a well-formed landscape always alternates
// max-min-max; anything else is reported as *ExtremaOrderError. More than one
// minimum means three or more populations: the first minimum still decides,
// and the Result carries a Warning.
//
// Example:
//
//	c, err := defect.NewClassifier(idx, s, defect.WithLogger(log))
//	res, err := c.Run(defect.MethodAny)
//	ids := res.All()
package defect
