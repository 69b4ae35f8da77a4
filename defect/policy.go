// SPDX-License-Identifier: MIT

package defect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/defectra/density"
)

// Defaults of the FirstMinimum policy.
const (
	// DefaultBandwidth is the Gaussian kernel σ in population-size units.
	DefaultBandwidth = 3.0

	// DefaultSamples is the number of evenly spaced log-density samples.
	DefaultSamples = 2001

	// minPadding is the least padding added beyond the data range.
	minPadding = 10.0

	// paddingFraction of the atom count is used when it exceeds minPadding.
	paddingFraction = 0.1
)

// Threshold is a policy decision over a list of population sizes.
type Threshold struct {
	// Value is the cut. Meaningful only when Found.
	Value float64

	// Found is false when the policy sees a single population.
	Found bool

	// Minima and Maxima are the interior extrema positions the policy
	// used, ascending. Empty for policies without a density curve.
	Minima, Maxima []float64

	// Ambiguous is set when more than one minimum was seen.
	Ambiguous bool
}

// ThresholdPolicy decides where rare ends in a list of population sizes.
// atomCount is the total number of atoms in the structure.
type ThresholdPolicy interface {
	Threshold(values []float64, atomCount int) (Threshold, error)
}

// DefaultPadding returns max(10, 0.1·atomCount).
func DefaultPadding(atomCount int) float64 {
	return math.Max(minPadding, paddingFraction*float64(atomCount))
}

// FirstMinimum cuts at the first (lowest) local minimum of a Gaussian KDE
// log-density. The zero value uses the package defaults.
type FirstMinimum struct {
	// Bandwidth is the kernel σ; 0 means DefaultBandwidth.
	Bandwidth float64

	// Samples is the grid size; 0 means DefaultSamples.
	Samples int

	// Padding returns how far past [min, max] the grid extends; nil means
	// DefaultPadding.
	Padding func(atomCount int) float64
}

// Threshold implements ThresholdPolicy.
//
// Errors: *ExtremaOrderError when the curve does not have strictly more
// maxima than minima; ErrBadPolicy for invalid parameters.
func (p FirstMinimum) Threshold(values []float64, atomCount int) (Threshold, error) {
	bw := p.Bandwidth
	if bw == 0 {
		bw = DefaultBandwidth
	}
	n := p.Samples
	if n == 0 {
		n = DefaultSamples
	}
	padding := p.Padding
	if padding == nil {
		padding = DefaultPadding
	}
	pad := padding(atomCount)
	if !(pad >= 0) {
		return Threshold{}, fmt.Errorf("%w: padding %v", ErrBadPolicy, pad)
	}

	kde, err := density.NewKDE(values, bw)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %w", ErrBadPolicy, err)
	}
	lo, hi := kde.Range()
	xs, ys, err := kde.Sample(lo-pad, hi+pad, n)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %w", ErrBadPolicy, err)
	}

	minIdx, maxIdx := density.Extrema(ys)
	th := Threshold{Minima: pick(xs, minIdx), Maxima: pick(xs, maxIdx)}
	if len(maxIdx) <= len(minIdx) {
		return th, &ExtremaOrderError{Minima: th.Minima, Maxima: th.Maxima}
	}
	if len(minIdx) == 0 {
		return th, nil
	}
	th.Value = th.Minima[0]
	th.Found = true
	th.Ambiguous = len(minIdx) > 1

	return th, nil
}

func pick(xs []float64, idx []int) []float64 {
	if len(idx) == 0 {
		return nil
	}
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = xs[i]
	}

	return out
}

// FractionOfAtoms cuts at a fixed share of the atom count, e.g. 0.05 flags
// every population holding at most 5% of the atoms.
type FractionOfAtoms struct {
	Fraction float64
}

// Threshold implements ThresholdPolicy. It is never ambiguous.
func (p FractionOfAtoms) Threshold(_ []float64, atomCount int) (Threshold, error) {
	if !(p.Fraction > 0 && p.Fraction < 1) {
		return Threshold{}, fmt.Errorf("%w: fraction %v not in (0,1)", ErrBadPolicy, p.Fraction)
	}

	return Threshold{Value: p.Fraction * float64(atomCount), Found: true}, nil
}
