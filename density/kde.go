// SPDX-License-Identifier: MIT

package density

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for density estimation.
var (
	// ErrNoData indicates an empty sample.
	ErrNoData = errors.New("density: no data")

	// ErrBadBandwidth indicates a bandwidth that is not positive and finite.
	ErrBadBandwidth = errors.New("density: bandwidth must be positive and finite")

	// ErrBadGrid indicates fewer than three samples or an empty/inverted range.
	ErrBadGrid = errors.New("density: invalid sampling grid")
)

// KDE is a Gaussian kernel density estimate over a fixed data set.
type KDE struct {
	data   []float64
	kernel distuv.Normal
	logN   float64
}

// NewKDE fits a Gaussian KDE with the given bandwidth (kernel σ).
// data is copied.
func NewKDE(data []float64, bandwidth float64) (*KDE, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if !(bandwidth > 0) || math.IsInf(bandwidth, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadBandwidth, bandwidth)
	}

	return &KDE{
		data:   slices.Clone(data),
		kernel: distuv.Normal{Mu: 0, Sigma: bandwidth},
		logN:   math.Log(float64(len(data))),
	}, nil
}

// Bandwidth returns the kernel σ.
func (k *KDE) Bandwidth() float64 { return k.kernel.Sigma }

// Range returns the smallest and largest data value.
func (k *KDE) Range() (lo, hi float64) {
	return floats.Min(k.data), floats.Max(k.data)
}

// LogDensity returns log f(x).
func (k *KDE) LogDensity(x float64) float64 {
	return k.logDensity(x, make([]float64, len(k.data)))
}

func (k *KDE) logDensity(x float64, buf []float64) float64 {
	for i, d := range k.data {
		buf[i] = k.kernel.LogProb(x - d)
	}

	return floats.LogSumExp(buf) - k.logN
}

// Sample evaluates the log-density on n evenly spaced points spanning
// [lo, hi] inclusive.
func (k *KDE) Sample(lo, hi float64, n int) (xs, ys []float64, err error) {
	if n < 3 || !(hi > lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, nil, fmt.Errorf("%w: n=%d range=[%v, %v]", ErrBadGrid, n, lo, hi)
	}
	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	buf := make([]float64, len(k.data))
	for i, x := range xs {
		ys[i] = k.logDensity(x, buf)
	}

	return xs, ys, nil
}
