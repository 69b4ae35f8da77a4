// SPDX-License-Identifier: MIT

// Package neighbor builds the periodic nearest-neighbor graph of a structure.
//
// Two distinct atoms i and j are neighbors when their minimum-image distance
// is at most Estimate(el_i, el_j) × tolerance. The graph is stored as one
// ascending index list per atom; it is symmetric and never contains self
// edges.
package neighbor

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/defectra/bond"
	"go.uber.org/zap"
)

// DefaultTolerance stretches the covalent estimate by 10%, enough to catch
// slightly elongated bonds in relaxed cells.
const DefaultTolerance = 1.1

// Sentinel errors for neighbor index construction.
var (
	// ErrNilStructure is returned when Build receives a nil structure.
	ErrNilStructure = errors.New("neighbor: structure is nil")

	// ErrBadTolerance is returned for a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("neighbor: tolerance must be positive and finite")

	// ErrAtomOutOfRange is returned by accessors given an unknown atom index.
	ErrAtomOutOfRange = errors.New("neighbor: atom index out of range")
)

// Option configures Build via functional arguments.
// Invalid values are recorded and surfaced when Build runs.
type Option func(*Options)

// Options holds the resolved Build parameters.
type Options struct {
	// Tolerance multiplies every bond-length estimate.
	Tolerance float64

	// Table supplies covalent radii.
	Table *bond.Table

	// Workers is forwarded to geometry.WithWorkers.
	Workers int

	// Logger receives a debug summary of each build.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns tolerance 1.1, the built-in radii table, the
// sequential distance path and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Table:     bond.Default(),
		Workers:   1,
		Logger:    zap.NewNop(),
	}
}

// WithTolerance sets the bond-length multiplier.
//
//	t > 0 and finite: accepted
//	otherwise:        ErrBadTolerance
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if !(t > 0) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: got %v", ErrBadTolerance, t)
			return
		}
		o.Tolerance = t
	}
}

// WithTable replaces the radii table. nil keeps the current one.
func WithTable(t *bond.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}

// WithWorkers computes the distance matrix with n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger attaches a logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOptions replays a resolved Options value, e.g. one taken from
// Index.Options, so a second index is built the same way.
func WithOptions(src Options) Option {
	return func(o *Options) {
		err := o.err
		*o = src
		if o.Table == nil {
			o.Table = bond.Default()
		}
		if o.Logger == nil {
			o.Logger = zap.NewNop()
		}
		if err != nil {
			o.err = err
		}
	}
}

func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
