// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// DefaultWorkers is the number of goroutines Distances uses unless told
// otherwise: one, i.e. the sequential path.
const DefaultWorkers = 1

// Option configures Distances.
// Invalid values are recorded and surfaced as an error when Distances runs.
type Option func(*Options)

// Options holds the resolved Distances configuration.
type Options struct {
	Workers int

	err error
}

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
}

// WithWorkers splits the rows of the distance matrix into n disjoint
// contiguous ranges computed concurrently.
//
//	n > 1:  parallel row ranges
//	n <= 1: sequential (0 and 1 are equivalent)
//	n < 0:  invalid → ErrBadWorkers
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
