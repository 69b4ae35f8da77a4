// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/defectra/neighbor"
	"go.uber.org/zap"
)

// DefaultSmoothCutoff unmarks atoms left with at most one bond inside the
// cluster.
const DefaultSmoothCutoff = 1

// SmoothOptions holds the resolved smoothing parameters.
type SmoothOptions struct {
	// Cutoff: a marked atom whose in-cluster coordination is ≤ Cutoff is
	// unmarked.
	Cutoff int

	// IgnoreElement, when set, names a terminating element (typically "H")
	// held to IgnoreCoordination instead of Cutoff.
	IgnoreElement string

	// IgnoreCoordination is the cutoff for IgnoreElement atoms.
	IgnoreCoordination int

	err error
}

// SmoothOption configures Smooth and SmoothUntilStable. Options left
// unset keep DefaultSmoothOptions.
type SmoothOption func(*SmoothOptions)

// DefaultSmoothOptions returns cutoff 1 with no ignored element.
func DefaultSmoothOptions() SmoothOptions {
	return SmoothOptions{Cutoff: DefaultSmoothCutoff}
}

// WithCutoff sets the coordination at or below which atoms are unmarked.
// Zero removes only isolated atoms. Negative cutoffs are rejected.
func WithCutoff(n int) SmoothOption {
	return func(o *SmoothOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cutoff %d", ErrBadCutoff, n)
			return
		}
		o.Cutoff = n
	}
}

// WithIgnoredElement holds atoms of element el to cutoff n instead of the
// general cutoff. An empty element clears the exception.
func WithIgnoredElement(el string, n int) SmoothOption {
	return func(o *SmoothOptions) {
		if el != "" && n < 0 {
			o.err = fmt.Errorf("%w: %s cutoff %d", ErrBadCutoff, el, n)
			return
		}
		o.IgnoreElement = el
		o.IgnoreCoordination = n
	}
}

func gatherSmoothOptions(opts ...SmoothOption) (SmoothOptions, error) {
	o := DefaultSmoothOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Smooth performs one pass of dangling-atom removal. Coordination is
// counted on a fresh neighbor index of the sub-structure holding only the
// marked atoms, built with the same tolerance and radii as the full index.
// Atoms exposed by this pass are not removed until the next call; use
// SmoothUntilStable for the fixed point.
func (e *Engine) Smooth(m MarkedSet, opts ...SmoothOption) (State, error) {
	o, err := gatherSmoothOptions(opts...)
	if err != nil {
		return State{}, err
	}

	return e.smooth(m, o)
}

func (e *Engine) smooth(m MarkedSet, opts SmoothOptions) (State, error) {
	if err := e.check(m); err != nil {
		return State{}, err
	}
	ids := m.IDs()
	if len(ids) == 0 {
		return e.state(m), nil
	}
	sub, err := e.s.Subset(ids)
	if err != nil {
		return State{}, fmt.Errorf("cluster: smooth: %w", err)
	}
	base := e.idx.Options()
	base.Logger = zap.NewNop()
	subIdx, err := neighbor.Build(sub, neighbor.WithOptions(base))
	if err != nil {
		return State{}, fmt.Errorf("cluster: smooth: %w", err)
	}

	// Subset keeps ascending order, so sub atom k is ids[k].
	var drop []int
	for k, id := range ids {
		cut := opts.Cutoff
		if opts.IgnoreElement != "" && sub.Atoms[k].Element == opts.IgnoreElement {
			cut = opts.IgnoreCoordination
		}
		if c, _ := subIdx.Coordination(k); c <= cut {
			drop = append(drop, id)
		}
	}
	next := m.Without(drop...)
	e.log.Debug("edges smoothed", zap.Ints("removed", drop), zap.Int("marked", next.Len()))

	return e.state(next), nil
}

// SmoothUntilStable repeats Smooth until a pass removes nothing and
// returns the final state with the number of passes that removed atoms.
func (e *Engine) SmoothUntilStable(m MarkedSet, opts ...SmoothOption) (State, int, error) {
	o, err := gatherSmoothOptions(opts...)
	if err != nil {
		return State{}, 0, err
	}
	cur := m
	passes := 0
	for {
		st, err := e.smooth(cur, o)
		if err != nil {
			return State{}, passes, err
		}
		if st.Marked.Equal(cur) {
			return st, passes, nil
		}
		cur = st.Marked
		passes++
	}
}
