// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/structure"
	"go.uber.org/zap"
)

// Option configures New.
type Option func(*engineOptions)

type engineOptions struct {
	idx       *neighbor.Index
	neighbors []neighbor.Option
	log       *zap.Logger
}

// WithIndex reuses an index already built for the same structure.
func WithIndex(idx *neighbor.Index) Option {
	return func(o *engineOptions) { o.idx = idx }
}

// WithNeighborOptions forwards options to neighbor.Build when New builds
// the index itself. They are ignored together with WithIndex.
func WithNeighborOptions(opts ...neighbor.Option) Option {
	return func(o *engineOptions) { o.neighbors = append(o.neighbors, opts...) }
}

// WithLogger attaches a logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// Engine holds a private copy of a structure and its full neighbor index.
type Engine struct {
	s   *structure.Structure
	idx *neighbor.Index
	log *zap.Logger
}

// State is the outcome of an operation that changes the marked set.
type State struct {
	Marked    MarkedSet
	Partition Partition
}

// New deep-copies s and builds its neighbor index unless WithIndex
// supplies one.
func New(s *structure.Structure, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	o := engineOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{s: s.Clone(), idx: o.idx, log: o.log}
	if e.idx == nil {
		nopts := append([]neighbor.Option{neighbor.WithLogger(o.log)}, o.neighbors...)
		idx, err := neighbor.Build(e.s, nopts...)
		if err != nil {
			return nil, fmt.Errorf("cluster: %w", err)
		}
		e.idx = idx
	}
	if e.idx.Len() != e.s.Len() {
		return nil, fmt.Errorf("%w: index has %d atoms, structure %d", ErrIndexMismatch, e.idx.Len(), e.s.Len())
	}

	return e, nil
}

// Len returns the number of atoms in the engine's structure.
func (e *Engine) Len() int { return e.s.Len() }

// Structure returns a copy of the engine's structure.
func (e *Engine) Structure() *structure.Structure { return e.s.Clone() }

// Index returns the full neighbor index.
func (e *Engine) Index() *neighbor.Index { return e.idx }

// Seed returns the marked set holding ids; no ids marks every atom.
func (e *Engine) Seed(ids []int) (MarkedSet, error) {
	if len(ids) == 0 {
		all := make([]int, e.s.Len())
		for i := range all {
			all[i] = i
		}
		return NewMarkedSet(all...), nil
	}
	for _, id := range ids {
		if id < 0 || id >= e.s.Len() {
			return MarkedSet{}, fmt.Errorf("atom %d of %d: %w", id, e.s.Len(), ErrAtomOutOfRange)
		}
	}

	return NewMarkedSet(ids...), nil
}

// check rejects sets built elsewhere that reach past the structure.
func (e *Engine) check(m MarkedSet) error {
	if hi := m.Max(); hi >= e.s.Len() {
		return fmt.Errorf("atom %d of %d: %w", hi, e.s.Len(), ErrAtomOutOfRange)
	}

	return nil
}

// state pairs m with its partition.
func (e *Engine) state(m MarkedSet) State {
	return State{Marked: m, Partition: e.FindClusters(m)}
}

// Extend grows m by n neighbor shells. Each shell adds the neighbors of the
// set as it stood before that shell, so growth is exactly one bond per
// iteration. Extend(m, 0) returns m unchanged with its partition.
//
// Complexity: O(n·|m|·z) for average coordination z.
func (e *Engine) Extend(m MarkedSet, n int) (State, error) {
	if n < 0 {
		return State{}, fmt.Errorf("%w: got %d", ErrNegativeShells, n)
	}
	if err := e.check(m); err != nil {
		return State{}, err
	}
	cur := m.With()
	for shell := 0; shell < n; shell++ {
		var add []int
		for _, a := range cur.IDs() {
			e.idx.Each(a, func(b int) {
				if !cur.Contains(b) {
					add = append(add, b)
				}
			})
		}
		if len(add) == 0 {
			break
		}
		cur = cur.With(add...)
	}
	st := e.state(cur)
	e.log.Debug("clusters extended",
		zap.Int("shells", n),
		zap.Int("marked", cur.Len()),
		zap.Int("clusters", len(st.Partition)),
	)

	return st, nil
}
