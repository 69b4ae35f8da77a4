// SPDX-License-Identifier: MIT

package defect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/structure"
	"go.uber.org/zap"
)

// Option configures a Classifier.
type Option func(*Classifier)

// WithPolicy replaces the FirstMinimum threshold policy. nil is ignored.
func WithPolicy(p ThresholdPolicy) Option {
	return func(c *Classifier) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithLogger attaches a logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

// Classifier runs defect tests over one structure and its neighbor index.
// It holds no mutable state and may be shared between goroutines.
type Classifier struct {
	idx    *neighbor.Index
	s      *structure.Structure
	policy ThresholdPolicy
	log    *zap.Logger
}

// NewClassifier binds idx and s. idx must have been built from s.
func NewClassifier(idx *neighbor.Index, s *structure.Structure, opts ...Option) (*Classifier, error) {
	if idx == nil || s == nil {
		return nil, ErrNilInput
	}
	if idx.Len() != s.Len() {
		return nil, fmt.Errorf("%w: index has %d atoms, structure %d", ErrIndexMismatch, idx.Len(), s.Len())
	}
	c := &Classifier{idx: idx, s: s, policy: FirstMinimum{}, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// threshold applies the policy. Ambiguity is logged and, when warn is not
// nil, appended to it.
func (c *Classifier) threshold(m Method, values []float64, warn *[]Warning) (Threshold, error) {
	th, err := c.policy.Threshold(values, c.s.Len())
	if err != nil {
		return th, fmt.Errorf("defect: %s: %w", m, err)
	}
	c.log.Debug("density extrema",
		zap.String("method", string(m)),
		zap.Float64s("values", values),
		zap.Float64s("minima", th.Minima),
		zap.Float64s("maxima", th.Maxima),
	)
	if th.Ambiguous {
		w := Warning{
			Method:  m,
			Message: "more than two populations; using the first minimum",
			Minima:  th.Minima,
		}
		c.log.Warn("ambiguous defect threshold",
			zap.String("method", string(m)),
			zap.Float64s("minima", th.Minima),
			zap.Float64("threshold", th.Value),
		)
		if warn != nil {
			*warn = append(*warn, w)
		}
	}

	return th, nil
}

// SpeciesAbundance flags every atom of a species whose count is at most the
// policy threshold. One species, or all species equally common, flags
// nothing.
func (c *Classifier) SpeciesAbundance() ([]int, error) {
	return c.speciesAbundance(nil)
}

func (c *Classifier) speciesAbundance(warn *[]Warning) ([]int, error) {
	table := perElement(c.s.SpeciesCounts())
	values := make([]float64, len(table))
	distinct := false
	for i, sp := range table {
		values[i] = float64(sp.Count)
		distinct = distinct || sp.Count != table[0].Count
	}
	if len(table) < 2 || !distinct {
		return []int{}, nil
	}
	c.log.Debug("atoms per species", zap.Any("species", table))

	th, err := c.threshold(MethodSpecies, values, warn)
	if err != nil {
		return nil, err
	}
	if !th.Found {
		return []int{}, nil
	}
	rare := make(map[string]bool)
	for _, sp := range table {
		if float64(sp.Count) <= th.Value {
			rare[sp.Element] = true
		}
	}
	ids := []int{}
	for i, a := range c.s.Atoms {
		if rare[a.Element] {
			ids = append(ids, i)
		}
	}

	return ids, nil
}

// perElement merges table rows naming the same element, keeping the order
// of first appearance. Structure files may list one element in several
// blocks. Rows with no atoms are not species of the structure and are
// dropped.
func perElement(table []structure.SpeciesCount) []structure.SpeciesCount {
	pos := make(map[string]int, len(table))
	out := make([]structure.SpeciesCount, 0, len(table))
	for _, sp := range table {
		if sp.Count == 0 {
			continue
		}
		if k, ok := pos[sp.Element]; ok {
			out[k].Count += sp.Count
			continue
		}
		pos[sp.Element] = len(out)
		out = append(out, sp)
	}

	return out
}

// Signatures returns every atom's local-environment signature: its own
// element followed by its neighbors' elements in sorted order, e.g. "CCHH"
// for a carbon bonded to one carbon and two hydrogens.
func (c *Classifier) Signatures() []string {
	out := make([]string, c.s.Len())
	labels := make([]string, 0, 8)
	for i, a := range c.s.Atoms {
		labels = labels[:0]
		c.idx.Each(i, func(j int) {
			labels = append(labels, c.s.Atoms[j].Element)
		})
		slices.Sort(labels)
		out[i] = a.Element + strings.Join(labels, "")
	}

	return out
}

// LocalEnvironment flags atoms whose signature occurs strictly fewer times
// than the policy threshold.
func (c *Classifier) LocalEnvironment() ([]int, error) {
	return c.localEnvironment(nil)
}

func (c *Classifier) localEnvironment(warn *[]Warning) ([]int, error) {
	sigs := c.Signatures()
	freq := make(map[string]int)
	var order []string
	for _, s := range sigs {
		if freq[s] == 0 {
			order = append(order, s)
		}
		freq[s]++
	}
	values := make([]float64, len(order))
	for k, s := range order {
		values[k] = float64(freq[s])
	}
	c.log.Debug("signature frequencies", zap.Strings("signatures", order), zap.Float64s("counts", values))

	th, err := c.threshold(MethodEnvironment, values, warn)
	if err != nil {
		return nil, err
	}
	ids := []int{}
	if !th.Found {
		return ids, nil
	}
	for i, s := range sigs {
		if float64(freq[s]) < th.Value {
			ids = append(ids, i)
		}
	}

	return ids, nil
}

// Run executes method (or both tests for MethodAny) and collects the
// flagged atoms and warnings. The first error aborts the run.
func (c *Classifier) Run(method Method) (*Result, error) {
	var tests []Method
	switch method {
	case MethodSpecies, MethodEnvironment:
		tests = []Method{method}
	case MethodAny:
		tests = []Method{MethodSpecies, MethodEnvironment}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	res := newResult()
	for _, m := range tests {
		var (
			ids []int
			err error
		)
		if m == MethodSpecies {
			ids, err = c.speciesAbundance(&res.warnings)
		} else {
			ids, err = c.localEnvironment(&res.warnings)
		}
		if err != nil {
			return nil, err
		}
		res.put(m, ids)
		c.log.Info("defect test finished", zap.String("method", string(m)), zap.Int("defects", len(ids)))
	}

	return res, nil
}
