// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/defectra/bond"
	"github.com/katalvlaran/defectra/geometry"
	"github.com/katalvlaran/defectra/structure"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTerminator is the element placed on broken bonds.
const DefaultTerminator = "H"

// HydrogenateOptions configures Hydrogenate. The zero value caps with
// hydrogen at the length of the bond it replaces.
type HydrogenateOptions struct {
	// Element is the terminating atom; "" means DefaultTerminator.
	Element string

	// UseTerminatorBond sizes each cap with Estimate(anchor, Element)
	// rather than Estimate(anchor, replaced neighbor).
	UseTerminatorBond bool

	// Table supplies radii; nil means the table the index was built with.
	Table *bond.Table
}

// Termination is one synthesized capping atom.
type Termination struct {
	// Element of the cap.
	Element string

	// Anchor is the marked atom the cap bonds to.
	Anchor int

	// Replaces is the unmarked neighbor whose bond the cap stands in for.
	Replaces int

	// Cartesian position next to the anchor, possibly outside the cell.
	Cartesian r3.Vec

	// Fractional position wrapped into [0,1).
	Fractional r3.Vec
}

// Hydrogenate caps every bond from a marked atom to an unmarked neighbor in
// the full index. The cap sits on the minimum-image bond direction, every
// fractional axis corrected independently, at the estimated bond length
// from the anchor. Terminations are ordered by anchor, then by replaced
// neighbor. The engine's structure is not modified; see Materialize.
//
// Errors: *bond.LookupError for an element without radii;
// ErrCoincidentAtoms for a zero-length bond.
func (e *Engine) Hydrogenate(m MarkedSet, opts HydrogenateOptions) ([]Termination, error) {
	el := opts.Element
	if el == "" {
		el = DefaultTerminator
	}
	table := opts.Table
	if table == nil {
		table = e.idx.Options().Table
	}
	if err := e.check(m); err != nil {
		return nil, err
	}
	lat := e.s.Lattice

	var out []Termination
	for _, a := range m.IDs() {
		anchor := e.s.Atoms[a]
		ns, _ := e.idx.Neighbors(a)
		for _, b := range ns {
			if m.Contains(b) {
				continue
			}
			other := e.s.Atoms[b]
			pair := other.Element
			if opts.UseTerminatorBond {
				pair = el
			}
			length, err := table.Estimate(anchor.Element, pair)
			if err != nil {
				return nil, fmt.Errorf("cluster: hydrogenate %d-%d: %w", a, b, err)
			}

			dir := lat.ToCartesian(geometry.MinimumImageDelta(anchor.Frac, other.Frac))
			if r3.Norm(dir) == 0 {
				return nil, fmt.Errorf("%w: atoms %d and %d", ErrCoincidentAtoms, a, b)
			}
			cart := r3.Add(lat.ToCartesian(anchor.Frac), r3.Scale(length, r3.Unit(dir)))
			frac, err := lat.ToFractional(cart)
			if err != nil {
				return nil, fmt.Errorf("cluster: hydrogenate: %w", err)
			}
			out = append(out, Termination{
				Element:    el,
				Anchor:     a,
				Replaces:   b,
				Cartesian:  cart,
				Fractional: geometry.Wrap(frac),
			})
		}
	}
	e.log.Debug("bonds terminated", zap.String("element", el), zap.Int("caps", len(out)))

	return out, nil
}

// Materialize builds the output structure: the marked atoms in ascending
// order followed by the terminations, regrouped by species.
// ErrEmptyCluster is returned when nothing would be written.
func (e *Engine) Materialize(m MarkedSet, terms []Termination) (*structure.Structure, error) {
	if err := e.check(m); err != nil {
		return nil, err
	}
	if m.IsEmpty() && len(terms) == 0 {
		return nil, ErrEmptyCluster
	}
	sub, err := e.s.Subset(m.IDs())
	if err != nil {
		return nil, fmt.Errorf("cluster: materialize: %w", err)
	}
	caps := make([]structure.Atom, len(terms))
	for i, t := range terms {
		caps[i] = structure.Atom{Element: t.Element, Frac: t.Fractional}
	}
	out, err := sub.Append(caps...)
	if err != nil {
		return nil, fmt.Errorf("cluster: materialize: %w", err)
	}

	return out.SortBySpecies(), nil
}
