// SPDX-License-Identifier: MIT

package defect

import (
	"fmt"
	"slices"
)

// Method names a classification test.
type Method string

// Available methods.
const (
	MethodSpecies     Method = "species-abundance"
	MethodEnvironment Method = "local-environment"
	MethodAny         Method = "any"
)

// Methods lists every method Run accepts.
func Methods() []Method {
	return []Method{MethodSpecies, MethodEnvironment, MethodAny}
}

// ParseMethod maps a name to a Method.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	if !slices.Contains(Methods(), m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return m, nil
}

// Warning is a non-fatal diagnostic raised during classification.
type Warning struct {
	Method  Method
	Message string
	Minima  []float64
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (minima=%v)", w.Method, w.Message, w.Minima)
}

// Result holds the atoms flagged by each method that ran. Accessors return
// copies, so a Result never changes after Run returns it.
type Result struct {
	byMethod map[Method][]int
	order    []Method
	warnings []Warning
}

func newResult() *Result {
	return &Result{byMethod: make(map[Method][]int)}
}

func (r *Result) put(m Method, ids []int) {
	if _, ok := r.byMethod[m]; !ok {
		r.order = append(r.order, m)
	}
	if ids == nil {
		ids = []int{}
	}
	r.byMethod[m] = ids
}

// Get returns the ascending atom indices flagged by m and whether m ran.
func (r *Result) Get(m Method) ([]int, bool) {
	ids, ok := r.byMethod[m]

	return slices.Clone(ids), ok
}

// Ran returns the methods that produced output, in run order.
func (r *Result) Ran() []Method {
	return slices.Clone(r.order)
}

// All returns the ascending union of every method's atoms.
func (r *Result) All() []int {
	var out []int
	for _, ids := range r.byMethod {
		out = append(out, ids...)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Warnings returns the diagnostics collected during the run.
func (r *Result) Warnings() []Warning {
	return slices.Clone(r.warnings)
}
