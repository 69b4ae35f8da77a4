// SPDX-License-Identifier: MIT

package density_test

import (
	"testing"

	"github.com/katalvlaran/defectra/density"
	"github.com/stretchr/testify/assert"
)

func TestExtrema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		ys             []float64
		minima, maxima []int
	}{
		{"empty", nil, nil, nil},
		{"two points", []float64{1, 2}, nil, nil},
		{"monotone", []float64{1, 2, 3, 4}, nil, nil},
		{"single peak", []float64{0, 2, 1}, nil, []int{1}},
		{"max-min-max", []float64{0, 3, 1, 4, 0}, []int{2}, []int{1, 3}},
		{"plateau peak", []float64{0, 2, 2, 1}, nil, []int{1}},
		{"plateau shoulder is not extremum", []float64{0, 2, 2, 3}, nil, nil},
		{"plateau at edge", []float64{1, 1, 0, 2}, []int{2}, nil},
		{"edge values ignored", []float64{5, 1, 5}, []int{1}, nil},
		{"three populations", []float64{0, 4, 1, 3, 2, 5, 0}, []int{2, 4}, []int{1, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minima, maxima := density.Extrema(tt.ys)
			assert.Equal(t, tt.minima, minima)
			assert.Equal(t, tt.maxima, maxima)
		})
	}
}
