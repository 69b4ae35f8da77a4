// SPDX-License-Identifier: MIT

package defect_test

import (
	"testing"

	"github.com/katalvlaran/defectra/defect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPadding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, defect.DefaultPadding(0))
	assert.Equal(t, 10.0, defect.DefaultPadding(100))
	assert.InDelta(t, 30.3, defect.DefaultPadding(303), 1e-12)
}

func TestFirstMinimum_Threshold(t *testing.T) {
	t.Parallel()

	th, err := defect.FirstMinimum{}.Threshold([]float64{100, 3}, 103)
	require.NoError(t, err)
	assert.True(t, th.Found)
	assert.False(t, th.Ambiguous)
	assert.InDelta(t, 51.5, th.Value, 0.06)
	assert.Len(t, th.Maxima, 2)

	th, err = defect.FirstMinimum{}.Threshold([]float64{40}, 40)
	require.NoError(t, err)
	assert.False(t, th.Found)
	assert.Len(t, th.Maxima, 1)
	assert.Empty(t, th.Minima)
}

func TestFirstMinimum_BadParameters(t *testing.T) {
	t.Parallel()

	_, err := defect.FirstMinimum{Bandwidth: -1}.Threshold([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, defect.ErrBadPolicy)

	_, err = defect.FirstMinimum{Samples: 2}.Threshold([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, defect.ErrBadPolicy)

	neg := defect.FirstMinimum{Padding: func(int) float64 { return -1 }}
	_, err = neg.Threshold([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, defect.ErrBadPolicy)

	_, err = defect.FirstMinimum{}.Threshold(nil, 0)
	assert.ErrorIs(t, err, defect.ErrBadPolicy)
}
