// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/defectra/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

func TestNewDense_InvalidShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

// set writes v at (i, j) through the raw row accessor.
func set(t *testing.T, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	row, err := m.RawRow(i)
	require.NoError(t, err)
	row[j] = v
}

func TestDense_AtBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	set(t, m, 1, 2, 4.5)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewFilled_AllowsInf(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFilled(2, 2, math.Inf(1))
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	assert.True(t, math.IsInf(v, 1))

	_, err = matrix.NewFilled(0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_RawRowAliasesStorage(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	row, err := m.RawRow(1)
	require.NoError(t, err)
	row[0] = 7
	v, _ := m.At(1, 0)
	assert.Equal(t, 7.0, v)

	// Capacity is clipped so appends cannot spill into the next row.
	assert.Equal(t, 2, cap(row))

	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
