// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/defectra/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3)
	set(t, m, 0, 2, 1.5)
	set(t, m, 2, 0, 1.5)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))

	set(t, m, 2, 0, 1.5+1e-6)
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-5))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

func TestValidateDistanceMatrix(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateDistanceMatrix(m, matrix.DefaultEpsilon))

	set(t, m, 1, 1, 0.1)
	require.ErrorIs(t, matrix.ValidateDistanceMatrix(m, matrix.DefaultEpsilon), matrix.ErrNonZeroDiagonal)
}
