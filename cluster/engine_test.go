// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/defectra/cluster"
	"github.com/katalvlaran/defectra/neighbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := cluster.New(nil)
	assert.ErrorIs(t, err, cluster.ErrNilStructure)

	_, err = cluster.New(ring(t, 4), cluster.WithNeighborOptions(neighbor.WithTolerance(-1)))
	assert.ErrorIs(t, err, neighbor.ErrBadTolerance)

	idx, err := neighbor.Build(ring(t, 6))
	require.NoError(t, err)
	_, err = cluster.New(ring(t, 4), cluster.WithIndex(idx))
	assert.ErrorIs(t, err, cluster.ErrIndexMismatch)
}

func TestNew_DeepCopies(t *testing.T) {
	t.Parallel()

	s := ring(t, 4)
	e := engine(t, s)
	s.Atoms[0].Element = "Si"
	assert.Equal(t, "C", e.Structure().Atoms[0].Element)

	out := e.Structure()
	out.Atoms[1].Element = "Ge"
	assert.Equal(t, "C", e.Structure().Atoms[1].Element)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	e := engine(t, ring(t, 4))
	assert.Equal(t, []int{0, 1, 2, 3}, seed(t, e).IDs())
	assert.Equal(t, []int{2}, seed(t, e, 2, 2).IDs())

	_, err := e.Seed([]int{4})
	assert.ErrorIs(t, err, cluster.ErrAtomOutOfRange)
	_, err = e.Seed([]int{-1})
	assert.ErrorIs(t, err, cluster.ErrAtomOutOfRange)

	_, err = e.Extend(cluster.NewMarkedSet(7), 1)
	assert.ErrorIs(t, err, cluster.ErrAtomOutOfRange)
}

// A–B–C–D periodic chain: D bonds back to A through the boundary.
func TestFindClusters_UnionOnPeriodicChain(t *testing.T) {
	t.Parallel()

	e := engine(t, ring(t, 4))
	tests := []struct {
		name   string
		marked []int
		want   cluster.Partition
	}{
		{"A B C", []int{0, 1, 2}, cluster.Partition{{0, 1, 2}}},
		{"A C", []int{0, 2}, cluster.Partition{{0}, {2}}},
		{"A C D joins through boundary", []int{0, 2, 3}, cluster.Partition{{0, 2, 3}}},
		{"all", nil, cluster.Partition{{0, 1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FindClusters(seed(t, e, tt.marked...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("partition mismatch (-want +got):\n%s", diff)
			}
		})
	}
	assert.Equal(t, cluster.Partition{}, e.FindClusters(cluster.MarkedSet{}))
}

func TestFindClusters_Idempotent(t *testing.T) {
	t.Parallel()

	e := engine(t, ring(t, 12))
	m := seed(t, e, 0, 1, 4, 5, 6, 9)
	first := e.FindClusters(m)
	second := e.FindClusters(m)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated FindClusters differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, cluster.Partition{{0, 1}, {4, 5, 6}, {9}}, first)
	assert.Equal(t, []int{2, 3, 1}, first.Sizes())
	assert.Equal(t, 1, first.Find(5))
	assert.Equal(t, -1, first.Find(7))
}

func TestExtend_Monotone(t *testing.T) {
	t.Parallel()

	e := engine(t, ring(t, 10))
	m := seed(t, e, 0)

	prev := m
	for n := 0; n <= 6; n++ {
		st, err := e.Extend(m, n)
		require.NoError(t, err)
		assert.Truef(t, st.Marked.IsSupersetOf(m), "n=%d lost seed atoms", n)
		assert.Truef(t, st.Marked.IsSupersetOf(prev), "n=%d smaller than n-1", n)
		assert.Len(t, st.Partition, 1)
		prev = st.Marked
	}

	st, err := e.Extend(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, st.Marked.IDs())

	st, err = e.Extend(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 8, 9}, st.Marked.IDs(), "exactly two shells")
	assert.Equal(t, []int{0}, m.IDs(), "input set untouched")

	_, err = e.Extend(m, -1)
	assert.ErrorIs(t, err, cluster.ErrNegativeShells)
}

func TestExtend_MergesClusters(t *testing.T) {
	t.Parallel()

	e := engine(t, ring(t, 10))
	st, err := e.Extend(seed(t, e, 0, 4), 1)
	require.NoError(t, err)
	assert.Equal(t, cluster.Partition{{0, 1, 9}, {3, 4, 5}}, st.Partition)

	st, err = e.Extend(seed(t, e, 0, 4), 2)
	require.NoError(t, err)
	assert.Equal(t, cluster.Partition{{0, 1, 2, 3, 4, 5, 6, 8, 9}}, st.Partition)
}
