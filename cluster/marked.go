// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// MarkedSet is an immutable set of atom indices. The zero value is empty.
// Methods never modify the receiver; those that change membership return a
// new set.
type MarkedSet struct {
	bm *roaring.Bitmap
}

// NewMarkedSet returns a set holding ids. Negative ids are ignored.
func NewMarkedSet(ids ...int) MarkedSet {
	bm := roaring.New()
	for _, id := range ids {
		if id >= 0 {
			bm.Add(uint32(id))
		}
	}

	return MarkedSet{bm: bm}
}

func (m MarkedSet) bitmap() *roaring.Bitmap {
	if m.bm == nil {
		return roaring.New()
	}

	return m.bm
}

// Len returns the number of marked atoms.
func (m MarkedSet) Len() int {
	if m.bm == nil {
		return 0
	}

	return int(m.bm.GetCardinality())
}

// IsEmpty reports whether no atom is marked.
func (m MarkedSet) IsEmpty() bool { return m.Len() == 0 }

// Contains reports whether atom i is marked.
func (m MarkedSet) Contains(i int) bool {
	return m.bm != nil && i >= 0 && m.bm.Contains(uint32(i))
}

// Max returns the largest marked atom, or -1 when the set is empty.
func (m MarkedSet) Max() int {
	if m.IsEmpty() {
		return -1
	}

	return int(m.bm.Maximum())
}

// IDs returns the marked atoms in ascending order.
func (m MarkedSet) IDs() []int {
	out := make([]int, 0, m.Len())
	if m.bm == nil {
		return out
	}
	it := m.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// With returns m plus ids.
func (m MarkedSet) With(ids ...int) MarkedSet {
	bm := m.bitmap().Clone()
	for _, id := range ids {
		if id >= 0 {
			bm.Add(uint32(id))
		}
	}

	return MarkedSet{bm: bm}
}

// Without returns m minus ids.
func (m MarkedSet) Without(ids ...int) MarkedSet {
	bm := m.bitmap().Clone()
	for _, id := range ids {
		if id >= 0 {
			bm.Remove(uint32(id))
		}
	}

	return MarkedSet{bm: bm}
}

// Union returns m ∪ o.
func (m MarkedSet) Union(o MarkedSet) MarkedSet {
	return MarkedSet{bm: roaring.Or(m.bitmap(), o.bitmap())}
}

// IsSupersetOf reports whether every atom of o is in m.
func (m MarkedSet) IsSupersetOf(o MarkedSet) bool {
	return roaring.AndNot(o.bitmap(), m.bitmap()).IsEmpty()
}

// Equal reports whether m and o hold the same atoms.
func (m MarkedSet) Equal(o MarkedSet) bool {
	return m.bitmap().Equals(o.bitmap())
}

// String implements fmt.Stringer.
func (m MarkedSet) String() string {
	return fmt.Sprint(m.IDs())
}
