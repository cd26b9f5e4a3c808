package array

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/finlakes/hllpack/hll"
	"github.com/finlakes/hllpack/internal/bitpack"
)

// TrackedArray wraps a PackedArray with an occupancy bitmap, letting a
// caller managing a very large, sparsely-touched array cheaply ask
// which slots have been handed out through GetEstimatorMut, without
// scanning the whole buffer for nonzero registers. A slot is marked
// whether or not anything is then added to it; writes through other
// paths (GetBackendMut, a sync view) are not recorded.
type TrackedArray[T any, W bitpack.Word] struct {
	*PackedArray[T, W]
	occupied *bitset.BitSet
}

// NewTracked allocates a PackedArray of n slots plus an n-bit occupancy
// map, all slots initially unoccupied.
func NewTracked[T any, W bitpack.Word](logic *hll.Logic[T, W], n uint64) *TrackedArray[T, W] {
	return &TrackedArray[T, W]{
		PackedArray: New[T, W](logic, n),
		occupied:    bitset.New(uint(n)),
	}
}

// GetEstimatorMut returns a mutable view over slot i and marks it
// occupied. Marking happens on lookup, not on the view's first Add,
// since a caller asking to mutate a slot is the operative signal.
func (t *TrackedArray[T, W]) GetEstimatorMut(i uint64) (*hll.ViewMut[T, W], error) {
	v, err := t.PackedArray.GetEstimatorMut(i)
	if err != nil {
		return nil, err
	}
	t.occupied.Set(uint(i))
	return v, nil
}

// IsOccupied reports whether slot i has ever been handed out for
// mutation.
func (t *TrackedArray[T, W]) IsOccupied(i uint64) bool {
	return t.occupied.Test(uint(i))
}

// OccupiedCount returns the number of slots marked occupied.
func (t *TrackedArray[T, W]) OccupiedCount() uint64 {
	return uint64(t.occupied.Count())
}

// Clear zeroes the backing buffer and resets the occupancy map.
func (t *TrackedArray[T, W]) Clear() {
	t.PackedArray.Clear()
	t.occupied.ClearAll()
}
