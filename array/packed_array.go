// Package array implements the packed storage model for families of HLL
// estimators: PackedArray owns one flat word buffer holding many
// backends contiguously and yields estimator views over slices of it
// without per-element allocation, and SyncPackedArrayView exposes the
// same buffer for lock-free disjoint-index mutation across goroutines.
package array

import (
	"fmt"

	"github.com/finlakes/hllpack/hll"
	"github.com/finlakes/hllpack/internal/bitpack"
)

// PackedArray owns n backends of logic.BackendLen() words each,
// concatenated in a single buffer. The buffer is allocated once at
// construction and never reallocated.
type PackedArray[T any, W bitpack.Word] struct {
	logic        *hll.Logic[T, W]
	buf          []W
	backendWords uint64
	n            uint64
}

// New allocates a PackedArray of n estimators sharing logic.
func New[T any, W bitpack.Word](logic *hll.Logic[T, W], n uint64) *PackedArray[T, W] {
	backendWords := logic.BackendLen()
	return &PackedArray[T, W]{
		logic:        logic,
		buf:          make([]W, n*backendWords),
		backendWords: backendWords,
		n:            n,
	}
}

// Len returns the number of estimator slots.
func (a *PackedArray[T, W]) Len() uint64 { return a.n }

// IsEmpty reports whether Len() == 0.
func (a *PackedArray[T, W]) IsEmpty() bool { return a.n == 0 }

// Logic returns the shared logic backing every slot.
func (a *PackedArray[T, W]) Logic() *hll.Logic[T, W] { return a.logic }

func (a *PackedArray[T, W]) checkIndex(i uint64) error {
	if i >= a.n {
		return fmt.Errorf("hllpack: index %d out of range [0,%d): %w", i, a.n, hll.ErrIndexOutOfRange)
	}
	return nil
}

func (a *PackedArray[T, W]) span(i uint64) (uint64, uint64) {
	start := i * a.backendWords
	return start, start + a.backendWords
}

// GetBackend returns the backend slice for slot i, O(1) and
// allocation-free. The returned slice aliases the array's buffer.
func (a *PackedArray[T, W]) GetBackend(i uint64) ([]W, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	start, end := a.span(i)
	return a.buf[start:end], nil
}

// GetBackendMut is GetBackend with an explicit mutable-intent name; in
// Go both return the same aliasing slice since there is no separate
// read-only slice type.
func (a *PackedArray[T, W]) GetBackendMut(i uint64) ([]W, error) {
	return a.GetBackend(i)
}

// GetEstimator returns a read-only view over slot i.
func (a *PackedArray[T, W]) GetEstimator(i uint64) (*hll.View[T, W], error) {
	backend, err := a.GetBackend(i)
	if err != nil {
		return nil, err
	}
	return hll.NewView(a.logic, backend), nil
}

// GetEstimatorMut returns a mutable view over slot i.
func (a *PackedArray[T, W]) GetEstimatorMut(i uint64) (*hll.ViewMut[T, W], error) {
	backend, err := a.GetBackendMut(i)
	if err != nil {
		return nil, err
	}
	return hll.NewViewMut(a.logic, backend), nil
}

// Clear zeroes the entire buffer, every slot at once.
func (a *PackedArray[T, W]) Clear() {
	for i := range a.buf {
		a.buf[i] = 0
	}
}
