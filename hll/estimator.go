package hll

import "github.com/finlakes/hllpack/internal/bitpack"

// View bundles a reference to a Logic with a reference to a backend
// slice and exposes the read-only estimator capability. Its lifetime is
// bounded by the backend it was constructed over; it never outlives the
// array slot it was taken from.
type View[T any, W bitpack.Word] struct {
	logic   *Logic[T, W]
	backend []W
}

// NewView wraps backend in a read-only view under logic.
func NewView[T any, W bitpack.Word](logic *Logic[T, W], backend []W) *View[T, W] {
	return &View[T, W]{logic: logic, backend: backend}
}

// Logic returns the shared logic this view was built from.
func (v *View[T, W]) Logic() *Logic[T, W] { return v.logic }

// Estimate returns the current cardinality estimate. Pure; never
// mutates the backend.
func (v *View[T, W]) Estimate() float64 { return v.logic.Estimate(v.backend) }

// Backend exposes the raw word slice, for callers implementing their
// own serialization.
func (v *View[T, W]) Backend() []W { return v.backend }

// ViewMut adds the mutable estimator capability over View: adding
// elements, clearing, overwriting and merging.
type ViewMut[T any, W bitpack.Word] struct {
	View[T, W]
}

// NewViewMut wraps backend in a mutable view under logic.
func NewViewMut[T any, W bitpack.Word](logic *Logic[T, W], backend []W) *ViewMut[T, W] {
	return &ViewMut[T, W]{View[T, W]{logic: logic, backend: backend}}
}

// Add hashes item and folds it into the backend.
func (v *ViewMut[T, W]) Add(item T) { v.logic.Add(v.backend, item) }

// Clear zeroes the backend.
func (v *ViewMut[T, W]) Clear() { v.logic.Clear(v.backend) }

// Set overwrites the backend from src, which must have the same
// BackendLen as v's logic.
func (v *ViewMut[T, W]) Set(src []W) error { return v.logic.Set(v.backend, src) }

// Merge folds src into the backend register-wise.
func (v *ViewMut[T, W]) Merge(src []W) error { return v.logic.Merge(v.backend, src) }

// MergeWithHelper is Merge reusing a Helper across repeated calls.
func (v *ViewMut[T, W]) MergeWithHelper(src []W, h Helper) error {
	return v.logic.MergeWithHelper(v.backend, src, h)
}

// BackendMut exposes the raw word slice for direct mutation, for
// callers implementing their own deserialization.
func (v *ViewMut[T, W]) BackendMut() []W { return v.backend }

// IntoOwned detaches this view from its parent array by copying the
// backend into a freshly allocated, independently mutable slice. The
// returned view shares the same logic but owns its own storage.
func (v *ViewMut[T, W]) IntoOwned() *ViewMut[T, W] {
	owned := make([]W, len(v.backend))
	copy(owned, v.backend)
	return NewViewMut(v.logic, owned)
}
