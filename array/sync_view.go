package array

import (
	"fmt"

	"github.com/finlakes/hllpack/hll"
	"github.com/finlakes/hllpack/internal/atomicword"
)

// SyncPackedArrayView is a shared-reference facade over a PackedArray's
// buffer. It lets external goroutines update different slots
// concurrently without locks: every word read and write goes through
// atomicword, so per-word access is non-tearing. It is not safe against
// overlapping writes to the same slot; that discipline is the caller's
// responsibility, same as for any other interior-mutability cell.
//
// Restricted to word types sync/atomic can address directly (32- and
// 64-bit words) since there is no generic atomic primitive for 8- or
// 16-bit words. AsSyncView is a free function, not a PackedArray
// method, because Go methods cannot narrow the receiver's own type
// parameter constraint.
type SyncPackedArrayView[T any, W atomicword.Word] struct {
	logic        *hll.Logic[T, W]
	buf          []W
	backendWords uint64
	n            uint64
}

// AsSyncView produces a SyncPackedArrayView over a's buffer. a itself
// remains valid; the two simply alias the same storage.
func AsSyncView[T any, W atomicword.Word](a *PackedArray[T, W]) *SyncPackedArrayView[T, W] {
	return &SyncPackedArrayView[T, W]{
		logic:        a.logic,
		buf:          a.buf,
		backendWords: a.backendWords,
		n:            a.n,
	}
}

// Len returns the number of slots.
func (s *SyncPackedArrayView[T, W]) Len() uint64 { return s.n }

// IsEmpty reports whether Len() == 0.
func (s *SyncPackedArrayView[T, W]) IsEmpty() bool { return s.n == 0 }

// Logic returns the shared logic backing every slot.
func (s *SyncPackedArrayView[T, W]) Logic() *hll.Logic[T, W] { return s.logic }

func (s *SyncPackedArrayView[T, W]) checkSlot(i uint64, backend []W) error {
	if i >= s.n {
		return fmt.Errorf("hllpack: index %d out of range [0,%d): %w", i, s.n, hll.ErrIndexOutOfRange)
	}
	if uint64(len(backend)) != s.backendWords {
		return fmt.Errorf("hllpack: backend length %d, want %d: %w", len(backend), s.backendWords, hll.ErrLengthMismatch)
	}
	return nil
}

// Set copies src into slot i, one non-tearing word store at a time.
// Safe when no other goroutine is reading or writing slot i
// concurrently.
func (s *SyncPackedArrayView[T, W]) Set(i uint64, src []W) error {
	if err := s.checkSlot(i, src); err != nil {
		return err
	}
	start := i * s.backendWords
	for j, v := range src {
		atomicword.Store(&s.buf[start+uint64(j)], uint64(v))
	}
	return nil
}

// Get copies slot i into dst, one non-tearing word load at a time.
// Safe when no other goroutine is writing slot i concurrently.
func (s *SyncPackedArrayView[T, W]) Get(i uint64, dst []W) error {
	if err := s.checkSlot(i, dst); err != nil {
		return err
	}
	start := i * s.backendWords
	for j := range dst {
		dst[j] = W(atomicword.Load(&s.buf[start+uint64(j)]))
	}
	return nil
}

// Clear zeroes every word in the buffer. Requires that no other
// goroutine holds this view concurrently.
func (s *SyncPackedArrayView[T, W]) Clear() {
	for i := range s.buf {
		atomicword.Store(&s.buf[i], 0)
	}
}
