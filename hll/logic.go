// Package hll implements the HyperLogLog estimation logic: register
// layout inside a word-packed backend, the add/estimate/merge
// algorithms, and the bias-corrected cardinality formula.
//
// A Logic value is immutable after Build and cheap to share: every
// estimator view and every slot of a packed array holds a reference to
// the same Logic rather than carrying its own copy of the constants.
package hll

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/finlakes/hllpack/hash"
	"github.com/finlakes/hllpack/internal/bitpack"
	"github.com/finlakes/hllpack/internal/util"
)

// Logic holds the immutable configuration and algorithms shared by a
// family of estimators: register count, register width, word layout,
// bias constant and hasher. It operates on caller-supplied backend
// slices rather than owning any registers itself.
type Logic[T any, W bitpack.Word] struct {
	log2m        uint64
	m            uint64
	r            uint64
	q            uint64
	wordBits     uint64
	backendWords uint64
	alpha        float64
	hasher       hash.Hasher[T]
}

// Helper is reusable scratch state for MergeWithHelper. The zero value
// is ready to use; NewHelper exists so callers running many merges in a
// loop allocate it once.
type Helper struct{}

// NewHelper returns a fresh merge helper.
func (l *Logic[T, W]) NewHelper() Helper {
	return Helper{}
}

// Log2NumReg returns p such that NumRegisters() == 1<<p.
func (l *Logic[T, W]) Log2NumReg() uint64 { return l.log2m }

// NumRegisters returns m, the number of registers.
func (l *Logic[T, W]) NumRegisters() uint64 { return l.m }

// RegisterWidth returns r, the bit width of a register.
func (l *Logic[T, W]) RegisterWidth() uint64 { return l.r }

// BackendLen returns the number of W words a backend must have.
func (l *Logic[T, W]) BackendLen() uint64 { return l.backendWords }

// RelStd returns the relative standard deviation of an estimator built
// with 2^log2m registers: 1.106/sqrt(2^log2m). Exposed as a function of
// log2m alone since it does not depend on any other logic state.
func RelStd(log2m uint64) float64 {
	return 1.106 / math.Sqrt(math.Exp2(float64(log2m)))
}

func alphaFor(m uint64) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1.0 + 1.079/float64(m))
	}
}

// rho computes 1 + leading zeros of w within its own q-bit window,
// capped at q+1 by a guard bit placed one position below the window so
// an all-zero w still terminates the scan instead of running off the
// end of the machine word.
func rho(w, q uint64) uint64 {
	guarded := w<<(64-q) | uint64(1)<<(63-q)
	return 1 + uint64(bits.LeadingZeros64(guarded))
}

// Add hashes item, locates its register and raises it to the observed
// rank if that rank is larger than what is already stored.
func (l *Logic[T, W]) Add(backend []W, item T) {
	h := l.hasher.Sum64(item)
	j := h & (l.m - 1)
	w := h >> l.log2m

	rank := rho(w, l.q)
	if limit := uint64(1)<<l.r - 1; rank > limit {
		rank = limit
	}

	if old := bitpack.Get(backend, l.r, j); rank > old {
		bitpack.Set(backend, l.r, j, rank)
	}
}

// Estimate computes the bias-corrected cardinality of backend.
func (l *Logic[T, W]) Estimate(backend []W) float64 {
	var sum float64
	var zeros uint64
	for j := uint64(0); j < l.m; j++ {
		k := bitpack.Get(backend, l.r, j)
		if k == 0 {
			zeros++
		}
		sum += math.Exp2(-float64(k))
	}

	m := float64(l.m)
	raw := l.alpha * m * m / sum
	if raw <= 2.5*m && zeros > 0 {
		return m * math.Log(m/float64(zeros))
	}
	return raw
}

// Clear zeroes every word of backend.
func (l *Logic[T, W]) Clear(backend []W) {
	for i := range backend {
		backend[i] = 0
	}
}

// Set copies src into dst. Both must have length BackendLen().
func (l *Logic[T, W]) Set(dst, src []W) error {
	if err := l.checkLen(dst); err != nil {
		return err
	}
	if err := l.checkLen(src); err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// Merge writes, for every register j, max(dst[j], src[j]) into dst.
func (l *Logic[T, W]) Merge(dst, src []W) error {
	return l.MergeWithHelper(dst, src, l.NewHelper())
}

// MergeWithHelper is Merge reusing a Helper across many calls. The
// helper carries no state for this logic's merge strategy today, but
// callers running high-fanout merges should still obtain one with
// NewHelper and reuse it, since future register widths may need it for
// SWAR unpacking scratch space.
func (l *Logic[T, W]) MergeWithHelper(dst, src []W, _ Helper) error {
	if err := l.checkLen(dst); err != nil {
		return err
	}
	if err := l.checkLen(src); err != nil {
		return err
	}

	if l.r == l.wordBits {
		// Registers are exactly one word wide: max is a per-word
		// comparison with no unpacking needed.
		for i := range dst {
			dst[i] = util.Max(dst[i], src[i])
		}
		return nil
	}

	for j := uint64(0); j < l.m; j++ {
		s := bitpack.Get(src, l.r, j)
		if s == 0 {
			continue
		}
		d := bitpack.Get(dst, l.r, j)
		if merged := util.Max(s, d); merged != d {
			bitpack.Set(dst, l.r, j, merged)
		}
	}
	return nil
}

func (l *Logic[T, W]) checkLen(backend []W) error {
	if uint64(len(backend)) != l.backendWords {
		return fmt.Errorf("hllpack: backend length %d, want %d: %w", len(backend), l.backendWords, ErrLengthMismatch)
	}
	return nil
}
