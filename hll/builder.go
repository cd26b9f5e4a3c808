package hll

import (
	"fmt"

	"github.com/finlakes/hllpack/hash"
	"github.com/finlakes/hllpack/internal/bitpack"
)

// Builder accumulates parameters for a Logic[T, W] before Build
// validates and freezes them. The zero value is not usable; start from
// NewBuilder.
type Builder[T any] struct {
	log2m            uint64
	r                uint64
	expectedDistinct uint64
	hasherBuilder    hash.HasherBuilder[T]
}

// NewBuilder returns a Builder with the library defaults: log2m=4,
// r=6, and the metro-backed hasher family.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		log2m:         4,
		r:             6,
		hasherBuilder: hash.NewMetroBuilder[T](),
	}
}

// Log2NumReg sets p such that the logic will hold 1<<p registers.
func (b *Builder[T]) Log2NumReg(p uint64) *Builder[T] {
	b.log2m = p
	return b
}

// RegisterWidth sets r, the bit width of each register.
func (b *Builder[T]) RegisterWidth(r uint64) *Builder[T] {
	b.r = r
	return b
}

// ExpectedDistinct records an expected cardinality. It does not affect
// layout today; it is accepted for future sizing heuristics.
func (b *Builder[T]) ExpectedDistinct(n uint64) *Builder[T] {
	b.expectedDistinct = n
	return b
}

// WithHasherBuilder overrides the default metro-backed hasher family.
func (b *Builder[T]) WithHasherBuilder(hb hash.HasherBuilder[T]) *Builder[T] {
	b.hasherBuilder = hb
	return b
}

// Build validates the accumulated parameters against word type W and
// freezes a Logic. Go methods cannot introduce their own type
// parameters, so the word type is supplied here rather than on Builder
// itself.
func Build[T any, W bitpack.Word](b *Builder[T]) (*Logic[T, W], error) {
	if b.log2m < 4 || b.log2m > 30 {
		return nil, fmt.Errorf("hllpack: log2m %d outside [4,30]: %w", b.log2m, ErrInvalidParams)
	}

	wordBits := bitpack.WordBits[W]()
	if b.r == 0 || b.r > wordBits {
		return nil, fmt.Errorf("hllpack: register width %d incompatible with %d-bit word: %w", b.r, wordBits, ErrInvalidParams)
	}

	q := 64 - b.log2m
	var maxRank uint64
	if b.r < 64 {
		maxRank = uint64(1)<<b.r - 1
	} else {
		maxRank = ^uint64(0)
	}
	if maxRank < q+1 {
		return nil, fmt.Errorf("hllpack: register width %d cannot represent rank domain q+1=%d: %w", b.r, q+1, ErrInvalidParams)
	}

	m := uint64(1) << b.log2m
	hb := b.hasherBuilder
	if hb == nil {
		hb = hash.NewMetroBuilder[T]()
	}

	return &Logic[T, W]{
		log2m:        b.log2m,
		m:            m,
		r:            b.r,
		q:            q,
		wordBits:     wordBits,
		backendWords: bitpack.BackendWords[W](m, b.r),
		alpha:        alphaFor(m),
		hasher:       hb.Build(),
	}, nil
}
