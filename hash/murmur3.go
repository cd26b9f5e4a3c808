package hash

import "github.com/spaolacci/murmur3"

// murmur3Builder builds Hashers backed by spaolacci/murmur3, offered as
// an alternate family for callers who want to diversify away from the
// metro default (for instance when composing several independently
// seeded sketches over the same stream).
type murmur3Builder[T any] struct {
	seed uint64
}

// NewMurmur3Builder returns a murmur3-backed HasherBuilder for T.
func NewMurmur3Builder[T any]() HasherBuilder[T] {
	return murmur3Builder[T]{}
}

func (b murmur3Builder[T]) WithSeed(seed uint64) HasherBuilder[T] {
	return murmur3Builder[T]{seed: seed}
}

func (b murmur3Builder[T]) Build() Hasher[T] {
	return murmur3Hasher[T]{seed: b.seed}
}

type murmur3Hasher[T any] struct {
	seed uint64
}

func (h murmur3Hasher[T]) Sum64(item T) uint64 {
	hasher := murmur3.New64WithSeed(uint32(h.seed))
	hasher.Write(encode(item))
	return hasher.Sum64()
}
