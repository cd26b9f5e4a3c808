package hash

import metro "github.com/dgryski/go-metro"

// metroBuilder builds Hashers backed by dgryski/go-metro, the default
// 64-bit family. 1373 mirrors the fixed seed long used for single-hash
// register selection; WithSeed overrides it for reseeded trials.
type metroBuilder[T any] struct {
	seed uint64
}

// NewMetroBuilder returns the default HasherBuilder for item type T.
func NewMetroBuilder[T any]() HasherBuilder[T] {
	return metroBuilder[T]{seed: 1373}
}

func (b metroBuilder[T]) WithSeed(seed uint64) HasherBuilder[T] {
	return metroBuilder[T]{seed: seed}
}

func (b metroBuilder[T]) Build() Hasher[T] {
	return metroHasher[T]{seed: b.seed}
}

type metroHasher[T any] struct {
	seed uint64
}

func (h metroHasher[T]) Sum64(item T) uint64 {
	return metro.Hash64(encode(item), h.seed)
}
