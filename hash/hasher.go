// Package hash provides the seedable 64-bit hasher abstraction that hll
// logic objects use to map elements to register index and rank bits.
//
// A HasherBuilder is cloneable and deterministic given its seed: two
// builders constructed with the same seed hash every item identically,
// which is what lets the statistical acceptance tests reseed per trial
// without sharing mutable state.
package hash

import "encoding/binary"

// Hasher maps values of type T to a 64-bit digest.
type Hasher[T any] interface {
	Sum64(item T) uint64
}

// HasherBuilder constructs seeded Hashers for a given item type.
type HasherBuilder[T any] interface {
	WithSeed(seed uint64) HasherBuilder[T]
	Build() Hasher[T]
}

// Bytes is implemented by item types that know how to present themselves
// as a byte slice for hashing. []byte and string need not implement it,
// since encode below handles them directly; other types implement it
// explicitly.
type Bytes interface {
	HashBytes() []byte
}

// encode produces the byte representation hashed for built-in item
// kinds. Custom item types should implement Bytes directly instead of
// relying on this fallback.
func encode(item any) []byte {
	switch v := item.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case Bytes:
		return v.HashBytes()
	case int:
		return encodeInt64(int64(v))
	case int64:
		return encodeInt64(v)
	case uint64:
		return encodeUint64(v)
	case uint32:
		return encodeUint64(uint64(v))
	default:
		panic("hllpack: unsupported hash item type; implement hash.Bytes")
	}
}

func encodeInt64(v int64) []byte {
	return encodeUint64(uint64(v))
}

func encodeUint64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}
