// Package hash32 provides 32-bit hashing machinery: two streaming
// non-cryptographic hash functions (FNV-1a and MurmurHash3) together with a
// small framework for feeding structured values into any conforming hasher.
//
// # Why?
//
// Because 32-bit architectures are a thing (e.g. ARM Cortex-M) and you don't
// want your hashing function to pull in slow software implementations of
// 64-bit operations. Every engine in this package computes its digest using
// 32-bit (or narrower) arithmetic only; the [Hasher] contract forbids wider
// operands. This rules out naive ports of reference implementations that
// widen intermediate products to 64 bits for convenience.
//
// # Relationship to hash.Hash32
//
// The [Hasher] interface mirrors the standard library's hash.Hash32 but drops
// the io.Writer embedding: Write here cannot fail, so it returns nothing.
// Table-like consumers mint one hasher per operation through a [BuildHasher]
// factory; [BuildHasherDefault] is the zero-cost default for any engine whose
// zero value is ready to use (both engines here qualify).
//
// # Hashers
//
// Two engines are provided:
//
//   - [Fnv]: 32-bit Fowler-Noll-Vo variant 1a. One multiply-xor step per
//     byte, byte-order independent.
//   - [Murmur3]: 32-bit MurmurHash3 (x86 variant). Block-wise
//     multiply-rotate-xor mixing with a finalization avalanche; supports a
//     caller-chosen seed.
//
// Neither is cryptographically secure. Do not use them where an adversary
// controls the input and collisions matter.
//
// # Value dispatch
//
// The per-shape functions (HashUint32, HashString, HashBytes, ...) define a
// canonical byte serialization for each supported value shape. Composite
// types implement [Hashable] and feed their fields in declaration order:
//
//	type IPv4 struct{ Octets [4]byte }
//
//	func (ip IPv4) Hash(state hash32.Hasher) {
//		hash32.HashBytes(state, ip.Octets[:])
//	}
//
// Strings are written with a trailing 0xFF sentinel so adjacent fields cannot
// collide across their boundary ("ab","c" hashes differently from "a","bc").
// Slices are length-prefixed; a fixed-size array hashes identically to a
// slice of the same elements, so hash arrays by slicing (arr[:]). Pointers
// are transparent: hash the pointee.
//
// # Byte order caveat
//
// Integers are serialized in the host's native byte order. Digests of integer
// values are therefore not portable between little- and big-endian machines.
// This is deliberate: converting to a fixed order would cost per-element work
// in exactly the hash-table hot paths this package targets. Digests of raw
// bytes and strings are byte-order independent.
//
// # Concurrency
//
// A hasher instance is not safe for concurrent use. Instances are cheap;
// build one per goroutine or per operation instead of sharing.
package hash32
