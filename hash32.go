package hash32

// Hasher is a streaming 32-bit hash accumulator.
//
// The digest is a pure function of the concatenation of all bytes ever
// written, in order: splitting input across Write calls never changes the
// result.
//
// Contract: implementations must not perform any arithmetic or bitwise
// operation on an operand wider than 32 bits while computing the hash. The
// type system cannot enforce this; violations defeat the purpose of the
// package on targets without native 64-bit arithmetic.
type Hasher interface {
	// Write appends p to the hashed input stream. It never fails and
	// accepts any length, including zero.
	Write(p []byte)

	// Sum32 returns the digest of all bytes written so far. It is
	// idempotent: calling it twice without an intervening Write returns
	// the same value.
	Sum32() uint32
}

// BuildHasher constructs fresh, independent hasher instances. Table-like
// consumers use it to mint one hasher per operation instead of sharing
// mutable state.
type BuildHasher[H Hasher] interface {
	BuildHasher() H
}

// BuildHasherDefault is a zero-sized BuildHasher that produces
// default-initialized hashers of type *H:
//
//	var factory hash32.BuildHasherDefault[hash32.Fnv, *hash32.Fnv]
//	h := factory.BuildHasher()
//
// H must be usable as its zero value; Fnv and Murmur3 both are.
type BuildHasherDefault[H any, PH interface {
	*H
	Hasher
}] struct{}

// BuildHasher returns a new zero-valued hasher.
func (BuildHasherDefault[H, PH]) BuildHasher() PH {
	return PH(new(H))
}

// Hashable is implemented by types that can feed themselves into a Hasher.
//
// Implementations must be deterministic: equal values must write identical
// byte sequences. Composite types should hash their fields in declaration
// order using the per-shape functions in this package, so that downstream
// code generators can produce field-by-field implementations mechanically.
type Hashable interface {
	Hash(state Hasher)
}
