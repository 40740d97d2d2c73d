package hash32

import (
	"encoding/binary"
	"math/bits"
)

// Per-shape serialization rules. Each function feeds the canonical byte
// representation of one value shape into a Hasher. Equal values always
// produce identical byte streams; distinct values are not guaranteed
// distinct digests.
//
// Integers use the host's native byte order (see the package documentation
// for the portability caveat). The widths are enumerated explicitly rather
// than reinterpreting memory.

// HashUint8 writes v as a single byte.
func HashUint8(state Hasher, v uint8) {
	state.Write([]byte{v})
}

// HashUint16 writes v as 2 bytes in native order.
func HashUint16(state Hasher, v uint16) {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	state.Write(b[:])
}

// HashUint32 writes v as 4 bytes in native order.
func HashUint32(state Hasher, v uint32) {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	state.Write(b[:])
}

// HashUint64 writes v as 8 bytes in native order. Note that v is input
// data, not hash state; the 32-bit arithmetic contract binds the engine,
// not the values fed to it.
func HashUint64(state Hasher, v uint64) {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	state.Write(b[:])
}

// HashUint writes v at the platform's word width (4 bytes on 32-bit
// targets, 8 on 64-bit).
func HashUint(state Hasher, v uint) {
	if bits.UintSize == 32 {
		HashUint32(state, uint32(v))
	} else {
		HashUint64(state, uint64(v))
	}
}

// HashInt8 writes v as a single byte.
func HashInt8(state Hasher, v int8) {
	HashUint8(state, uint8(v))
}

// HashInt16 writes v as 2 bytes in native order.
func HashInt16(state Hasher, v int16) {
	HashUint16(state, uint16(v))
}

// HashInt32 writes v as 4 bytes in native order.
func HashInt32(state Hasher, v int32) {
	HashUint32(state, uint32(v))
}

// HashInt64 writes v as 8 bytes in native order.
func HashInt64(state Hasher, v int64) {
	HashUint64(state, uint64(v))
}

// HashInt writes v at the platform's word width.
func HashInt(state Hasher, v int) {
	HashUint(state, uint(v))
}

// HashBool writes v as a single 0 or 1 byte.
func HashBool(state Hasher, v bool) {
	var b uint8
	if v {
		b = 1
	}
	HashUint8(state, b)
}

// HashRune writes r's Unicode scalar value as 4 bytes via the uint32 rule.
func HashRune(state Hasher, r rune) {
	HashUint32(state, uint32(r))
}

// HashString writes the raw UTF-8 bytes of s followed by a 0xFF sentinel.
// The sentinel cannot occur in valid UTF-8, so adjacent strings hashed
// back-to-back cannot collide with a differently-split concatenation:
// "ab","c" and "a","bc" produce distinct streams.
func HashString(state Hasher, s string) {
	state.Write([]byte(s))
	state.Write([]byte{0xff})
}

// HashBytes writes the length of p followed by its raw bytes. The length
// prefix distinguishes an empty slice followed by more data from a longer
// slice with the same total content.
func HashBytes(state Hasher, p []byte) {
	HashUint(state, uint(len(p)))
	state.Write(p)
}

// HashSlice writes the length of vals followed by each element in order.
// A fixed-size array hashes identically via arr[:].
func HashSlice[T Hashable](state Hasher, vals []T) {
	HashUint(state, uint(len(vals)))
	for _, v := range vals {
		v.Hash(state)
	}
}

// HashStringSlice writes the length of vals followed by each string under
// the string rule. The per-string sentinel keeps element boundaries
// unambiguous.
func HashStringSlice(state Hasher, vals []string) {
	HashUint(state, uint(len(vals)))
	for _, s := range vals {
		HashString(state, s)
	}
}

// The per-width slice functions below produce the same stream as a length
// prefix followed by the corresponding per-element function, packed into
// fewer Write calls.

// HashUint16Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashUint16Slice(state Hasher, vals []uint16) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint16(b[n:], v)
		n += 2
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashUint32Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashUint32Slice(state Hasher, vals []uint32) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint32(b[n:], v)
		n += 4
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashUint64Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashUint64Slice(state Hasher, vals []uint64) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint64(b[n:], v)
		n += 8
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashInt8Slice writes the length of vals followed by the elements as raw
// bytes.
func HashInt8Slice(state Hasher, vals []int8) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		b[n] = uint8(v)
		n++
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashInt16Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashInt16Slice(state Hasher, vals []int16) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint16(b[n:], uint16(v))
		n += 2
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashInt32Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashInt32Slice(state Hasher, vals []int32) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint32(b[n:], uint32(v))
		n += 4
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashInt64Slice writes the length of vals followed by the elements as one
// packed run of native-order bytes.
func HashInt64Slice(state Hasher, vals []int64) {
	HashUint(state, uint(len(vals)))
	var b [64]byte
	n := 0
	for _, v := range vals {
		binary.NativeEndian.PutUint64(b[n:], uint64(v))
		n += 8
		if n == len(b) {
			state.Write(b[:n])
			n = 0
		}
	}
	state.Write(b[:n])
}

// HashUintSlice writes the length of vals followed by the elements at the
// platform's word width.
func HashUintSlice(state Hasher, vals []uint) {
	HashUint(state, uint(len(vals)))
	for _, v := range vals {
		HashUint(state, v)
	}
}

// HashIntSlice writes the length of vals followed by the elements at the
// platform's word width.
func HashIntSlice(state Hasher, vals []int) {
	HashUint(state, uint(len(vals)))
	for _, v := range vals {
		HashInt(state, v)
	}
}
