package hash32

import (
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// fnvDigest runs fn against a fresh FNV hasher and returns the digest.
func fnvDigest(fn func(Hasher)) uint32 {
	h := NewFnv()
	fn(h)
	return h.Sum32()
}

func TestHashString_SeparatesAdjacentFields(t *testing.T) {
	abThenC := fnvDigest(func(h Hasher) {
		HashString(h, "ab")
		HashString(h, "c")
	})
	aThenBC := fnvDigest(func(h Hasher) {
		HashString(h, "a")
		HashString(h, "bc")
	})

	assert.NotEqual(t, abThenC, aThenBC)
}

func TestHashStringSlice_Framing(t *testing.T) {
	assert.NotEqual(t,
		fnvDigest(func(h Hasher) { HashStringSlice(h, []string{"ab", "c"}) }),
		fnvDigest(func(h Hasher) { HashStringSlice(h, []string{"a", "bc"}) }),
	)
}

func TestHashBytes_LengthPrefix(t *testing.T) {
	pairs := [][2][]byte{
		{nil, []byte("ab")},
		{[]byte("a"), []byte("b")},
		{[]byte("ab"), nil},
	}

	seen := make(map[uint32][2][]byte)
	for _, pair := range pairs {
		d := fnvDigest(func(h Hasher) {
			HashBytes(h, pair[0])
			HashBytes(h, pair[1])
		})
		prev, dup := seen[d]
		assert.False(t, dup, "split %q|%q collides with %q|%q", pair[0], pair[1], prev[0], prev[1])
		seen[d] = pair
	}
}

func TestHashUint32_NativeOrder(t *testing.T) {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], 0xdeadbeef)

	assert.Equal(t,
		fnvDigest(func(h Hasher) { h.Write(b[:]) }),
		fnvDigest(func(h Hasher) { HashUint32(h, 0xdeadbeef) }),
	)
}

func TestHashUint_PlatformWidth(t *testing.T) {
	want := fnvDigest(func(h Hasher) {
		if bits.UintSize == 32 {
			HashUint32(h, 12345)
		} else {
			HashUint64(h, 12345)
		}
	})

	assert.Equal(t, want, fnvDigest(func(h Hasher) { HashUint(h, 12345) }))
}

func TestHashBool(t *testing.T) {
	assert.Equal(t,
		fnvDigest(func(h Hasher) { h.Write([]byte{1}) }),
		fnvDigest(func(h Hasher) { HashBool(h, true) }),
	)
	assert.Equal(t,
		fnvDigest(func(h Hasher) { h.Write([]byte{0}) }),
		fnvDigest(func(h Hasher) { HashBool(h, false) }),
	)
}

func TestHashRune(t *testing.T) {
	assert.Equal(t,
		fnvDigest(func(h Hasher) { HashUint32(h, 0x1F600) }),
		fnvDigest(func(h Hasher) { HashRune(h, '😀') }),
	)
}

// point is a composite test type hashing its fields in declaration order.
type point struct{ x, y int32 }

func (p point) Hash(state Hasher) {
	HashInt32(state, p.x)
	HashInt32(state, p.y)
}

func TestHashSlice_Generic(t *testing.T) {
	pts := []point{{1, 2}, {3, 4}}

	want := fnvDigest(func(h Hasher) {
		HashUint(h, 2)
		HashInt32(h, 1)
		HashInt32(h, 2)
		HashInt32(h, 3)
		HashInt32(h, 4)
	})

	assert.Equal(t, want, fnvDigest(func(h Hasher) { HashSlice(h, pts) }))
}

func TestHashSlice_ArrayEquivalence(t *testing.T) {
	arr := [4]uint32{10, 20, 30, 40}
	slice := []uint32{10, 20, 30, 40}

	assert.Equal(t,
		fnvDigest(func(h Hasher) { HashUint32Slice(h, slice) }),
		fnvDigest(func(h Hasher) { HashUint32Slice(h, arr[:]) }),
	)

	parr := [2]point{{1, 2}, {3, 4}}
	pslice := []point{{1, 2}, {3, 4}}

	assert.Equal(t,
		fnvDigest(func(h Hasher) { HashSlice(h, pslice) }),
		fnvDigest(func(h Hasher) { HashSlice(h, parr[:]) }),
	)
}

// Packed slice functions must be byte-for-byte equivalent to a length prefix
// followed by the per-element rule. Lengths above 32 exercise the staging
// buffer flush in the packed paths.
func TestPackedSlices_MatchElementwise(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u32s := rapid.SliceOfN(rapid.Uint32(), 0, 100).Draw(t, "u32s")
		n := len(u32s)

		u16s := make([]uint16, n)
		u64s := make([]uint64, n)
		i32s := make([]int32, n)
		for i, v := range u32s {
			u16s[i] = uint16(v)
			u64s[i] = uint64(v)
			i32s[i] = int32(v)
		}

		assert.Equal(t,
			fnvDigest(func(h Hasher) {
				HashUint(h, uint(n))
				for _, v := range u32s {
					HashUint32(h, v)
				}
			}),
			fnvDigest(func(h Hasher) { HashUint32Slice(h, u32s) }),
		)
		assert.Equal(t,
			fnvDigest(func(h Hasher) {
				HashUint(h, uint(n))
				for _, v := range u16s {
					HashUint16(h, v)
				}
			}),
			fnvDigest(func(h Hasher) { HashUint16Slice(h, u16s) }),
		)
		assert.Equal(t,
			fnvDigest(func(h Hasher) {
				HashUint(h, uint(n))
				for _, v := range u64s {
					HashUint64(h, v)
				}
			}),
			fnvDigest(func(h Hasher) { HashUint64Slice(h, u64s) }),
		)
		assert.Equal(t,
			fnvDigest(func(h Hasher) {
				HashUint(h, uint(n))
				for _, v := range i32s {
					HashInt32(h, v)
				}
			}),
			fnvDigest(func(h Hasher) { HashInt32Slice(h, i32s) }),
		)
	})
}

func TestHashInt8Slice_MatchesElementwise(t *testing.T) {
	vals := make([]int8, 100)
	for i := range vals {
		vals[i] = int8(i - 50)
	}

	want := fnvDigest(func(h Hasher) {
		HashUint(h, uint(len(vals)))
		for _, v := range vals {
			HashInt8(h, v)
		}
	})

	assert.Equal(t, want, fnvDigest(func(h Hasher) { HashInt8Slice(h, vals) }))
}

func TestHashIntSlice_MatchesElementwise(t *testing.T) {
	vals := []int{-1, 0, 1, 1 << 20}

	want := fnvDigest(func(h Hasher) {
		HashUint(h, uint(len(vals)))
		for _, v := range vals {
			HashInt(h, v)
		}
	})

	assert.Equal(t, want, fnvDigest(func(h Hasher) { HashIntSlice(h, vals) }))

	uvals := []uint{0, 1, 1 << 30}
	uwant := fnvDigest(func(h Hasher) {
		HashUint(h, uint(len(uvals)))
		for _, v := range uvals {
			HashUint(h, v)
		}
	})

	assert.Equal(t, uwant, fnvDigest(func(h Hasher) { HashUintSlice(h, uvals) }))
}

// Both engines must see the same byte stream from the dispatch layer, so a
// value hashed through Murmur3 is deterministic as well.
func TestDispatch_EngineAgnostic(t *testing.T) {
	digest := func() uint32 {
		h := NewMurmur3()
		HashString(h, "engine")
		HashUint32(h, 7)
		HashBool(h, true)
		return h.Sum32()
	}

	assert.Equal(t, digest(), digest())
}
