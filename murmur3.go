package hash32

import (
	"encoding/binary"
	"math/bits"
)

const (
	murmurC1 uint32 = 0xcc9e2d51
	murmurC2 uint32 = 0x1b873593
	murmurN  uint32 = 0xe6546b64
)

// Murmur3 implements the 32-bit MurmurHash3 (x86 variant).
//
// Input is consumed in 4-byte little-endian blocks; up to 3 trailing bytes
// are buffered across Write calls and folded in at Sum32 time. Unlike common
// ports of the reference implementation, no step widens an operand beyond
// 32 bits.
//
// The zero value is a ready-to-use hasher with seed 0.
type Murmur3 struct {
	seed   uint32
	state  uint32
	length uint32
	tail   [3]byte
	ntail  uint8
}

var _ Hasher = (*Murmur3)(nil)

// NewMurmur3 returns a new MurmurHash3 hasher with seed 0.
func NewMurmur3() *Murmur3 {
	return &Murmur3{}
}

// NewMurmur3WithSeed returns a new MurmurHash3 hasher with the given seed.
// Reset restores the hasher to this seed.
func NewMurmur3WithSeed(seed uint32) *Murmur3 {
	return &Murmur3{seed: seed, state: seed}
}

// Write absorbs p into the running hash. Bytes that do not fill a complete
// 4-byte block are buffered for the next Write or for Sum32.
func (m *Murmur3) Write(p []byte) {
	m.length += uint32(len(p))

	if m.ntail > 0 {
		need := 4 - int(m.ntail)
		if len(p) < need {
			m.ntail += uint8(copy(m.tail[m.ntail:], p))
			return
		}
		var block [4]byte
		n := copy(block[:], m.tail[:m.ntail])
		copy(block[n:], p[:need])
		p = p[need:]
		m.ntail = 0
		m.state = murmurMix(m.state, binary.LittleEndian.Uint32(block[:]))
	}

	for len(p) >= 4 {
		m.state = murmurMix(m.state, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}

	m.ntail = uint8(copy(m.tail[:], p))
}

// Sum32 returns the current digest. Finalization runs on a copy of the
// state, so Sum32 is idempotent and writing may continue afterwards.
func (m *Murmur3) Sum32() uint32 {
	h := m.state

	if m.ntail > 0 {
		var k uint32
		switch m.ntail {
		case 3:
			k ^= uint32(m.tail[2]) << 16
			fallthrough
		case 2:
			k ^= uint32(m.tail[1]) << 8
			fallthrough
		case 1:
			k ^= uint32(m.tail[0])
		}
		h ^= murmurScramble(k)
	}

	h ^= m.length
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}

// Reset restores the hasher to its construction seed.
func (m *Murmur3) Reset() {
	m.state = m.seed
	m.length = 0
	m.ntail = 0
}

// Murmur3Sum32 returns the MurmurHash3 digest of p with the given seed in
// one shot.
func Murmur3Sum32(p []byte, seed uint32) uint32 {
	m := Murmur3{seed: seed, state: seed}
	m.Write(p)
	return m.Sum32()
}

func murmurScramble(k uint32) uint32 {
	k *= murmurC1
	k = bits.RotateLeft32(k, 15)
	return k * murmurC2
}

func murmurMix(h, k uint32) uint32 {
	h ^= murmurScramble(k)
	h = bits.RotateLeft32(h, 13)
	return h*5 + murmurN
}
