package hash32

const (
	fnvBasis uint32 = 2166136261
	fnvPrime uint32 = 16777619
)

// Fnv implements the 32-bit FNV-1a hash.
//
// FNV-1a processes one byte at a time, so its digests are independent of the
// host byte order. The zero value is ready to use.
type Fnv struct {
	// Stored relative to the offset basis so that the zero value starts
	// at the basis without a constructor.
	state uint32
}

var _ Hasher = (*Fnv)(nil)

// NewFnv returns a new FNV-1a hasher initialized to the offset basis.
func NewFnv() *Fnv {
	return &Fnv{}
}

// Write absorbs p into the running hash.
func (f *Fnv) Write(p []byte) {
	h := f.state ^ fnvBasis
	for _, b := range p {
		h = (h ^ uint32(b)) * fnvPrime
	}
	f.state = h ^ fnvBasis
}

// Sum32 returns the current digest. It does not modify the hasher; writing
// more bytes afterwards continues the same stream.
func (f *Fnv) Sum32() uint32 {
	return f.state ^ fnvBasis
}

// Reset restores the hasher to its initial state.
func (f *Fnv) Reset() {
	f.state = 0
}

// FnvSum32 returns the FNV-1a digest of p in one shot.
func FnvSum32(p []byte) uint32 {
	h := fnvBasis
	for _, b := range p {
		h = (h ^ uint32(b)) * fnvPrime
	}
	return h
}
