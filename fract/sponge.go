package fract

import (
	"encoding/binary"
	"errors"
)

// rateBytes is the size, in bytes, of the sponge's rate (s0, s1): 128 bits.
const rateBytes = 16

// padByte is appended at the end of buffered input before the final
// absorb.
const padByte = 0x01

// Domain separation tags, XORed into the capacity lane s3 during
// finalization. They exist only so that Hash and Hash512 diverge even on
// identical input; they carry no other meaning.
const (
	tag256 = uint64(0x0000000000000100)
	tag512 = uint64(0x0000000000000200)
)

// iv is the fixed initialization vector: the first 256 bits of the binary
// fractional expansion of sqrt(2), split into four 64-bit words. Every
// fresh Hasher starts from exactly these four words.
var iv = lattice{
	0x6a09e667f3bcc908,
	0xb2fb1366ea957d3e,
	0x3adec17512775099,
	0xda2f590b0667322a,
}

// ErrHasherConsumed is the panic value raised when Update, Finalize, or
// Finalize512 is called on a Hasher that has already been finalized. A
// finalized Hasher is consumed by construction; reuse is a programming
// error, not a representable core failure.
var ErrHasherConsumed = errors.New("fract: hasher already finalized")

// Hasher is a FRACT-256 sponge in progress. The zero value is not usable;
// construct one with New. A Hasher is consumed by Finalize or
// Finalize512 and must not be reused afterward.
type Hasher struct {
	state    lattice
	buf      [rateBytes]byte
	n        int // valid bytes in buf, always < rateBytes between calls
	consumed bool
}

// New returns a fresh Hasher: state set to the IV, buffer empty.
func New() *Hasher {
	return &Hasher{state: iv}
}

// Update absorbs data into the hasher. It may be called any number of
// times before Finalize/Finalize512; splitting one call into several
// smaller ones over the same bytes produces an identical final digest.
func (h *Hasher) Update(data []byte) *Hasher {
	if h.consumed {
		panic(ErrHasherConsumed)
	}
	for len(data) > 0 {
		k := copy(h.buf[h.n:], data)
		h.n += k
		data = data[k:]
		if h.n == rateBytes {
			h.absorbBlock()
		}
	}
	return h
}

// absorbBlock XORs the full 16-byte buffer into the rate as two
// little-endian 64-bit words, runs Φ, and empties the buffer.
func (h *Hasher) absorbBlock() {
	h.state[0] ^= binary.LittleEndian.Uint64(h.buf[0:8])
	h.state[1] ^= binary.LittleEndian.Uint64(h.buf[8:16])
	h.state.permute()
	h.n = 0
}

// padAndAbsorb appends the 0x01 pad byte after the buffered bytes, zero
// fills the rest of the block, and absorbs it exactly as a full update
// block would be absorbed.
func (h *Hasher) padAndAbsorb() {
	h.buf[h.n] = padByte
	for i := h.n + 1; i < rateBytes; i++ {
		h.buf[i] = 0
	}
	h.n = rateBytes
	h.absorbBlock()
}

// Finalize consumes the hasher and returns the 32-byte FRACT-256 digest.
func (h *Hasher) Finalize() [32]byte {
	if h.consumed {
		panic(ErrHasherConsumed)
	}
	h.consumed = true

	h.padAndAbsorb()
	h.state[3] ^= tag256
	h.state.permute()

	var out [32]byte
	putState(out[:], h.state)
	return out
}

// Finalize512 consumes the hasher and returns the 64-byte FRACT-512
// digest.
func (h *Hasher) Finalize512() [64]byte {
	if h.consumed {
		panic(ErrHasherConsumed)
	}
	h.consumed = true

	h.padAndAbsorb()
	h.state[3] ^= tag512
	h.state.permute()

	var out [64]byte
	putState(out[:32], h.state)

	h.state.permute()
	putState(out[32:], h.state)
	return out
}

// putState serializes all four lattice words into dst, little-endian,
// in lane order. len(dst) must be 32.
func putState(dst []byte, s lattice) {
	binary.LittleEndian.PutUint64(dst[0:8], s[0])
	binary.LittleEndian.PutUint64(dst[8:16], s[1])
	binary.LittleEndian.PutUint64(dst[16:24], s[2])
	binary.LittleEndian.PutUint64(dst[24:32], s[3])
}
