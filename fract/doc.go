// Package fract implements FRACT-256, a sponge-based hash function whose
// permutation is a coupled hyperchaotic lattice of four 64-bit words.
//
// FRACT-256 produces 256-bit or 512-bit digests from arbitrary byte input.
// It is built from three layers:
//
//	f   a scalar chaotic map on one 64-bit word (hybrid logistic/tent)
//	Φ   a 4-lane lattice permutation, f applied per-lane plus fixed
//	    shift/XOR couplings across lanes, iterated 8 times
//	    sponge   the absorb/squeeze construction around Φ
//
// The sponge
//
// FRACT-256's state is 256 bits, split into a 128-bit rate and a 128-bit
// capacity:
//
//	up to 16 bytes xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	========================--------------------------------------
//	|  rate (s0, s1)       |  capacity (s2, s3)                  |
//	========================--------------------------------------
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	:::::::::::::::::::::::::::: Φ (8 lattice steps) :::::::::::::
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	========================--------------------------------------
//	|  rate (s0, s1)       |  capacity (s2, s3)                  |
//	========================--------------------------------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\
//	all 32 bytes (s0..s3) copied out (per squeeze step)
//
// The capacity is never directly XORed with input, and it reaches the
// output only after passing through Φ: each squeeze step serializes all
// four words, capacity included. Keeping input away from the capacity is
// what gives the 256-bit state a claimed 128-bit security level against
// both digest modes.
//
// Determinism
//
// All arithmetic is wrapping (mod 2^64), all shifts are logical and
// fixed-count, and all word/byte conversions are little-endian. There is
// no floating point, no lookup table, and no data-dependent branch
// anywhere in the core: output depends only on input bytes, never on the
// machine or the platform running it.
package fract
