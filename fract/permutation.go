package fract

// rounds is R, the number of lattice steps applied per invocation of Φ.
const rounds = 8

// lattice is the 4-word, 256-bit permutation state (s0, s1, s2, s3). The
// first two words are the rate; the last two are the capacity.
type lattice [4]uint64

// step applies one coupled lattice update. All four lanes read only the
// old values of s0..s3 — no lane observes another lane's new value within
// a step — so the four updates are mutually independent and map cleanly
// onto four SIMD lanes.
func (s lattice) step() lattice {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]

	return lattice{
		f(s0) ^ (s1 >> 31) ^ (s3 << 17),
		f(s1) ^ (s2 >> 23) ^ (s0 << 11),
		f(s2) ^ (s3 >> 47) ^ (s1 << 29),
		f(s3) ^ (s0 >> 13) ^ (s2 << 5),
	}
}

// permute applies Φ: rounds lattice steps, in place. Φ is a pure function
// of s — it reads and writes nothing else.
func (s *lattice) permute() {
	next := *s
	for i := 0; i < rounds; i++ {
		next = next.step()
	}
	*s = next
}
