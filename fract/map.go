package fract

// half is the boundary H = 2^63 between the logistic and tent branches of f.
const half = uint64(1) << 63

// f is the hybrid logistic-tent chaotic map on a 64-bit word.
//
// On the continuous unit interval the logistic map is 4x(1-x); identifying
// 1 with 2^64 under wrapping arithmetic gives 1-x ≡ -x (mod 2^64), so the
// lower branch (x < H) computes y = 4*x*(-x). The upper branch (x >= H) is
// the tent map reflected into the upper half: y = 4*(-x)*(x-H).
//
// Both branches are evaluated unconditionally and selected by an
// arithmetic mask derived from the sign bit of x, so which branch "runs"
// never depends on a data-dependent jump: f is pure and constant-time.
func f(x uint64) uint64 {
	negX := -x // wraps: (0 - x) mod 2^64

	lower := x * negX          // branch x < H: x * (-x)
	upper := negX * (x - half) // branch x >= H: (-x) * (x - H)

	// mask is all-ones when the high bit of x is set (x >= H), all-zeros
	// otherwise. This selects upper when x >= H and lower when x < H
	// without branching on x.
	mask := uint64(int64(x) >> 63)
	t := (lower &^ mask) | (upper & mask)

	return t << 2
}
