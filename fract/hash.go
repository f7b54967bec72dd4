package fract

// Hash returns the 32-byte FRACT-256 digest of data. It is equivalent to
// New().Update(data).Finalize(), provided for the common one-shot case.
func Hash(data []byte) [32]byte {
	return New().Update(data).Finalize()
}

// Hash512 returns the 64-byte FRACT-512 digest of data. It is equivalent
// to New().Update(data).Finalize512().
func Hash512(data []byte) [64]byte {
	return New().Update(data).Finalize512()
}
