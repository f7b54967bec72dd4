package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"time"

	"github.com/golang/glog"
	"golang.org/x/crypto/sha3"

	"github.com/morphym/fract/fract"
)

// runBench times Hash and Hash512 over synthetic input and prints
// throughput in MB/s, alongside golang.org/x/crypto/sha3's SHA3-256
// throughput on the same buffer as a reference point. FRACT-256 makes no
// interoperability claim against SHA-3 -- this comparison exists purely
// to give the printed numbers a familiar scale.
func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	size := fs.Int("size", 1<<20, "size in bytes of the synthetic input buffer")
	iters := fs.Int("iters", 100, "number of hashing iterations")
	fs.Parse(args)

	data := make([]byte, *size)
	if _, err := rand.Read(data); err != nil {
		glog.Errorf("generating bench input: %s", err)
		return
	}

	glog.Infof("bench: %d bytes x %d iterations", *size, *iters)

	report("FRACT-256", *size, *iters, func() {
		fract.Hash(data)
	})
	report("FRACT-512", *size, *iters, func() {
		fract.Hash512(data)
	})
	report("SHA3-256 (reference)", *size, *iters, func() {
		sha3.Sum256(data)
	})
}

func report(label string, size, iters int, step func()) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		step()
	}
	elapsed := time.Since(start)

	totalBytes := float64(size) * float64(iters)
	mbPerSec := totalBytes / elapsed.Seconds() / (1 << 20)
	fmt.Printf("%-22s %10.2f MB/s (%d x %d bytes in %s)\n", label, mbPerSec, iters, size, elapsed)
}
