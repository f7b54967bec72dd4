// fractsum computes FRACT-256 or FRACT-512 digests of files or stdin.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/morphym/fract/fract"
)

const version = "0.1.0"

var (
	use512      bool
	showVersion bool
)

func init() {
	flag.BoolVar(&use512, "512", false, "compute the 512-bit digest instead of the default 256-bit one")
	flag.BoolVar(&showVersion, "version", false, "print the fractsum version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("fractsum %s\n", version)
		return
	}

	if flag.NArg() > 0 && flag.Arg(0) == "bench" {
		runBench(flag.Args()[1:])
		return
	}

	exit := 0
	if flag.NArg() == 0 {
		if err := sumReader(os.Stdin, "-"); err != nil {
			glog.Errorf("stdin: %s", err)
			exit = 1
		}
	} else {
		for _, name := range flag.Args() {
			if err := sumFile(name); err != nil {
				glog.Errorf("%s: %s", name, err)
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

func sumFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return sumReader(f, name)
}

func sumReader(r io.Reader, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var digest string
	if use512 {
		sum := fract.Hash512(data)
		digest = hex.EncodeToString(sum[:])
	} else {
		sum := fract.Hash(data)
		digest = hex.EncodeToString(sum[:])
	}
	fmt.Printf("%s  %s\n", digest, name)
	return nil
}
