// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// align-local finds the best local alignment of the two sequences of a
// fasta file with an affine gap penalty.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kmckenna/skipjack"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: align-local <in.fa>")
		os.Exit(1)
	}

	s1, s2, err := skipjack.ReadPairFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read sequences: %v", err)
	}

	score, r1, r2 := skipjack.AlignLocalAffine(skipjack.SeqBytes(s1), skipjack.SeqBytes(s2), skipjack.AffineScoring())
	fmt.Printf("score=%f\n", score)
	fmt.Printf("%s\n%s\n", r1, r2)
}
