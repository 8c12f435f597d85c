// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// edit-dist computes the edit distance between the two sequences of a
// fasta file.
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
		fmt.Fprintln(os.Stderr, "usage: edit-dist <in.fa>")
		os.Exit(1)
	}

	s1, s2, err := skipjack.ReadPairFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read sequences: %v", err)
	}

	fmt.Printf("edit_distance=%d\n", skipjack.EditDistance(skipjack.SeqBytes(s1), skipjack.SeqBytes(s2)))
}
