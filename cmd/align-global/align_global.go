// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// align-global aligns the two sequences of a fasta file end to end
// with a flat gap cost. Leading gaps are free. Input sequences are
// upper-cased before alignment.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kmckenna/skipjack"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: align-global <in.fa>")
		os.Exit(1)
	}

	s1, s2, err := skipjack.ReadPairFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read sequences: %v", err)
	}

	score, r1, r2 := skipjack.AlignGlobal(
		bytes.ToUpper(skipjack.SeqBytes(s1)),
		bytes.ToUpper(skipjack.SeqBytes(s2)),
		skipjack.GlobalScoring(),
	)
	fmt.Printf("score=%f\n", score)
	fmt.Printf("%s\n%s\n", r1, r2)
}
