// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// align-fit aligns the first sequence of a fasta file in full against a
// substring of the second; the prefix and suffix of the second sequence
// are free. With jumps enabled the alignment may additionally skip
// across regions of the second sequence at the junction positions
// carried on its description line as a '|'-delimited list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kmckenna/skipjack"
)

var (
	match       = flag.Float64("match", 1, "score for a match")
	mismatch    = flag.Float64("mismatch", -2, "mismatch penalty")
	gapOpen     = flag.Float64("gap_open", -5, "gap open penalty")
	gapExtend   = flag.Float64("gap_extend", -1, "gap extension penalty")
	jumpPenalty = flag.Float64("jump_penalty", -10, "penalty for entering the jump state")
	jumps       = flag.Bool("enable_jumps", false, "allow jumps across junction positions")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: align-fit [options] <in.fa>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s1, s2, err := skipjack.ReadPairFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read sequences: %v", err)
	}

	sc := skipjack.DefaultScoring()
	sc.Match = *match
	sc.Mismatch = *mismatch
	sc.GapOpen = *gapOpen
	sc.GapExtend = *gapExtend
	sc.JumpPenalty = *jumpPenalty
	sc.Jumps = *jumps
	if *jumps {
		sc.Sites, err = skipjack.Junctions(s2)
		if err != nil {
			log.Fatalf("failed to read junction positions: %v", err)
		}
	}

	score, r1, r2, err := skipjack.AlignFit(skipjack.SeqBytes(s1), skipjack.SeqBytes(s2), sc)
	if err != nil {
		log.Fatalf("failed to align: %v", err)
	}
	fmt.Printf("score=%f\n", score)
	fmt.Printf("%s\n%s\n", r1, r2)
}
