// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadPair reads exactly two fasta sequences from r. Fewer or more than
// two sequences is an error.
func ReadPair(r io.Reader) (s1, s2 *linear.Seq, err error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	var seqs []*linear.Seq
	for sc.Next() {
		if len(seqs) == 2 {
			return nil, nil, ErrSequenceCount
		}
		seqs = append(seqs, sc.Seq().(*linear.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, nil, err
	}
	if len(seqs) != 2 {
		return nil, nil, ErrSequenceCount
	}
	return seqs[0], seqs[1], nil
}

// ReadPairFile reads exactly two fasta sequences from the named file.
func ReadPairFile(name string) (s1, s2 *linear.Seq, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadPair(f)
}

// Junctions parses the junction positions carried on a sequence's
// description line as a '|'-delimited list of integers. A missing
// description is an error since jumps were requested.
func Junctions(s *linear.Seq) (*JunctionSet, error) {
	if s.Desc == "" {
		return nil, ErrNoJunctions
	}
	set := &JunctionSet{}
	for _, f := range strings.Split(s.Desc, "|") {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("skipjack: bad junction position %q: %v", f, err)
		}
		set.Add(p)
	}
	return set, nil
}

// SeqBytes returns the raw symbols of s.
func SeqBytes(s *linear.Seq) []byte {
	return []byte(s.Seq.String())
}
