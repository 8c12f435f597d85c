// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

// Scoring holds the alignment parameters used by the alignment
// functions. Match is positive and Mismatch, GapOpen, GapExtend and
// JumpPenalty are non-positive. JumpPenalty, Jumps and Sites are only
// meaningful to AlignFit.
type Scoring struct {
	Match    float64
	Mismatch float64

	// GapOpen carries the flat per-symbol gap cost in AlignGlobal;
	// the affine modes charge GapOpen once per gap run.
	GapOpen   float64
	GapExtend float64

	JumpPenalty float64
	Jumps       bool
	Sites       *JunctionSet
}

// DefaultScoring returns the parameters used by the fitting alignment
// when the caller supplies none.
func DefaultScoring() Scoring {
	return Scoring{
		Match:       1,
		Mismatch:    -2,
		GapOpen:     -5,
		GapExtend:   -1,
		JumpPenalty: -10,
	}
}

// GlobalScoring returns the fixed constants of the flat-gap global mode.
func GlobalScoring() Scoring {
	return Scoring{Match: 2, Mismatch: -0.5, GapOpen: -1}
}

// AffineScoring returns the fixed constants shared by the global and
// local affine modes.
func AffineScoring() Scoring {
	return Scoring{Match: 2, Mismatch: -0.5, GapOpen: -3, GapExtend: -1}
}

// substitution returns the score for aligning a with b.
func (sc Scoring) substitution(a, b byte) float64 {
	if a == b {
		return sc.Match
	}
	return sc.Mismatch
}
