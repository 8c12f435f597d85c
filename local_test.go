// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestAlignLocalAffine(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 string
		score  float64
		r1, r2 string
	}{
		{
			name: "repeat region",
			s1:   "ACACACTA", s2: "AGCACACA",
			score: 10,
			r1:    "ACACA", r2: "ACACA",
		},
		{
			name: "shared core",
			s1:   "ACGTTTTTGCA", s2: "ACGGCA",
			score: 6,
			r1:    "ACG", r2: "ACG",
		},
		{
			name: "mismatch start",
			s1:   "TTTACGTTT", s2: "GGACGGG",
			score: 6,
			r1:    "TACG", r2: "GACG",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, r1, r2 := AlignLocalAffine([]byte(tt.s1), []byte(tt.s2), AffineScoring())
			assert.True(t, scalar.EqualWithinAbs(score, tt.score, 1e-12), "score = %v, want %v", score, tt.score)
			assert.Equal(t, tt.r1, string(r1))
			assert.Equal(t, tt.r2, string(r2))
		})
	}
}

func TestAlignLocalAffineProperties(t *testing.T) {
	sc := AffineScoring()
	pairs := [][2]string{
		{"ACACACTA", "AGCACACA"},
		{"ACGTTTTTGCA", "ACGGCA"},
		{"AAAA", "TTTT"},
		{"GATTACA", "GATTACA"},
	}
	for _, p := range pairs {
		s1, s2 := []byte(p[0]), []byte(p[1])
		score, r1, r2 := AlignLocalAffine(s1, s2, sc)

		require.Equal(t, len(r1), len(r2))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.True(t, strings.Contains(p[0], string(degap(r1))))
		assert.True(t, strings.Contains(p[1], string(degap(r2))))
	}
}

func TestAlignLocalAffineRescore(t *testing.T) {
	// Alignments that begin on a match decompose exactly into pair and
	// gap-run scores.
	sc := AffineScoring()
	pairs := [][2]string{
		{"ACACACTA", "AGCACACA"},
		{"ACGTTTTTGCA", "ACGGCA"},
		{"GATTACA", "GATTACA"},
	}
	for _, p := range pairs {
		score, r1, r2 := AlignLocalAffine([]byte(p[0]), []byte(p[1]), sc)
		assert.True(t, scalar.EqualWithinAbs(score, rescoreDeferred(r1, r2, sc), 1e-12),
			"rescore mismatch for %q/%q", p[0], p[1])
	}
}
