// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

// AlignGlobal aligns s1 and s2 end to end with a flat per-symbol gap
// cost taken from sc.GapOpen. Leading gaps, which lie on the zero
// boundary row and column, carry no penalty, so the score of such an
// alignment differs from textbook Needleman-Wunsch; trailing gaps are
// charged like interior ones. It returns the score at the final cell and
// the two gap-padded aligned strings.
func AlignGlobal(s1, s2 []byte, sc Scoring) (score float64, r1, r2 []byte) {
	m, n := len(s1), len(s2)
	gap := sc.GapOpen

	s := matrixFloat(m+1, n+1)
	p := matrixOp(m+1, n+1)
	for i := 0; i <= m; i++ {
		p[i][0] = opRight
	}
	for j := 0; j <= n; j++ {
		p[0][j] = opLeft
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sig := sc.substitution(s1[i-1], s2[j-1])
			s[i][j], p[i][j] = bestDirection(s[i][j-1]+gap, s[i-1][j-1]+sig, s[i-1][j]+gap)
		}
	}

	r1, r2 = traceGlobal(p, s1, s2)
	return s[m][n], r1, r2
}

// bestDirection chooses between the left, diagonal and right
// candidates. Candidates are tested in that order with >=, so the last
// of equal candidates wins. Back-pointers depend on this ordering.
func bestDirection(left, diagonal, right float64) (float64, op) {
	res, dir := negInf, opNone
	if left >= res {
		res, dir = left, opLeft
	}
	if diagonal >= res {
		res, dir = diagonal, opDiagonal
	}
	if right >= res {
		res, dir = right, opRight
	}
	return res, dir
}

func traceGlobal(p [][]op, s1, s2 []byte) (r1, r2 []byte) {
	i, j := len(s1), len(s2)
	for i > 0 || j > 0 {
		switch p[i][j] {
		case opLeft:
			j--
			r1 = append(r1, '-')
			r2 = append(r2, s2[j])
		case opDiagonal:
			i--
			j--
			r1 = append(r1, s1[i])
			r2 = append(r2, s2[j])
		case opRight:
			i--
			r1 = append(r1, s1[i])
			r2 = append(r2, '-')
		}
	}
	reverse(r1)
	reverse(r2)
	return r1, r2
}
