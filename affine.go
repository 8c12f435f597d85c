// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

// AlignGlobalAffine aligns s1 and s2 end to end with an affine gap
// penalty: a gap run of length k costs GapOpen + k·GapExtend. It
// returns the best score over the three layers at the final cell and
// the two gap-padded aligned strings.
func AlignGlobalAffine(s1, s2 []byte, sc Scoring) (score float64, r1, r2 []byte) {
	m, n := len(s1), len(s2)
	t := newTableau(m, n, false)

	for i := 0; i <= m; i++ {
		for j := 0; j <= n; j++ {
			t.low[i][j] = negInf
			t.mid[i][j] = negInf
			t.upp[i][j] = negInf
		}
	}
	t.mid[0][0] = 0
	t.low[0][0] = sc.GapOpen
	t.upp[0][0] = sc.GapOpen
	for i := 1; i <= m; i++ {
		t.low[i][0] = sc.GapOpen + sc.GapExtend*float64(i)
	}
	for j := 1; j <= n; j++ {
		t.upp[0][j] = sc.GapOpen + sc.GapExtend*float64(j)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sig := sc.substitution(s1[i-1], s2[j-1])

			v, k := max3(t.low[i-1][j-1]+sig, t.mid[i-1][j-1]+sig, t.upp[i-1][j-1]+sig)
			t.mid[i][j] = v
			switch k {
			case 0:
				t.pMid[i][j] = opLow
			case 1:
				t.pMid[i][j] = opMid
			case 2:
				t.pMid[i][j] = opUpp
			}

			v, k = max2(t.low[i-1][j]+sc.GapExtend, t.mid[i-1][j]+sc.GapOpen+sc.GapExtend)
			t.low[i][j] = v
			switch k {
			case 0:
				t.pLow[i][j] = opLow
			case 1:
				t.pLow[i][j] = opMid
			}

			v, k = max2(t.upp[i][j-1]+sc.GapExtend, t.mid[i][j-1]+sc.GapOpen+sc.GapExtend)
			t.upp[i][j] = v
			switch k {
			case 0:
				t.pUpp[i][j] = opUpp
			case 1:
				t.pUpp[i][j] = opMid
			}
		}
	}

	score, k := max3(t.low[m][n], t.mid[m][n], t.upp[m][n])
	state := [...]op{opLow, opMid, opUpp}[k]
	r1, r2 = traceGlobalAffine(t, s1, s2, state)
	return score, r1, r2
}

// traceGlobalAffine walks the layer back-pointers from (m,n) in the
// given starting layer. When one sequence is exhausted the remainder of
// the other is emitted against forced gaps.
func traceGlobalAffine(t *tableau, s1, s2 []byte, state op) (r1, r2 []byte) {
	i, j := t.m, t.n
	for i > 0 && j > 0 {
		switch state {
		case opLow:
			state = t.pLow[i][j]
			i--
			r1 = append(r1, s1[i])
			r2 = append(r2, '-')
		case opMid:
			state = t.pMid[i][j]
			i--
			j--
			r1 = append(r1, s1[i])
			r2 = append(r2, s2[j])
		case opUpp:
			state = t.pUpp[i][j]
			j--
			r1 = append(r1, '-')
			r2 = append(r2, s2[j])
		default:
			i, j = 0, 0
		}
	}
	for j > 0 {
		j--
		r1 = append(r1, '-')
		r2 = append(r2, s2[j])
	}
	for i > 0 {
		i--
		r1 = append(r1, s1[i])
		r2 = append(r2, '-')
	}
	reverse(r1)
	reverse(r2)
	return r1, r2
}
