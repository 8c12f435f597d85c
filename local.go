// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

// AlignLocalAffine finds the best-scoring local alignment of s1 and s2
// with an affine gap penalty. The diagonal layer may reset to the
// origin wherever every extension would fall below zero, so the
// returned score is never negative for non-empty inputs. The aligned
// strings cover the matched region, preceded by the pair of the cell at
// which the diagonal layer reset to the origin when the walk reaches one;
// that pair is not counted in the score.
func AlignLocalAffine(s1, s2 []byte, sc Scoring) (score float64, r1, r2 []byte) {
	m, n := len(s1), len(s2)
	t := newTableau(m, n, false)

	best := negInf
	var bi, bj int
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sig := sc.substitution(s1[i-1], s2[j-1])

			v, k := max4(t.low[i-1][j-1]+sig, t.mid[i-1][j-1]+sig, t.upp[i-1][j-1]+sig, 0)
			t.mid[i][j] = v
			switch k {
			case 0:
				t.pMid[i][j] = opLow
			case 1:
				t.pMid[i][j] = opMid
			case 2:
				t.pMid[i][j] = opUpp
			case 3:
				t.pMid[i][j] = opHome
			}
			if t.mid[i][j] > best {
				best = t.mid[i][j]
				bi, bj = i, j
			}

			v, k = max2(t.low[i-1][j]+sc.GapExtend, t.mid[i-1][j]+sc.GapOpen)
			t.low[i][j] = v
			switch k {
			case 0:
				t.pLow[i][j] = opLow
			case 1:
				t.pLow[i][j] = opMid
			}

			v, k = max2(t.mid[i][j-1]+sc.GapOpen, t.upp[i][j-1]+sc.GapExtend)
			t.upp[i][j] = v
			switch k {
			case 0:
				t.pUpp[i][j] = opMid
			case 1:
				t.pUpp[i][j] = opUpp
			}
		}
	}

	r1, r2 = traceLocalAffine(t, s1, s2, bi, bj)
	return best, r1, r2
}

// traceLocalAffine walks back from the grid-wide maximum of the
// diagonal layer. The starting layer is always the diagonal; the walk
// halts at the origin reset or at either boundary.
func traceLocalAffine(t *tableau, s1, s2 []byte, i, j int) (r1, r2 []byte) {
	state := opMid
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
		case opHome:
			i, j = 0, 0
		default:
			i, j = 0, 0
		}
	}
	reverse(r1)
	reverse(r2)
	return r1, r2
}
