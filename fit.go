// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

// AlignFit aligns all of s1 against a substring of s2 with an affine
// gap penalty; the prefix and suffix of s2 are free. s1 must not be
// longer than s2. When sc.Jumps is set a fourth layer lets the
// alignment skip a region of s2 for a single JumpPenalty charge; the
// jump layer may only be entered from the diagonal layer at a position
// in sc.Sites and is left through the ordinary diagonal transition.
//
// The aligned strings cover only the fitted region of s2.
func AlignFit(s1, s2 []byte, sc Scoring) (score float64, r1, r2 []byte, err error) {
	if len(s1) > len(s2) {
		return 0, nil, nil, ErrFitLength
	}
	m, n := len(s1), len(s2)
	t := newTableau(m, n, sc.Jumps)

	// Column zero forbids any gap or jump before s1 starts; row zero
	// makes the s2 prefix free. The row is written second so the origin
	// holds zero in the diagonal and insertion layers.
	for i := 0; i <= m; i++ {
		t.mid[i][0] = negInf
		t.low[i][0] = negInf
		t.upp[i][0] = negInf
		if sc.Jumps {
			t.jump[i][0] = negInf
		}
	}
	for j := 0; j <= n; j++ {
		t.mid[0][j] = 0
		t.upp[0][j] = 0
		t.low[0][j] = negInf
		if sc.Jumps {
			t.jump[0][j] = negInf
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sig := sc.substitution(s1[i-1], s2[j-1])

			if sc.Jumps {
				v, k := max4(t.low[i-1][j-1]+sig, t.mid[i-1][j-1]+sig, t.upp[i-1][j-1]+sig, t.jump[i-1][j-1]+sig)
				t.mid[i][j] = v
				switch k {
				case 0:
					t.pMid[i][j] = opLow
				case 1:
					t.pMid[i][j] = opMid
				case 2:
					t.pMid[i][j] = opUpp
				case 3:
					t.pMid[i][j] = opJump
				}
			} else {
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
			}

			v, k := max2(t.low[i-1][j]+sc.GapExtend, t.mid[i-1][j]+sc.GapOpen)
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

			if sc.Jumps {
				if sc.Sites.Has(j - 1) {
					v, k = max2(t.mid[i][j-1]+sc.JumpPenalty, t.jump[i][j-1])
					t.jump[i][j] = v
					switch k {
					case 0:
						t.pJump[i][j] = opMid
					case 1:
						t.pJump[i][j] = opJump
					}
				} else {
					t.jump[i][j] = t.jump[i][j-1]
					if t.jump[i][j] > negInf {
						t.pJump[i][j] = opJump
					}
				}
			}
		}
	}

	// The traceback starts in the diagonal or deletion layer of the last
	// row, never the jump layer. The scan covers j in [0, n-1]: the
	// full-length column is not a candidate. The diagonal row is scanned
	// first, so it wins ties with the deletion row.
	best := negInf
	var bj int
	state := opNone
	for j := 0; j < n; j++ {
		if best < t.mid[m][j] {
			best = t.mid[m][j]
			bj = j
			state = opMid
		}
	}
	for j := 0; j < n; j++ {
		if best < t.low[m][j] {
			best = t.low[m][j]
			bj = j
			state = opLow
		}
	}
	if state == opNone {
		return best, nil, nil, nil
	}

	r1, r2 = traceFit(t, s1, s2, state, m, bj)
	return best, r1, r2, nil
}

// traceFit walks back from (i,j) until all of s1 is consumed. The
// unaligned prefix and suffix of s2 are not emitted.
func traceFit(t *tableau, s1, s2 []byte, state op, i, j int) (r1, r2 []byte) {
	for i > 0 {
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
		case opJump:
			state = t.pJump[i][j]
			j--
			r1 = append(r1, '-')
			r2 = append(r2, s2[j])
		default:
			i = 0
		}
	}
	reverse(r1)
	reverse(r2)
	return r1, r2
}
