// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import "math"

var negInf = math.Inf(-1)

// op is a back-pointer tag naming the layer or direction a cell's score
// was derived from.
type op uint8

const (
	opNone op = iota

	// Flat-gap global alignment directions.
	opLeft
	opDiagonal
	opRight

	// Affine layer tags.
	opLow
	opMid
	opUpp
	opJump
	opHome
)

// tableau holds the score and back-pointer layers of an affine-gap
// alignment over an (m+1) × (n+1) grid. The jump layers are only
// allocated when the jump state is in use. Layers start zero valued;
// each mode writes its own boundary conditions.
type tableau struct {
	m, n int

	mid, low, upp, jump     [][]float64
	pMid, pLow, pUpp, pJump [][]op
}

func newTableau(m, n int, jumps bool) *tableau {
	t := &tableau{
		m: m, n: n,
		mid:  matrixFloat(m+1, n+1),
		low:  matrixFloat(m+1, n+1),
		upp:  matrixFloat(m+1, n+1),
		pMid: matrixOp(m+1, n+1),
		pLow: matrixOp(m+1, n+1),
		pUpp: matrixOp(m+1, n+1),
	}
	if jumps {
		t.jump = matrixFloat(m+1, n+1)
		t.pJump = matrixOp(m+1, n+1)
	}
	return t
}

func matrixFloat(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func matrixOp(rows, cols int) [][]op {
	m := make([][]op, rows)
	for i := range m {
		m[i] = make([]op, cols)
	}
	return m
}

func matrixInt(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// max2 and max3 return the greatest argument and the index of the first
// argument strictly greater than all earlier ones. The running maximum
// starts at -Inf, so equal candidates resolve to the earliest and an
// all -Inf argument list yields index -1.
func max2(a0, a1 float64) (float64, int) {
	res, idx := negInf, -1
	if a0 > res {
		res, idx = a0, 0
	}
	if a1 > res {
		res, idx = a1, 1
	}
	return res, idx
}

func max3(a0, a1, a2 float64) (float64, int) {
	res, idx := max2(a0, a1)
	if a2 > res {
		res, idx = a2, 2
	}
	return res, idx
}

func max4(a0, a1, a2, a3 float64) (float64, int) {
	res, idx := max3(a0, a1, a2)
	if a3 > res {
		res, idx = a3, 3
	}
	return res, idx
}

func min3(a0, a1, a2 int) int {
	res := a0
	if a1 < res {
		res = a1
	}
	if a2 < res {
		res = a2
	}
	return res
}

// reverse reverses b in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
