// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skipjack provides pairwise sequence alignment over DNA-like
// byte alphabets: edit distance, global alignment with a flat gap cost,
// global and local alignment with affine gap penalties, and a fitting
// alignment that may additionally jump freely across declared junction
// positions of the longer sequence.
//
// Symbols are compared by byte equality; no case folding or alphabet
// validation is performed by the alignment kernels. Each alignment call
// is a pure function of its inputs and owns its working matrices for
// the duration of the call.
package skipjack
