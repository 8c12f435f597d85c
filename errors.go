// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import "errors"

var (
	// ErrSequenceCount indicates an input did not contain exactly two sequences.
	ErrSequenceCount = errors.New("skipjack: input must contain exactly two sequences")
	// ErrFitLength indicates a fitting alignment where the first sequence is
	// longer than the second.
	ErrFitLength = errors.New("skipjack: first sequence must not be longer than the second")
	// ErrNoJunctions indicates jumps were requested but the second sequence
	// carries no junction positions.
	ErrNoJunctions = errors.New("skipjack: no junction positions on second sequence")
)
