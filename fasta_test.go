// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairFasta = `>read
ACGT
>target 4|5|6|7
TTACGTAA
`

func TestReadPair(t *testing.T) {
	s1, s2, err := ReadPair(strings.NewReader(pairFasta))
	require.NoError(t, err)

	assert.Equal(t, "read", s1.ID)
	assert.Equal(t, "target", s2.ID)
	assert.Equal(t, "ACGT", string(SeqBytes(s1)))
	assert.Equal(t, "TTACGTAA", string(SeqBytes(s2)))
}

func TestReadPairCount(t *testing.T) {
	one := ">only\nACGT\n"
	_, _, err := ReadPair(strings.NewReader(one))
	assert.ErrorIs(t, err, ErrSequenceCount)

	three := pairFasta + ">extra\nGGGG\n"
	_, _, err = ReadPair(strings.NewReader(three))
	assert.ErrorIs(t, err, ErrSequenceCount)
}

func TestJunctions(t *testing.T) {
	_, s2, err := ReadPair(strings.NewReader(pairFasta))
	require.NoError(t, err)

	set, err := Junctions(s2)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())
	for _, p := range []int{4, 5, 6, 7} {
		assert.True(t, set.Has(p))
	}
	assert.False(t, set.Has(3))
}

func TestJunctionsMissing(t *testing.T) {
	s1, _, err := ReadPair(strings.NewReader(pairFasta))
	require.NoError(t, err)

	_, err = Junctions(s1)
	assert.ErrorIs(t, err, ErrNoJunctions)
}

func TestJunctionsMalformed(t *testing.T) {
	in := ">read\nACGT\n>target 4|x|6\nTTACGTAA\n"
	_, s2, err := ReadPair(strings.NewReader(in))
	require.NoError(t, err)

	_, err = Junctions(s2)
	assert.Error(t, err)
}
