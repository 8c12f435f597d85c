// Copyright ©2016 the skipjack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

import "github.com/biogo/store/llrb"

// site is a junction position ordered by integer value.
type site int

func (s site) Compare(c llrb.Comparable) int { return int(s) - int(c.(site)) }

// A JunctionSet holds the positions of the longer sequence at which the
// jump state of a fitting alignment may be entered. Positions are held
// in a balanced tree, so membership tests are O(log n). The zero value
// is an empty set ready for use.
type JunctionSet struct {
	t llrb.Tree
}

// NewJunctionSet returns a set holding the given positions.
func NewJunctionSet(pos ...int) *JunctionSet {
	s := &JunctionSet{}
	for _, p := range pos {
		s.Add(p)
	}
	return s
}

// Add inserts p into the set. Duplicate positions collapse.
func (s *JunctionSet) Add(p int) { s.t.Insert(site(p)) }

// Has reports whether p is in the set. A nil set contains nothing.
func (s *JunctionSet) Has(p int) bool {
	if s == nil {
		return false
	}
	return s.t.Get(site(p)) != nil
}

// Len returns the number of positions held.
func (s *JunctionSet) Len() int {
	if s == nil {
		return 0
	}
	return s.t.Len()
}
