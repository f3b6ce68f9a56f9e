// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "sort"

// ArbiterKey is an arbiter's (lo, hi) identity, the ordered pair of its
// two bodies' serial numbers.
type ArbiterKey struct {
	Lo int
	Hi int
}

// NewArbiterKey builds an ArbiterKey from two serial numbers in whichever
// order, normalizing so Lo < Hi.
func NewArbiterKey(serialA, serialB int) ArbiterKey {

	if serialA < serialB {
		return ArbiterKey{Lo: serialA, Hi: serialB}
	}
	return ArbiterKey{Lo: serialB, Hi: serialA}
}

// arbiterSet is a deterministic, key-ordered collection of Arbiters. Go's
// map type has no defined iteration order, and stepping arbiters in a
// different order each tick would make the solver's result depend on
// map iteration rather than physical setup, so this pairs the map with a
// sorted key slice kept in sync on every insert/remove, rather than
// iterating a bare map[ArbiterKey]*Arbiter directly.
type arbiterSet struct {
	byKey map[ArbiterKey]*Arbiter
	keys  []ArbiterKey // always sorted ascending
}

func newArbiterSet() *arbiterSet {

	return &arbiterSet{
		byKey: make(map[ArbiterKey]*Arbiter),
	}
}

// Get returns the arbiter at key, and whether it was present.
func (s *arbiterSet) Get(key ArbiterKey) (*Arbiter, bool) {

	a, ok := s.byKey[key]
	return a, ok
}

// Insert adds a new arbiter under key, which must not already be present.
func (s *arbiterSet) Insert(key ArbiterKey, a *Arbiter) {

	s.byKey[key] = a
	i := sort.Search(len(s.keys), func(i int) bool { return keyLess(key, s.keys[i]) || key == s.keys[i] })
	s.keys = append(s.keys, ArbiterKey{})
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = key
}

// Remove deletes the arbiter at key, if present.
func (s *arbiterSet) Remove(key ArbiterKey) {

	if _, ok := s.byKey[key]; !ok {
		return
	}
	delete(s.byKey, key)
	i := sort.Search(len(s.keys), func(i int) bool { return !keyLess(s.keys[i], key) })
	if i < len(s.keys) && s.keys[i] == key {
		s.keys = append(s.keys[:i], s.keys[i+1:]...)
	}
}

// Clear empties the set.
func (s *arbiterSet) Clear() {

	s.byKey = make(map[ArbiterKey]*Arbiter)
	s.keys = nil
}

// Len returns the number of arbiters currently present.
func (s *arbiterSet) Len() int {

	return len(s.keys)
}

// Each calls fn for every arbiter in ascending key order.
func (s *arbiterSet) Each(fn func(key ArbiterKey, a *Arbiter)) {

	for _, k := range s.keys {
		fn(k, s.byKey[k])
	}
}

func keyLess(a, b ArbiterKey) bool {

	if a.Lo != b.Lo {
		return a.Lo < b.Lo
	}
	return a.Hi < b.Hi
}
