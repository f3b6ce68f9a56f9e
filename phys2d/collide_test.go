// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
)

func TestCollideSeparatedReturnsZero(t *testing.T) {

	a := NewBody(Vec2{1, 1}, 1, Vec2{-5, 0})
	b := NewBody(Vec2{1, 1}, 1, Vec2{5, 0})

	contacts := make([]Contact, MaxContactPoints)
	n := Collide(contacts, a, b)

	assert.Equal(t, 0, n, "expected no contacts for widely separated boxes:\n%# v", pretty.Formatter(contacts))
}

func TestCollideOverlappingStackedBoxes(t *testing.T) {

	floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -5})
	box := NewBody(Vec2{2, 2}, 10, Vec2{0, -3.9})

	contacts := make([]Contact, MaxContactPoints)
	n := Collide(contacts, floor, box)

	if assert.GreaterOrEqual(t, n, 1) {
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, contacts[i].Separation, float32(0))
			// The floor is the reference body (axis FaceAY here), so its
			// face normal points up, out of the floor toward the box.
			assert.InDelta(t, 0, contacts[i].Normal.X, 1e-5)
			assert.Greater(t, contacts[i].Normal.Y, float32(0))
		}
	}
}

func TestCollideInvolution(t *testing.T) {

	a := NewBody(Vec2{2, 2}, 1, Vec2{0, 0})
	b := NewBody(Vec2{2, 2}, 1, Vec2{1.5, 0.2})

	contactsAB := make([]Contact, MaxContactPoints)
	nAB := Collide(contactsAB, a, b)

	contactsBA := make([]Contact, MaxContactPoints)
	nBA := Collide(contactsBA, b, a)

	require := assert.New(t)
	require.Equal(nAB, nBA)
	if nAB == 0 {
		t.Skip("boxes chosen do not overlap; adjust fixture")
	}

	for i := 0; i < nAB; i++ {
		found := false
		for j := 0; j < nBA; j++ {
			if contactsAB[i].Feature == contactsBA[j].Feature.Flip() {
				found = true
				assert.InDelta(t, contactsAB[i].Normal.X, -contactsBA[j].Normal.X, 1e-5)
				assert.InDelta(t, contactsAB[i].Normal.Y, -contactsBA[j].Normal.Y, 1e-5)
				break
			}
		}
		assert.True(t, found, "no matching flipped feature for contact %d:\n%# v", i, pretty.Formatter(contactsAB))
	}
}
