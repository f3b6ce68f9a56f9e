// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat22AngleIdentity(t *testing.T) {

	m := NewMat22Angle(0)
	assert.InDelta(t, 1, m.Col1.X, 1e-6)
	assert.InDelta(t, 0, m.Col1.Y, 1e-6)
	assert.InDelta(t, 0, m.Col2.X, 1e-6)
	assert.InDelta(t, 1, m.Col2.Y, 1e-6)
}

func TestMat22AngleRotatesVector(t *testing.T) {

	m := NewMat22Angle(float32(math.Pi / 2))
	v := m.MulVec2(NewVec2(1, 0))
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, 1, v.Y, 1e-5)
}

func TestMat22Transpose(t *testing.T) {

	m := NewMat22(NewVec2(1, 2), NewVec2(3, 4))
	mt := m.Transpose()
	assert.Equal(t, NewVec2(1, 3), mt.Col1)
	assert.Equal(t, NewVec2(2, 4), mt.Col2)
}

func TestMat22InvertIsIdentity(t *testing.T) {

	m := NewMat22Angle(0.37)
	inv := m.Invert()
	prod := m.Mul(inv)

	assert.InDelta(t, 1, prod.Col1.X, 1e-5)
	assert.InDelta(t, 0, prod.Col1.Y, 1e-5)
	assert.InDelta(t, 0, prod.Col2.X, 1e-5)
	assert.InDelta(t, 1, prod.Col2.Y, 1e-5)
}

func TestMat22Abs(t *testing.T) {

	m := NewMat22(NewVec2(-1, 2), NewVec2(3, -4))
	abs := m.Abs()
	assert.Equal(t, NewVec2(1, 2), abs.Col1)
	assert.Equal(t, NewVec2(3, 4), abs.Col2)
}
