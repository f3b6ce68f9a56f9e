// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2d

import "math"

// Mat22 is a 2x2 matrix stored as two column vectors.
type Mat22 struct {
	Col1 Vec2
	Col2 Vec2
}

// Identity22 is the 2x2 identity matrix.
var Identity22 = Mat22{Vec2{1, 0}, Vec2{0, 1}}

// NewMat22 creates a 2x2 matrix from its two column vectors.
func NewMat22(col1, col2 Vec2) Mat22 {

	return Mat22{col1, col2}
}

// NewMat22Angle creates the rotation matrix [cosθ -sinθ; sinθ cosθ] for angle θ.
func NewMat22Angle(angle float32) Mat22 {

	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat22{
		Col1: Vec2{c, s},
		Col2: Vec2{-s, c},
	}
}

// Transpose returns the transpose of m.
func (m Mat22) Transpose() Mat22 {

	return Mat22{
		Col1: Vec2{m.Col1.X, m.Col2.X},
		Col2: Vec2{m.Col1.Y, m.Col2.Y},
	}
}

// Abs returns the elementwise absolute value of m.
func (m Mat22) Abs() Mat22 {

	return Mat22{m.Col1.Abs(), m.Col2.Abs()}
}

// Invert returns the inverse of m. The caller must ensure m is non-singular;
// see phys2d's joint pre-step for the one call site that must guard against
// a singular K matrix.
func (m Mat22) Invert() Mat22 {

	a, b, c, d := m.Col1.X, m.Col2.X, m.Col1.Y, m.Col2.Y
	det := a*d - b*c
	det = 1.0 / det
	return Mat22{
		Col1: Vec2{det * d, -det * c},
		Col2: Vec2{-det * b, det * a},
	}
}

// Determinant returns the determinant of m.
func (m Mat22) Determinant() float32 {

	return m.Col1.X*m.Col2.Y - m.Col2.X*m.Col1.Y
}

// MulVec2 returns m*v.
func (m Mat22) MulVec2(v Vec2) Vec2 {

	return Vec2{
		X: m.Col1.X*v.X + m.Col2.X*v.Y,
		Y: m.Col1.Y*v.X + m.Col2.Y*v.Y,
	}
}

// Mul returns m*other.
func (m Mat22) Mul(other Mat22) Mat22 {

	return Mat22{
		Col1: m.MulVec2(other.Col1),
		Col2: m.MulVec2(other.Col2),
	}
}

// Add returns the elementwise sum of m and other.
func (m Mat22) Add(other Mat22) Mat22 {

	return Mat22{m.Col1.Add(other.Col1), m.Col2.Add(other.Col2)}
}
