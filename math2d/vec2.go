// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math2d implements the 2D vector and matrix primitives used by
// the phys2d rigid-body solver.
package math2d

import "math"

// Vec2 is a 2D vector or point with X and Y components.
type Vec2 struct {
	X float32
	Y float32
}

// Zero2 is the zero vector.
var Zero2 = Vec2{0, 0}

// NewVec2 creates and returns a new Vec2 with the specified x and y components.
func NewVec2(x, y float32) Vec2 {

	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {

	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {

	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {

	return Vec2{-v.X, -v.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {

	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {

	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D scalar cross product v × other = v.X*other.Y - v.Y*other.X.
func (v Vec2) Cross(other Vec2) float32 {

	return v.X*other.Y - v.Y*other.X
}

// CrossVS returns the mixed product cross(v, s) = (s*v.Y, -s*v.X), i.e. v rotated
// -90 degrees and scaled by s.
func (v Vec2) CrossVS(s float32) Vec2 {

	return Vec2{s * v.Y, -s * v.X}
}

// CrossSV returns the mixed product cross(s, v) = (-s*v.Y, s*v.X), i.e. v rotated
// 90 degrees and scaled by s.
func CrossSV(s float32, v Vec2) Vec2 {

	return Vec2{-s * v.Y, s * v.X}
}

// Abs returns the elementwise absolute value of v.
func (v Vec2) Abs() Vec2 {

	return Vec2{float32(math.Abs(float64(v.X))), float32(math.Abs(float64(v.Y)))}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {

	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LengthSq returns the squared Euclidean length of v.
func (v Vec2) LengthSq() float32 {

	return v.X*v.X + v.Y*v.Y
}

// Mul returns the elementwise product of v and other.
func (v Vec2) Mul(other Vec2) Vec2 {

	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Min returns the elementwise minimum of v and other.
func (v Vec2) Min(other Vec2) Vec2 {

	m := v
	if other.X < m.X {
		m.X = other.X
	}
	if other.Y < m.Y {
		m.Y = other.Y
	}
	return m
}

// Max returns the elementwise maximum of v and other.
func (v Vec2) Max(other Vec2) Vec2 {

	m := v
	if other.X > m.X {
		m.X = other.X
	}
	if other.Y > m.Y {
		m.Y = other.Y
	}
	return m
}
