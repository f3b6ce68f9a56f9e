// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "github.com/solidbox/phys2d/math2d"

// Vec2 and Mat22 are re-exported from math2d so that callers of phys2d
// do not also need to import math2d directly for everyday use.
type (
	Vec2  = math2d.Vec2
	Mat22 = math2d.Mat22
)

// CrossSV returns the mixed product cross(s, v) = (-s*v.Y, s*v.X): v
// rotated 90 degrees and scaled by s. Used to turn an angular velocity
// into the linear velocity it induces at lever arm v.
func CrossSV(s float32, v Vec2) Vec2 {

	return math2d.CrossSV(s, v)
}
