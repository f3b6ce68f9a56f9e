// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "github.com/solidbox/phys2d/math2d"

// Joint is a soft 2-DoF point-to-point constraint that pins
// body1.Position + R1*LocalAnchor1 == body2.Position + R2*LocalAnchor2.
// It is the engine's only joint type; other joint kinds (revolute limits,
// distance, prismatic) are not implemented.
type Joint struct {
	Body1 *Body
	Body2 *Body

	LocalAnchor1 Vec2
	LocalAnchor2 Vec2

	r1, r2 Vec2
	m      Mat22
	bias   Vec2
	p      Vec2 // accumulated impulse

	BiasFactor float32
	Softness   float32
}

// NewJoint creates a Joint pinning body1 and body2 together at the given
// world-space anchor. The local anchors are derived once, here, by
// inverse-rotating (anchor - body.Position) into each body's frame.
func NewJoint(body1, body2 *Body, anchor Vec2) *Joint {

	rot1T := body1.Rot().Transpose()
	rot2T := body2.Rot().Transpose()

	return &Joint{
		Body1:        body1,
		Body2:        body2,
		LocalAnchor1: rot1T.MulVec2(anchor.Sub(body1.Position)),
		LocalAnchor2: rot2T.MulVec2(anchor.Sub(body2.Position)),
		BiasFactor:   0.2,
		Softness:     0,
	}
}

// Lines returns the two anchor line segments (body.Position, body.Position
// + R*LocalAnchor) for rendering/diagnostics queries.
func (j *Joint) Lines() [2][2]Vec2 {

	r1 := j.Body1.Rot().MulVec2(j.LocalAnchor1)
	r2 := j.Body2.Rot().MulVec2(j.LocalAnchor2)
	return [2][2]Vec2{
		{j.Body1.Position, j.Body1.Position.Add(r1)},
		{j.Body2.Position, j.Body2.Position.Add(r2)},
	}
}

// PreStep recomputes the joint's effective-mass matrix and
// position-correction bias from the bodies' current pose, and — if warm
// starting is enabled — re-applies the impulse accumulated last tick.
//
// If the resulting K matrix is singular (its determinant is exactly
// zero — e.g. two coincident static bodies sharing an anchor, which is a
// scene construction bug), PreStep logs at ERROR level via logger (which
// may be nil, in which case nothing is logged) and leaves the joint
// inert for this tick rather than dividing by zero.
func (j *Joint) PreStep(invDt float32, tunables Tunables, logger *Logger) {

	j.r1 = j.Body1.Rot().MulVec2(j.LocalAnchor1)
	j.r2 = j.Body2.Rot().MulVec2(j.LocalAnchor2)

	k1 := math2d.NewMat22(
		Vec2{j.Body1.InvMass() + j.Body2.InvMass(), 0},
		Vec2{0, j.Body1.InvMass() + j.Body2.InvMass()},
	)
	k2 := math2d.NewMat22(
		Vec2{j.Body1.InvI() * j.r1.Y * j.r1.Y, -j.Body1.InvI() * j.r1.X * j.r1.Y},
		Vec2{-j.Body1.InvI() * j.r1.X * j.r1.Y, j.Body1.InvI() * j.r1.X * j.r1.X},
	)
	k3 := math2d.NewMat22(
		Vec2{j.Body2.InvI() * j.r2.Y * j.r2.Y, -j.Body2.InvI() * j.r2.X * j.r2.Y},
		Vec2{-j.Body2.InvI() * j.r2.X * j.r2.Y, j.Body2.InvI() * j.r2.X * j.r2.X},
	)

	k := k1.Add(k2).Add(k3)
	k.Col1.X += j.Softness
	k.Col2.Y += j.Softness

	if k.Determinant() == 0 {
		if logger != nil {
			logger.Error("joint between bodies %d and %d has a singular K matrix; leaving it inert this tick", j.Body1.SerialNumber, j.Body2.SerialNumber)
		}
		j.m = Mat22{}
		j.bias = Vec2{}
		j.p = Vec2{}
		return
	}
	j.m = k.Invert()

	p1 := j.Body1.Position.Add(j.r1)
	p2 := j.Body2.Position.Add(j.r2)
	dp := p2.Sub(p1)

	if tunables.PositionCorrection {
		j.bias = dp.Scale(-j.BiasFactor * invDt)
	} else {
		j.bias = Vec2{}
	}

	if tunables.WarmStarting {
		j.Body1.SubVelocity(j.r1, j.p)
		j.Body2.AddVelocity(j.r2, j.p)
	} else {
		j.p = Vec2{}
	}
}

// ApplyImpulse performs one solver iteration: it computes the impulse
// that would drive the constraint's relative velocity to the bias target
// (net of softness bleed-off of the already-accumulated impulse), applies
// it symmetrically, and accumulates it into p for next iteration/tick.
func (j *Joint) ApplyImpulse() {

	dv := j.Body2.Velocity.Add(CrossSV(j.Body2.AngularVelocity, j.r2)).
		Sub(j.Body1.Velocity.Add(CrossSV(j.Body1.AngularVelocity, j.r1)))

	impulse := j.m.MulVec2(j.bias.Sub(dv).Sub(j.p.Scale(j.Softness)))

	j.Body1.SubVelocity(j.r1, impulse)
	j.Body2.AddVelocity(j.r2, impulse)
	j.p = j.p.Add(impulse)
}
