// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phys2d implements a 2D rigid-body physics engine for oriented
// rectangular bodies, resolved with a sequential-impulse constraint solver.
package phys2d

import (
	"math"

	"github.com/solidbox/phys2d/math2d"
)

// UnmovableMass is the sentinel mass value that designates a static body.
// A body constructed or Set with this mass gets InvMass == InvI == 0 and
// is skipped by force integration and the broad phase's static-static
// pair test.
const UnmovableMass = math.MaxFloat32

// DefaultFriction is the friction coefficient a new Body is given by Set.
const DefaultFriction = 0.2

// Body is a rigid, axis-unaligned rectangular body: a pose (position +
// rotation), a linear/angular velocity, an accumulated force/torque for
// the current tick, and the mass/inertia derived from its extents.
type Body struct {
	Position Vec2
	Rotation float32

	Velocity        Vec2
	AngularVelocity float32

	Force  Vec2
	Torque float32

	Width Vec2

	Friction float32

	mass    float32
	invMass float32
	i       float32
	invI    float32

	// SerialNumber is this body's stable identity, assigned by World.AddBody
	// at registration time. Arbiter keys are ordered pairs of SerialNumbers.
	SerialNumber int

	// Name is a free-form label used only for logging/diagnostics; it plays
	// no role in the simulation.
	Name string
}

// NewBody creates a new Body with the given extents, mass, and position.
// Mass == UnmovableMass designates a static body.
func NewBody(width Vec2, mass float32, position Vec2) *Body {

	b := &Body{}
	b.Set(width, mass)
	b.Position = position
	return b
}

// Set (re)initializes a body's kinematic state to rest at the origin and
// derives mass/inertia from the given extents and mass, the same way
// box2d-lite's Body::Set does (position is reset to the origin; callers
// that want a specific starting pose set Position afterward, as NewBody
// does above).
func (b *Body) Set(width Vec2, mass float32) {

	b.Position = Vec2{}
	b.Rotation = 0
	b.Velocity = Vec2{}
	b.AngularVelocity = 0
	b.Force = Vec2{}
	b.Torque = 0
	b.Friction = DefaultFriction

	b.Width = width
	b.mass = mass

	if b.mass < UnmovableMass {
		b.invMass = 1.0 / b.mass
		b.i = b.mass * (width.X*width.X + width.Y*width.Y) / 12.0
		b.invI = 1.0 / b.i
	} else {
		b.invMass = 0
		b.i = UnmovableMass
		b.invI = 0
	}
}

// Mass returns the body's mass.
func (b *Body) Mass() float32 {

	return b.mass
}

// InvMass returns the body's inverse mass (0 for a static body).
func (b *Body) InvMass() float32 {

	return b.invMass
}

// I returns the body's rotational inertia.
func (b *Body) I() float32 {

	return b.i
}

// InvI returns the body's inverse rotational inertia (0 for a static body).
func (b *Body) InvI() float32 {

	return b.invI
}

// IsStatic reports whether the body is immovable (infinite mass).
func (b *Body) IsStatic() bool {

	return b.invMass == 0
}

// SubVelocity applies -p as an impulse at lever arm r: it removes p's
// linear contribution scaled by InvMass and p's angular contribution
// (r × p) scaled by InvI. Used by arbiters/joints to apply the negative
// half of a symmetric impulse pair.
func (b *Body) SubVelocity(r, p Vec2) {

	b.Velocity = b.Velocity.Sub(p.Scale(b.invMass))
	b.AngularVelocity -= b.invI * r.Cross(p)
}

// AddVelocity applies +p as an impulse at lever arm r, symmetric to
// SubVelocity.
func (b *Body) AddVelocity(r, p Vec2) {

	b.Velocity = b.Velocity.Add(p.Scale(b.invMass))
	b.AngularVelocity += b.invI * r.Cross(p)
}

// AddForce accumulates f into the body's force for the current tick.
func (b *Body) AddForce(f Vec2) {

	b.Force = b.Force.Add(f)
}

// Rotation matrix helper: Rot returns Mat22 rotation for this body's
// current orientation.
func (b *Body) Rot() Mat22 {

	return math2d.NewMat22Angle(b.Rotation)
}
