// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "math"

// allowedPenetration is the slop the position-correction bias tolerates
// before it starts pushing bodies apart.
const allowedPenetration float32 = 0.01

// biasFactor is the Baumgarte stabilization factor applied when position
// correction is enabled.
const biasFactor float32 = 0.2

// Arbiter is the per-body-pair cache of a contact manifold plus the
// solver impulses accumulated across iterations and ticks. Body1 always
// has the lower SerialNumber; Key() reflects that ordering.
type Arbiter struct {
	Contacts    [MaxContactPoints]Contact
	NumContacts int

	Body1 *Body
	Body2 *Body

	// Friction is the combined Coulomb friction coefficient for this pair,
	// friction(a,b) = sqrt(a.Friction * b.Friction).
	Friction float32
}

// NewArbiter runs the collider on (b1, b2), reordering them so Body1 has
// the lower SerialNumber, and returns the resulting Arbiter along with
// its contact count.
func NewArbiter(b1, b2 *Body) (*Arbiter, int) {

	if b1.SerialNumber > b2.SerialNumber {
		b1, b2 = b2, b1
	}

	a := &Arbiter{
		Body1:    b1,
		Body2:    b2,
		Friction: float32(math.Sqrt(float64(b1.Friction * b2.Friction))),
	}
	a.NumContacts = Collide(a.Contacts[:], b1, b2)
	return a, a.NumContacts
}

// Key returns this arbiter's (lo, hi) identity key.
func (a *Arbiter) Key() ArbiterKey {

	return ArbiterKey{Lo: a.Body1.SerialNumber, Hi: a.Body2.SerialNumber}
}

// CollidePoints returns the world positions of this arbiter's current
// contact points, for diagnostics/rendering queries.
func (a *Arbiter) CollidePoints() []Vec2 {

	pts := make([]Vec2, a.NumContacts)
	for i := 0; i < a.NumContacts; i++ {
		pts[i] = a.Contacts[i].Position
	}
	return pts
}

// Update merges a freshly-collided manifold into this arbiter: for each
// new contact, a surviving old contact with an equal Feature hands its
// accumulated impulses forward (when warm starting is enabled); contacts
// with no match start fresh.
func (a *Arbiter) Update(fresh *Arbiter, tunables Tunables) {

	var merged [MaxContactPoints]Contact

	for i := 0; i < fresh.NumContacts; i++ {
		cNew := fresh.Contacts[i]

		matched := -1
		for j := 0; j < a.NumContacts; j++ {
			if cNew.Feature == a.Contacts[j].Feature {
				matched = j
				break
			}
		}

		if matched >= 0 {
			cOld := a.Contacts[matched]
			if tunables.WarmStarting {
				cNew.Pn = cOld.Pn
				cNew.Pt = cOld.Pt
				cNew.Pnb = cOld.Pnb
			} else {
				cNew.Pn = 0
				cNew.Pt = 0
				cNew.Pnb = 0
			}
		}
		merged[i] = cNew
	}

	a.Contacts = merged
	a.NumContacts = fresh.NumContacts
	a.Friction = fresh.Friction
}

// PreStep precomputes each contact's effective normal/tangent mass and
// position-correction bias, and — if impulse accumulation is enabled —
// re-applies the impulse warm-started or carried over from the previous
// tick so the solver begins this tick already near its fixed point.
func (a *Arbiter) PreStep(invDt float32, tunables Tunables) {

	bias := float32(0)
	if tunables.PositionCorrection {
		bias = biasFactor
	}

	for i := 0; i < a.NumContacts; i++ {
		c := &a.Contacts[i]

		r1 := c.Position.Sub(a.Body1.Position)
		r2 := c.Position.Sub(a.Body2.Position)

		rn1 := r1.Dot(c.Normal)
		rn2 := r2.Dot(c.Normal)
		kNormal := a.Body1.InvMass() + a.Body2.InvMass() +
			a.Body1.InvI()*(r1.Dot(r1)-rn1*rn1) +
			a.Body2.InvI()*(r2.Dot(r2)-rn2*rn2)
		c.MassNormal = 1.0 / kNormal

		tangent := c.Normal.CrossVS(1)
		rt1 := r1.Dot(tangent)
		rt2 := r2.Dot(tangent)
		kTangent := a.Body1.InvMass() + a.Body2.InvMass() +
			a.Body1.InvI()*(r1.Dot(r1)-rt1*rt1) +
			a.Body2.InvI()*(r2.Dot(r2)-rt2*rt2)
		c.MassTangent = 1.0 / kTangent

		c.Bias = -bias * invDt * float32(math.Min(0, float64(c.Separation+allowedPenetration)))

		if tunables.AccumulateImpulses {
			p := c.Normal.Scale(c.Pn).Add(tangent.Scale(c.Pt))
			a.Body1.SubVelocity(r1, p)
			a.Body2.AddVelocity(r2, p)
		}
	}
}

// ApplyImpulse performs one sequential-impulse solver iteration over this
// arbiter's contacts: a clamped normal impulse followed by a
// friction-cone-clamped tangent impulse, each applied symmetrically to
// both bodies.
func (a *Arbiter) ApplyImpulse(tunables Tunables) {

	for i := 0; i < a.NumContacts; i++ {
		c := &a.Contacts[i]

		c.R1 = c.Position.Sub(a.Body1.Position)
		c.R2 = c.Position.Sub(a.Body2.Position)

		dv := a.Body2.Velocity.Add(CrossSV(a.Body2.AngularVelocity, c.R2)).
			Sub(a.Body1.Velocity.Add(CrossSV(a.Body1.AngularVelocity, c.R1)))

		vn := dv.Dot(c.Normal)
		dPn := c.MassNormal * (-vn + c.Bias)

		var normalImpulse float32
		if tunables.AccumulateImpulses {
			pn0 := c.Pn
			c.Pn = float32(math.Max(0, float64(pn0+dPn)))
			normalImpulse = c.Pn - pn0
		} else {
			normalImpulse = float32(math.Max(0, float64(dPn)))
		}

		p := c.Normal.Scale(normalImpulse)
		a.Body1.SubVelocity(c.R1, p)
		a.Body2.AddVelocity(c.R2, p)

		dv = a.Body2.Velocity.Add(CrossSV(a.Body2.AngularVelocity, c.R2)).
			Sub(a.Body1.Velocity.Add(CrossSV(a.Body1.AngularVelocity, c.R1)))

		tangent := c.Normal.CrossVS(1)
		vt := dv.Dot(tangent)
		dPt := c.MassTangent * (-vt)

		var tangentImpulse float32
		if tunables.AccumulateImpulses {
			maxPt := a.Friction * c.Pn
			oldTangentImpulse := c.Pt
			c.Pt = clamp(oldTangentImpulse+dPt, -maxPt, maxPt)
			tangentImpulse = c.Pt - oldTangentImpulse
		} else {
			maxPt := a.Friction * normalImpulse
			tangentImpulse = clamp(dPt, -maxPt, maxPt)
		}

		pt := tangent.Scale(tangentImpulse)
		a.Body1.SubVelocity(c.R1, pt)
		a.Body2.AddVelocity(c.R2, pt)
	}
}

func clamp(a, lo, hi float32) float32 {

	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}
