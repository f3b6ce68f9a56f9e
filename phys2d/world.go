// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

// World owns every Body, Joint, and Arbiter in a simulation and drives
// them through Step. It is the engine's only mutable entry point; all
// solving happens synchronously inside Step, on the calling goroutine, so
// a World must not be shared across goroutines without external locking.
type World struct {
	bodies   []*Body
	joints   []*Joint
	arbiters *arbiterSet

	gravity    Vec2
	iterations int
	tunables   Tunables

	logger *Logger
}

// NewWorld creates an empty World with the given gravity and iteration
// count, using the reference engine's default tunables (all three flags
// enabled). Use NewWorldWithConfig to override tunables.
func NewWorld(gravity Vec2, iterations int) *World {

	return NewWorldWithConfig(Config{
		Tunables:   DefaultTunables(),
		Iterations: iterations,
		Gravity:    gravity,
	})
}

// NewWorldWithConfig creates an empty World from a full Config, as
// produced by scenario.Load or hand-built by a caller that wants
// non-default tunables.
func NewWorldWithConfig(cfg Config) *World {

	return &World{
		arbiters:   newArbiterSet(),
		gravity:    cfg.Gravity,
		iterations: cfg.Iterations,
		tunables:   cfg.Tunables,
	}
}

// SetLogger attaches a logger that Step uses to report collision events
// (at DEBUG level) and programming-error conditions such as a singular
// joint K matrix (at ERROR level). A World with no attached logger (the
// default) emits nothing.
func (w *World) SetLogger(l *Logger) {

	w.logger = l
}

// Tunables returns the World's current tuning flags.
func (w *World) Tunables() Tunables {

	return w.tunables
}

// Bodies returns the World's bodies in registration order. The returned
// slice is a live view; callers must not retain it across a Step call.
func (w *World) Bodies() []*Body {

	return w.bodies
}

// Joints returns the World's joints in registration order.
func (w *World) Joints() []*Joint {

	return w.joints
}

// AddBody registers body with the World, assigning its SerialNumber as
// the next index in registration order. SerialNumber is this body's
// stable identity for the lifetime of the World.
func (w *World) AddBody(body *Body) {

	body.SerialNumber = len(w.bodies)
	w.bodies = append(w.bodies, body)
}

// AddJoint creates and registers a Joint pinning body1 and body2 at the
// given world-space anchor, returning the new Joint.
func (w *World) AddJoint(body1, body2 *Body, anchor Vec2) *Joint {

	j := NewJoint(body1, body2, anchor)
	w.joints = append(w.joints, j)
	return j
}

// Clear removes every body, joint, and arbiter from the World. Because
// arbiters hold references to bodies, they must be cleared in the same
// operation that clears bodies to avoid dangling references.
func (w *World) Clear() {

	w.bodies = nil
	w.joints = nil
	w.arbiters.Clear()
}

// CollidePoints returns the world positions of every contact point
// across every current arbiter, for rendering/diagnostics queries. The
// result is a snapshot valid only until the next Step call.
func (w *World) CollidePoints() []Vec2 {

	var pts []Vec2
	w.arbiters.Each(func(_ ArbiterKey, a *Arbiter) {
		pts = append(pts, a.CollidePoints()...)
	})
	return pts
}

// JointLines returns the anchor line segments (body.Position,
// body.Position + R*localAnchor) for every joint, for rendering queries.
func (w *World) JointLines() [][2]Vec2 {

	lines := make([][2]Vec2, 0, 2*len(w.joints))
	for _, j := range w.joints {
		seg := j.Lines()
		lines = append(lines, seg[0], seg[1])
	}
	return lines
}

// Step advances the simulation by dt: it refreshes the broad phase,
// integrates forces into velocities, pre-steps every arbiter and joint,
// runs `iterations` sequential-impulse solver passes, then integrates
// velocities into positions and clears per-tick forces. This is the same
// pipeline order as Erin Catto's box2d-lite reference solver.
func (w *World) Step(dt float32) {

	var invDt float32
	if dt > 0 {
		invDt = 1.0 / dt
	}

	w.broadPhase()

	for _, body := range w.bodies {
		if body.InvMass() == 0 {
			continue
		}
		body.Velocity = body.Velocity.Add(w.gravity.Add(body.Force.Scale(body.InvMass())).Scale(dt))
		body.AngularVelocity += dt * body.InvI() * body.Torque
	}

	w.arbiters.Each(func(_ ArbiterKey, a *Arbiter) {
		a.PreStep(invDt, w.tunables)
	})
	for _, j := range w.joints {
		j.PreStep(invDt, w.tunables, w.logger)
	}

	for iter := 0; iter < w.iterations; iter++ {
		w.arbiters.Each(func(_ ArbiterKey, a *Arbiter) {
			a.ApplyImpulse(w.tunables)
		})
		for _, j := range w.joints {
			j.ApplyImpulse()
		}
	}

	for _, body := range w.bodies {
		body.Position = body.Position.Add(body.Velocity.Scale(dt))
		body.Rotation += dt * body.AngularVelocity
		body.Force = Vec2{}
		body.Torque = 0
	}
}

// broadPhase is the O(n^2) pass over all unordered body pairs (i, j),
// i < j: static-static pairs are skipped entirely (two immovable bodies
// can never need a contact resolved between them, and would only waste
// an arbiter slot); every other pair is recollided from scratch each
// tick, merged into the existing arbiter if one is present, inserted
// fresh if contacts appeared where none were, and removed if contacts
// vanished.
func (w *World) broadPhase() {

	for i := 0; i < len(w.bodies); i++ {
		bi := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			bj := w.bodies[j]

			if bi.InvMass() == 0 && bj.InvMass() == 0 {
				continue
			}

			fresh, numContacts := NewArbiter(bi, bj)
			key := fresh.Key()

			if numContacts > 0 {
				if existing, ok := w.arbiters.Get(key); ok {
					existing.Update(fresh, w.tunables)
				} else {
					w.arbiters.Insert(key, fresh)
					if w.logger != nil {
						w.logger.Debug("contact begin: body %d <-> body %d", key.Lo, key.Hi)
					}
				}
			} else {
				w.arbiters.Remove(key)
			}
		}
	}
}
