// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

// MaxContactPoints is the maximum number of contact points the collider
// emits for a single box-box pair.
const MaxContactPoints = 2

// Contact is a single contact point within an Arbiter's manifold: its
// world position and normal, the solver's cached effective masses and
// bias, and the accumulated impulses that survive across ticks to seed
// the next tick's solve (warm starting).
type Contact struct {
	Position Vec2
	Normal   Vec2
	R1       Vec2
	R2       Vec2

	Separation float32

	Pn float32 // accumulated normal impulse
	Pt float32 // accumulated tangent impulse

	// Pnb is the accumulated normal impulse for position bias. It is kept
	// and warm-started like Pn/Pt for fidelity with box2d-lite, which
	// carries the same field, but no solver code path in this package
	// reads it. It is reserved for a split-impulse position-correction
	// variant that is not wired up here.
	Pnb float32

	MassNormal  float32
	MassTangent float32
	Bias        float32

	Feature Feature
}
