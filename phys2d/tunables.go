// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "github.com/solidbox/phys2d/math2d"

// Tunables holds the three flags that govern the solver's
// fidelity/performance trade-off. Erin Catto's box2d-lite exposes these
// as process-wide globals (ACCUMULATE_IMPULSES, WARM_STARTING,
// POSITION_CORRECTION); here they're immutable configuration carried on
// the World instead, so multiple Worlds in the same process can run
// with different settings without stepping on each other.
type Tunables struct {
	// AccumulateImpulses: if true, Pn/Pt accumulate across solver
	// iterations and across ticks and are warm-started; if false, each
	// solve starts fresh from zero.
	AccumulateImpulses bool

	// WarmStarting: if true, arbiter merges and joint pre-steps carry
	// forward the previous tick's accumulated impulse; if false,
	// impulses are reset to zero at each pre-step.
	WarmStarting bool

	// PositionCorrection: if true, Baumgarte bias is computed with
	// biasFactor = 0.2; if false, bias is always zero.
	PositionCorrection bool
}

// DefaultTunables returns the reference engine's defaults: all three
// flags enabled.
func DefaultTunables() Tunables {

	return Tunables{
		AccumulateImpulses: true,
		WarmStarting:       true,
		PositionCorrection: true,
	}
}

// Config bundles Tunables with the remaining per-World construction
// parameters (iteration count, gravity) so the whole tuning surface can
// be loaded from a single YAML document by the scenario package.
type Config struct {
	Tunables   `yaml:",inline"`
	Iterations int        `yaml:"iterations"`
	Gravity    math2d.Vec2 `yaml:"gravity"`
}

// DefaultConfig returns the reference engine's defaults: 10 iterations,
// gravity (0, -10), all tunables enabled.
func DefaultConfig() Config {

	return Config{
		Tunables:   DefaultTunables(),
		Iterations: 10,
		Gravity:    math2d.Vec2{X: 0, Y: -10},
	}
}
