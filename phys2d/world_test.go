// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
)

func newTestWorld() *World {

	return NewWorld(Vec2{0, -10}, 10)
}

func TestWorldTwoBoxRest(t *testing.T) {

	w := newTestWorld()
	floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -5})
	box := NewBody(Vec2{2, 2}, 10, Vec2{0, 0})
	w.AddBody(floor)
	w.AddBody(box)

	const dt = float32(1.0 / 60.0)
	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	assert.GreaterOrEqual(t, box.Position.Y, float32(-4.01))
	assert.LessOrEqual(t, box.Position.Y, float32(-3.99))
	assert.Less(t, float32(math.Abs(float64(box.Velocity.Y))), float32(0.05))
}

func TestWorldVerticalStackStability(t *testing.T) {

	w := newTestWorld()
	floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -1})
	w.AddBody(floor)

	var boxes []*Body
	for y := float32(0); y <= 2; y++ {
		b := NewBody(Vec2{1, 1}, 1, Vec2{0, y})
		w.AddBody(b)
		boxes = append(boxes, b)
	}
	top := boxes[len(boxes)-1]

	const dt = float32(1.0 / 60.0)
	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	assert.GreaterOrEqual(t, top.Position.Y, float32(1.9), "top box settled at %# v", pretty.Formatter(top))
	assert.LessOrEqual(t, top.Position.Y, float32(2.1))
	assert.GreaterOrEqual(t, top.Rotation, float32(-0.1))
	assert.LessOrEqual(t, top.Rotation, float32(0.1))
}

func TestWorldFrictionLadderIsMonotone(t *testing.T) {

	frictions := []float32{0.75, 0.5, 0.35, 0.1, 0.0}

	w := NewWorld(Vec2{0, -10}, 10)
	slab := NewBody(Vec2{30, 1}, UnmovableMass, Vec2{0, -2})
	slab.Rotation = -0.25
	w.AddBody(slab)

	boxes := make([]*Body, len(frictions))
	for i, f := range frictions {
		b := NewBody(Vec2{1, 1}, 1, Vec2{float32(i)*1.5 - 3, 1})
		b.Friction = f
		w.AddBody(b)
		boxes[i] = b
	}

	startX := make([]float32, len(boxes))
	for i, b := range boxes {
		startX[i] = b.Position.X
	}

	const dt = float32(1.0 / 60.0)
	for i := 0; i < 180; i++ {
		w.Step(dt)
	}

	displacement := make([]float32, len(boxes))
	for i, b := range boxes {
		displacement[i] = b.Position.X - startX[i]
	}

	for i := 1; i < len(displacement); i++ {
		assert.Greater(t, displacement[i], displacement[i-1],
			"displacement must be strictly monotone in friction:\n%# v", pretty.Formatter(displacement))
	}
}

func TestWorldSeparationKeepsArbitersEmpty(t *testing.T) {

	w := newTestWorld()
	a := NewBody(Vec2{1, 1}, 1, Vec2{-5, 0})
	b := NewBody(Vec2{1, 1}, 1, Vec2{5, 0})
	w.AddBody(a)
	w.AddBody(b)

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
		assert.Equal(t, 0, w.arbiters.Len())
	}
}

func TestWorldStaticStaticNeverArbitrates(t *testing.T) {

	w := newTestWorld()
	a := NewBody(Vec2{2, 2}, UnmovableMass, Vec2{0, 0})
	b := NewBody(Vec2{2, 2}, UnmovableMass, Vec2{0.5, 0.5})
	w.AddBody(a)
	w.AddBody(b)

	w.Step(1.0 / 60.0)
	assert.Equal(t, 0, w.arbiters.Len())
}

func TestWorldStaticBodyNeverMoves(t *testing.T) {

	w := newTestWorld()
	floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -5})
	box := NewBody(Vec2{2, 2}, 10, Vec2{0, 0})
	w.AddBody(floor)
	w.AddBody(box)

	startPos := floor.Position
	startRot := floor.Rotation
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	assert.Equal(t, startPos, floor.Position)
	assert.Equal(t, startRot, floor.Rotation)
}

func TestWorldZeroStepIsIdempotent(t *testing.T) {

	w := newTestWorld()
	box := NewBody(Vec2{2, 2}, 10, Vec2{0, 0})
	w.AddBody(box)

	before := *box
	w.Step(0)

	assert.Equal(t, before.Position, box.Position)
	assert.Equal(t, before.Velocity, box.Velocity)
	assert.Equal(t, before.Rotation, box.Rotation)
}

func TestWorldWarmStartSpeedsUpConvergence(t *testing.T) {

	buildStack := func(warmStart bool) *World {

		cfg := DefaultConfig()
		cfg.Gravity = Vec2{0, -10}
		cfg.Iterations = 10
		cfg.WarmStarting = warmStart

		w := NewWorldWithConfig(cfg)
		floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -1})
		w.AddBody(floor)
		for y := float32(0); y <= 2; y++ {
			w.AddBody(NewBody(Vec2{1, 1}, 1, Vec2{0, y}))
		}
		return w
	}

	const dt = float32(1.0 / 60.0)

	withWarm := buildStack(true)
	withoutWarm := buildStack(false)

	for i := 0; i < 99; i++ {
		withWarm.Step(dt)
		withoutWarm.Step(dt)
	}

	avgSpeed := func(w *World) float32 {
		var total float32
		for _, b := range w.Bodies() {
			if b.IsStatic() {
				continue
			}
			total += b.Velocity.Length()
		}
		return total / float32(len(w.Bodies())-1)
	}

	// Step 100: take one more full step on each world (with warm starting,
	// its pre-step re-injects the previous tick's impulses) and compare the
	// dynamic boxes' average speed right after.
	withWarm.Step(dt)
	withoutWarm.Step(dt)

	assert.LessOrEqual(t, avgSpeed(withWarm), avgSpeed(withoutWarm)+1e-4,
		"warm-started stack should not be moving faster on average than a cold solve")
}

func TestWorldClearDropsBodiesJointsArbiters(t *testing.T) {

	w := newTestWorld()
	floor := NewBody(Vec2{20, 2}, UnmovableMass, Vec2{0, -5})
	box := NewBody(Vec2{2, 2}, 10, Vec2{0, -4})
	w.AddBody(floor)
	w.AddBody(box)
	w.AddJoint(floor, box, Vec2{0, -4})

	w.Step(1.0 / 60.0)
	w.Clear()

	assert.Empty(t, w.Bodies())
	assert.Empty(t, w.Joints())
	assert.Equal(t, 0, w.arbiters.Len())
}
