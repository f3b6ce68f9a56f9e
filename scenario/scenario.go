// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario deserializes a declarative description of bodies,
// joints, and engine configuration into a ready-to-step phys2d.World.
// It is data-to-World translation only: unlike the windowing/rendering
// demo assembly it is adapted from, it never opens a window, reads
// input, or draws anything, so it lives inside the library rather than
// across the host boundary.
package scenario

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/solidbox/phys2d/math2d"
	"github.com/solidbox/phys2d/phys2d"
	"gopkg.in/yaml.v2"
)

// BodySpec is the declarative form of a phys2d.Body.
type BodySpec struct {
	Name     string      `yaml:"name"`
	Width    math2d.Vec2 `yaml:"width"`
	Mass     float32     `yaml:"mass"`
	Position math2d.Vec2 `yaml:"position"`
	Rotation float32     `yaml:"rotation"`
	Friction *float32    `yaml:"friction,omitempty"`
}

// JointSpec is the declarative form of a phys2d.Joint, referencing its
// two bodies by their index into the Scenario's Bodies list.
type JointSpec struct {
	Body1  int         `yaml:"body1"`
	Body2  int         `yaml:"body2"`
	Anchor math2d.Vec2 `yaml:"anchor"`
}

// Scenario is a declarative World: a cast of bodies and joints plus the
// engine configuration to step them with.
type Scenario struct {
	Config phys2d.Config `yaml:"config"`
	Bodies []BodySpec    `yaml:"bodies"`
	Joints []JointSpec   `yaml:"joints"`
}

// Decode parses a YAML document into a Scenario and builds the World it
// describes. Malformed YAML or a joint referencing an out-of-range body
// index is a data-validation error, reported through the returned error
// rather than a panic, since scenario data routinely comes from a file
// on disk that a caller hasn't necessarily validated beforehand.
func Decode(data []byte) (*phys2d.World, error) {

	var s Scenario
	s.Config = phys2d.DefaultConfig()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parsing yaml: %w", err)
	}
	return s.Build()
}

// Load reads a full YAML document from r and builds the World it
// describes.
func Load(r io.Reader) (*phys2d.World, error) {

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading input: %w", err)
	}
	return Decode(data)
}

// Build constructs a *phys2d.World from this Scenario's bodies, joints,
// and configuration.
func (s *Scenario) Build() (*phys2d.World, error) {

	world := phys2d.NewWorldWithConfig(s.Config)

	bodies := make([]*phys2d.Body, len(s.Bodies))
	for i, spec := range s.Bodies {
		b := phys2d.NewBody(spec.Width, spec.Mass, spec.Position)
		b.Rotation = spec.Rotation
		b.Name = spec.Name
		if spec.Friction != nil {
			b.Friction = *spec.Friction
		}
		bodies[i] = b
		world.AddBody(b)
	}

	for i, spec := range s.Joints {
		if spec.Body1 < 0 || spec.Body1 >= len(bodies) || spec.Body2 < 0 || spec.Body2 >= len(bodies) {
			return nil, fmt.Errorf("scenario: joint %d references out-of-range body index (body1=%d, body2=%d, %d bodies defined)",
				i, spec.Body1, spec.Body2, len(bodies))
		}
		world.AddJoint(bodies[spec.Body1], bodies[spec.Body2], spec.Anchor)
	}

	return world, nil
}
