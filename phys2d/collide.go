// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

// axis is one of the four candidate separating axes tested by Collide.
type axis int

const (
	faceAX axis = iota
	faceAY
	faceBX
	faceBY
)

// clipVertex is a vertex produced by the Sutherland-Hodgman clip, tagged
// with the Feature that will identify the contact point it becomes.
type clipVertex struct {
	v  Vec2
	fp Feature
}

// clipSegmentToLine clips the two-vertex segment vIn against the half
// plane {x : dot(normal, x) <= offset}, tagging any interpolated vertex
// with clipEdge per the box2d-lite convention: the vertex kept from v_in[0]
// (when it leads, i.e. distance0 > 0) gets its in_edge1 replaced and its
// in_edge2 cleared; the vertex kept from v_in[1] gets out_edge1 replaced
// and out_edge2 cleared.
func clipSegmentToLine(vIn [2]clipVertex, normal Vec2, offset float32, clipEdge EdgeNumber) ([MaxContactPoints]clipVertex, int) {

	var vOut [MaxContactPoints]clipVertex
	numOut := 0

	distance0 := normal.Dot(vIn[0].v) - offset
	distance1 := normal.Dot(vIn[1].v) - offset

	if distance0 <= 0 {
		vOut[numOut] = vIn[0]
		numOut++
	}
	if distance1 <= 0 {
		vOut[numOut] = vIn[1]
		numOut++
	}

	if distance0*distance1 < 0 {
		interp := distance0 / (distance0 - distance1)
		vOut[numOut].v = vIn[0].v.Add(vIn[1].v.Sub(vIn[0].v).Scale(interp))
		if distance0 > 0 {
			vOut[numOut].fp = vIn[0].fp
			vOut[numOut].fp.InEdge1 = clipEdge
			vOut[numOut].fp.InEdge2 = NoEdge
		} else {
			vOut[numOut].fp = vIn[1].fp
			vOut[numOut].fp.OutEdge1 = clipEdge
			vOut[numOut].fp.OutEdge2 = NoEdge
		}
		numOut++
	}

	return vOut, numOut
}

// computeIncidentEdge picks the edge of the incident box (half extents h,
// position pos, rotation rot) most anti-parallel to the reference normal,
// and returns its two endpoints in world space tagged with their edge2
// identifiers, per the fixed box numbering in feature.go.
func computeIncidentEdge(h Vec2, pos Vec2, rot Mat22, normal Vec2) [2]clipVertex {

	rotT := rot.Transpose()
	n := rotT.MulVec2(normal).Negate()
	nAbs := n.Abs()

	var c [2]clipVertex

	if nAbs.X > nAbs.Y {
		if n.X > 0 {
			c[0].v = Vec2{h.X, -h.Y}
			c[0].fp.InEdge2 = Edge3
			c[0].fp.OutEdge2 = Edge4

			c[1].v = Vec2{h.X, h.Y}
			c[1].fp.InEdge2 = Edge4
			c[1].fp.OutEdge2 = Edge1
		} else {
			c[0].v = Vec2{-h.X, h.Y}
			c[0].fp.InEdge2 = Edge1
			c[0].fp.OutEdge2 = Edge2

			c[1].v = Vec2{-h.X, -h.Y}
			c[1].fp.InEdge2 = Edge2
			c[1].fp.OutEdge2 = Edge3
		}
	} else {
		if n.Y > 0 {
			c[0].v = Vec2{h.X, h.Y}
			c[0].fp.InEdge2 = Edge4
			c[0].fp.OutEdge2 = Edge1

			c[1].v = Vec2{-h.X, h.Y}
			c[1].fp.InEdge2 = Edge1
			c[1].fp.OutEdge2 = Edge2
		} else {
			c[0].v = Vec2{-h.X, -h.Y}
			c[0].fp.InEdge2 = Edge2
			c[0].fp.OutEdge2 = Edge3

			c[1].v = Vec2{h.X, -h.Y}
			c[1].fp.InEdge2 = Edge3
			c[1].fp.OutEdge2 = Edge4
		}
	}

	c[0].v = pos.Add(rot.MulVec2(c[0].v))
	c[1].v = pos.Add(rot.MulVec2(c[1].v))
	return c
}

const (
	relativeTol float32 = 0.95
	absoluteTol float32 = 0.01
)

// Collide runs box-vs-box SAT followed by Sutherland-Hodgman clipping of
// the incident edge against the reference face's side planes, writing up
// to MaxContactPoints Contacts and returning how many were written.
//
// The contacts slice must have length >= MaxContactPoints; only the
// leading n entries (n = the return value) are meaningful.
func Collide(contacts []Contact, bodyA, bodyB *Body) int {

	hA := bodyA.Width.Scale(0.5)
	hB := bodyB.Width.Scale(0.5)

	posA := bodyA.Position
	posB := bodyB.Position

	rotA := bodyA.Rot()
	rotB := bodyB.Rot()

	rotAT := rotA.Transpose()
	rotBT := rotB.Transpose()

	dp := posB.Sub(posA)
	dA := rotAT.MulVec2(dp)
	dB := rotBT.MulVec2(dp)

	c := rotAT.Mul(rotB)
	absC := c.Abs()
	absCT := absC.Transpose()

	faceA := dA.Abs().Sub(hA).Sub(absC.MulVec2(hB))
	if faceA.X > 0 || faceA.Y > 0 {
		return 0
	}
	faceB := dB.Abs().Sub(absCT.MulVec2(hA)).Sub(hB)
	if faceB.X > 0 || faceB.Y > 0 {
		return 0
	}

	// Find best axis.
	ax := faceAX
	separation := faceA.X
	var normal Vec2
	if dA.X > 0 {
		normal = rotA.Col1
	} else {
		normal = rotA.Col1.Negate()
	}

	if faceA.Y > relativeTol*separation+absoluteTol*hA.Y {
		ax = faceAY
		separation = faceA.Y
		if dA.Y > 0 {
			normal = rotA.Col2
		} else {
			normal = rotA.Col2.Negate()
		}
	}

	if faceB.X > relativeTol*separation+absoluteTol*hB.X {
		ax = faceBX
		separation = faceB.X
		if dB.X > 0 {
			normal = rotB.Col1
		} else {
			normal = rotB.Col1.Negate()
		}
	}

	if faceB.Y > relativeTol*separation+absoluteTol*hB.Y {
		ax = faceBY
		if dB.Y > 0 {
			normal = rotB.Col2
		} else {
			normal = rotB.Col2.Negate()
		}
	}

	// Set up clipping plane data based on the separating axis.
	var frontNormal, sideNormal Vec2
	var incidentEdge [2]clipVertex
	var front, negSide, posSide float32
	var negEdge, posEdge EdgeNumber

	switch ax {
	case faceAX:
		frontNormal = normal
		front = posA.Dot(frontNormal) + hA.X
		sideNormal = rotA.Col2
		side := posA.Dot(sideNormal)
		negSide = -side + hA.Y
		posSide = side + hA.Y
		negEdge = Edge3
		posEdge = Edge1
		incidentEdge = computeIncidentEdge(hB, posB, rotB, frontNormal)
	case faceAY:
		frontNormal = normal
		front = posA.Dot(frontNormal) + hA.Y
		sideNormal = rotA.Col1
		side := posA.Dot(sideNormal)
		negSide = -side + hA.X
		posSide = side + hA.X
		negEdge = Edge2
		posEdge = Edge4
		incidentEdge = computeIncidentEdge(hB, posB, rotB, frontNormal)
	case faceBX:
		frontNormal = normal.Negate()
		front = posB.Dot(frontNormal) + hB.X
		sideNormal = rotB.Col2
		side := posB.Dot(sideNormal)
		negSide = -side + hB.Y
		posSide = side + hB.Y
		negEdge = Edge3
		posEdge = Edge1
		incidentEdge = computeIncidentEdge(hA, posA, rotA, frontNormal)
	case faceBY:
		frontNormal = normal.Negate()
		front = posB.Dot(frontNormal) + hB.Y
		sideNormal = rotB.Col1
		side := posB.Dot(sideNormal)
		negSide = -side + hB.X
		posSide = side + hB.X
		negEdge = Edge2
		posEdge = Edge4
		incidentEdge = computeIncidentEdge(hA, posA, rotA, frontNormal)
	}

	// Clip to negative box side 1.
	clipPoints1, np := clipSegmentToLine(incidentEdge, sideNormal.Negate(), negSide, negEdge)
	if np < 2 {
		return 0
	}

	// Clip to positive box side 1.
	clipPoints2, np := clipSegmentToLine(clipPoints1, sideNormal, posSide, posEdge)
	if np < 2 {
		return 0
	}

	numContacts := 0
	for i := 0; i < MaxContactPoints; i++ {
		sep := frontNormal.Dot(clipPoints2[i].v) - front
		if sep <= 0 {
			contacts[numContacts].Separation = sep
			contacts[numContacts].Normal = normal
			contacts[numContacts].Position = clipPoints2[i].v.Sub(frontNormal.Scale(sep))
			feature := clipPoints2[i].fp
			if ax == faceBX || ax == faceBY {
				feature = feature.Flip()
			}
			contacts[numContacts].Feature = feature
			numContacts++
		}
	}

	return numContacts
}
