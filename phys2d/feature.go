// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

// EdgeNumber identifies one of a box's four edges, or the absence of one.
//
// Box vertex and edge numbering:
//
//	        ^ y
//	        |
//	        e1
//	   v2 ------ v1
//	    |        |
//	 e2 |        | e4  --> x
//	    |        |
//	   v3 ------ v4
//	        e3
type EdgeNumber int

// The edge identifiers, matching the fixed box numbering above.
const (
	NoEdge EdgeNumber = iota
	Edge1
	Edge2
	Edge3
	Edge4
)

// Feature is a quadruple of edge identifiers tagging which reference and
// incident edges produced a contact point. It is the only linkage the
// solver has between a contact generated this tick and one generated
// last tick, and therefore the only thing that makes warm starting work.
type Feature struct {
	InEdge1  EdgeNumber
	OutEdge1 EdgeNumber
	InEdge2  EdgeNumber
	OutEdge2 EdgeNumber
}

// Flip swaps the (in_edge1, out_edge1) and (in_edge2, out_edge2) pairs,
// used when the reference face belongs to an arbiter's second body so
// that "edge1" always refers to the first body's edge.
func (f Feature) Flip() Feature {

	return Feature{
		InEdge1:  f.InEdge2,
		OutEdge1: f.OutEdge2,
		InEdge2:  f.InEdge1,
		OutEdge2: f.OutEdge1,
	}
}
