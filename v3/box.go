/*
 * box.go, part of gomm2.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gomm2 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package v3

import "gonum.org/v1/gonum/spatial/r3"

//Box is a closed axis-aligned region of space, given by its minimum and
//maximum corners.
type Box struct {
	Min, Max Vec
}

//NewBox returns the box spanned by the corners a and b, in any order.
func NewBox(a, b Vec) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

//CubeAround returns the cube with the given center and half-side.
func CubeAround(center Vec, half float64) Box {
	h := Vec{half, half, half}
	return Box{Min: center.Sub(h), Max: center.Add(h)}
}

func (B Box) r3() r3.Box {
	return r3.Box{Min: r3.Vec(B.Min), Max: r3.Vec(B.Max)}
}

//Contains returns true if p lies inside B or on its surface.
//Unlike r3.Box.Contains, flat boxes (zero volume) are handled, since the
//bounding box of a planar molecule is one.
func (B Box) Contains(p Vec) bool {
	return B.Min.X <= p.X && p.X <= B.Max.X &&
		B.Min.Y <= p.Y && p.Y <= B.Max.Y &&
		B.Min.Z <= p.Z && p.Z <= B.Max.Z
}

//Size returns the edge lengths of B.
func (B Box) Size() Vec {
	return Vec(B.r3().Size())
}

//Center returns the center of B.
func (B Box) Center() Vec {
	return Vec(B.r3().Center())
}

//Corners returns the 8 vertices of B: the 4 with Z = B.Min.Z counterclockwise from
//B.Min, then the 4 with Z = B.Max.Z in the same order (so B.Max is number 6).
func (B Box) Corners() [8]Vec {
	var ret [8]Vec
	for i, v := range B.r3().Vertices() {
		ret[i] = Vec(v)
	}
	return ret
}

//Union returns the smallest box containing both B and A.
func (B Box) Union(A Box) Box {
	return Box{Min: B.Min.Min(A.Min), Max: B.Max.Max(A.Max)}
}

//Expand returns B grown by margin in every direction.
func (B Box) Expand(margin float64) Box {
	m := Vec{margin, margin, margin}
	return Box{Min: B.Min.Sub(m), Max: B.Max.Add(m)}
}

//Relation describes how a box relates to a region.
type Relation int

const (
	Disjoint Relation = iota //No common point.
	Inside                   //Entirely inside the region.
	Overlaps                 //Partly inside.
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Inside:
		return "inside"
	default:
		return "overlaps"
	}
}

//Relation returns how A relates to the region B.
func (B Box) Relation(A Box) Relation {
	if A.Max.X < B.Min.X || A.Min.X > B.Max.X ||
		A.Max.Y < B.Min.Y || A.Min.Y > B.Max.Y ||
		A.Max.Z < B.Min.Z || A.Min.Z > B.Max.Z {
		return Disjoint
	}
	if B.Contains(A.Min) && B.Contains(A.Max) {
		return Inside
	}
	return Overlaps
}
