/*
 * geometric.go, part of gomm2.
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

package chem

import (
	"math"
	"sort"

	"github.com/rmera/gomm2/octree"
	v3 "github.com/rmera/gomm2/v3"
)

//boundingBox returns the smallest axis-aligned box containing all the atoms.
func boundingBox(atoms []*Atom) (v3.Box, error) {
	if len(atoms) == 0 {
		return v3.Box{}, NewError(ErrEmptyStructure, "boundingBox", "")
	}
	B := v3.Box{Min: atoms[0].Pos, Max: atoms[0].Pos}
	for _, a := range atoms[1:] {
		B.Min = B.Min.Min(a.Pos)
		B.Max = B.Max.Max(a.Pos)
	}
	return B, nil
}

//BoundingBox returns the smallest axis-aligned box containing all the atoms of the structure.
func (S *Structure) BoundingBox() (v3.Box, error) {
	B, err := boundingBox(S.atoms)
	return B, ErrDecorate(err, "Structure.BoundingBox")
}

//Center returns the geometric center of the structure.
func (S *Structure) Center() (v3.Vec, error) {
	if len(S.atoms) == 0 {
		return v3.Zero, NewError(ErrEmptyStructure, "Structure.Center", "")
	}
	c := v3.Zero
	for _, a := range S.atoms {
		c = c.Add(a.Pos)
	}
	return c.Scale(1 / float64(len(S.atoms))), nil
}

//Translate moves every atom by t. Previous positions move too, so the Verlet velocities are kept.
func (S *Structure) Translate(t v3.Vec) {
	for _, a := range S.atoms {
		a.Pos = a.Pos.Add(t)
		a.Prev = a.Prev.Add(t)
	}
}

//Rotate rotates every atom by q around the point about. Previous positions are rotated too.
func (S *Structure) Rotate(q v3.Quaternion, about v3.Vec) {
	for _, a := range S.atoms {
		a.Pos = q.Rotate(a.Pos.Sub(about)).Add(about)
		a.Prev = q.Rotate(a.Prev.Sub(about)).Add(about)
	}
}

//AtomsIn returns the atoms whose positions lie in the closed box region, in structure order.
func (S *Structure) AtomsIn(region v3.Box) []*Atom {
	box, err := boundingBox(S.atoms)
	if err != nil {
		return nil
	}
	tree := octree.New[int](box, OctreeGranularity)
	for i, a := range S.atoms {
		//the box contains every atom, so this can't fail.
		if err := tree.Insert(i, a.Pos); err != nil {
			panic("AtomsIn: " + err.Error())
		}
	}
	idx := tree.Query(region)
	sort.Ints(idx)
	ret := make([]*Atom, 0, len(idx))
	for _, i := range idx {
		ret = append(ret, S.atoms[i])
	}
	return ret
}

//Extract returns a new structure with copies of the atoms of S that lie in the region.
//The copies get new ids. The force field is not copied.
func (S *Structure) Extract(region v3.Box) *Structure {
	return S.copyOf(S.AtomsIn(region))
}

//Angle returns the angle, in radians, formed by the atoms a, b and c, with b as the vertex.
func Angle(a, b, c *Atom) float64 {
	return v3.Angle(a.Pos.Sub(b.Pos), c.Pos.Sub(b.Pos))
}

//Dihedral returns the dihedral angle, in radians, between the planes a-b-c and b-c-d.
//The result is in (-pi, pi].
func Dihedral(a, b, c, d *Atom) float64 {
	b1 := b.Pos.Sub(a.Pos)
	b2 := c.Pos.Sub(b.Pos)
	b3 := d.Pos.Sub(c.Pos)
	n1 := b1.Cross(b2)
	n2 := b2.Cross(b3)
	m := n1.Cross(b2.Unit())
	return math.Atan2(m.Dot(n2), n1.Dot(n2))
}
