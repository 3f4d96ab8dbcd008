/*
 * clash.go, part of gomm2.
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

//Package clash finds close contacts: pairs of atoms that are neither bonded nor bonded to
//a common atom, and are closer than the sum of their Van der Waals radii allows.
package clash

import (
	"math"
	"sort"

	chem "github.com/rmera/gomm2"
	"github.com/rmera/gomm2/chemgraph"
	"github.com/rmera/gomm2/octree"
	v3 "github.com/rmera/gomm2/v3"
)

//DefaultScale is the fraction of the sum of VdW radii under which two atoms clash.
const DefaultScale = 0.75

//Contact is a pair of atoms closer than the scaled sum of their VdW radii.
type Contact struct {
	A, B     *chem.Atom
	Distance float64
	Overlap  float64 //scaled radii sum minus distance, always positive
}

//Structure is what the contact search needs: atoms, their bonds and a box around them.
//*chem.Structure implements it.
type Structure interface {
	chem.Bonder
	chem.Boxer
}

//excluded returns the 1-2 and 1-3 pairs of S, by index, lower index first.
func excluded(S Structure) (map[[2]int]bool, error) {
	bonds, err := S.InferBonds()
	if err != nil {
		return nil, err
	}
	G := chemgraph.New(S, bonds)
	ret := make(map[[2]int]bool, 3*len(bonds))
	ends := func(p []int) {
		i, j := p[0], p[len(p)-1]
		if i < j {
			ret[[2]int{i, j}] = true
		}
	}
	G.Chains(2, ends)
	G.Chains(3, ends)
	return ret, nil
}

//Contacts returns the close contacts in S for the given scale (DefaultScale if scale <= 0),
//largest overlap first.
func Contacts(S Structure, scale float64) ([]Contact, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	ex, err := excluded(S)
	if err != nil {
		return nil, err
	}
	box, err := S.BoundingBox()
	if err != nil {
		return nil, err
	}
	tree := octree.New[int](box, chem.OctreeGranularity)
	maxvdw := 0.0
	atoms := make([]*chem.Atom, S.Len())
	for i := range atoms {
		atoms[i] = S.Atom(i)
	}
	for i, a := range atoms {
		if err := tree.Insert(i, a.Pos); err != nil {
			return nil, err
		}
		maxvdw = math.Max(maxvdw, a.VdwRadius())
	}
	var ret []Contact
	for i, a := range atoms {
		for _, j := range tree.Query(v3.CubeAround(a.Pos, scale*(a.VdwRadius()+maxvdw))) {
			if j <= i || ex[[2]int{i, j}] {
				continue
			}
			b := atoms[j]
			d := a.Pos.Sub(b.Pos).Norm()
			if ov := scale*(a.VdwRadius()+b.VdwRadius()) - d; ov > 0 {
				ret = append(ret, Contact{A: a, B: b, Distance: d, Overlap: ov})
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Overlap != ret[j].Overlap {
			return ret[i].Overlap > ret[j].Overlap
		}
		if ret[i].A.ID() != ret[j].A.ID() {
			return ret[i].A.ID() < ret[j].A.ID()
		}
		return ret[i].B.ID() < ret[j].B.ID()
	})
	return ret, nil
}

//LowestDist returns the closest pair of atoms in S that are neither bonded
//nor bonded to a common atom. ok is false if there is no such pair. The overlap of
//the pair uses the plain sum of VdW radii, and is zero if the atoms don't overlap.
func LowestDist(S Structure) (c Contact, ok bool, err error) {
	ex, err := excluded(S)
	if err != nil {
		return c, false, err
	}
	c.Distance = math.Inf(1)
	for i := 0; i < S.Len(); i++ {
		for j := i + 1; j < S.Len(); j++ {
			if ex[[2]int{i, j}] {
				continue
			}
			a, b := S.Atom(i), S.Atom(j)
			if d := a.Pos.Sub(b.Pos).Norm(); d < c.Distance {
				c = Contact{A: a, B: b, Distance: d}
				ok = true
			}
		}
	}
	if ok {
		c.Overlap = math.Max(0, c.A.VdwRadius()+c.B.VdwRadius()-c.Distance)
	}
	return c, ok, nil
}
