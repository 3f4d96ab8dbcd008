/*
 * bonds.go, part of gomm2.
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
	"fmt"
	"sort"

	"github.com/rmera/gomm2/octree"
	v3 "github.com/rmera/gomm2/v3"
	"go.uber.org/zap"
)

//Bond is a covalent bond between 2 atoms. The atoms never change;
//the order can be 1, 2 or 3.
type Bond struct {
	at1   *Atom
	at2   *Atom
	order int
}

//NewBond returns a bond of the given order between a and b. It panics if
//a or b are nil or the same atom.
func NewBond(a, b *Atom, order int) (*Bond, error) {
	if a == nil || b == nil || a == b {
		panic("NewBond: nil atom or atom bonded to itself")
	}
	B := &Bond{at1: a, at2: b, order: 1}
	if err := B.SetOrder(order); err != nil {
		return nil, ErrDecorate(err, "NewBond")
	}
	return B, nil
}

//Atoms returns the 2 atoms in the bond.
func (B *Bond) Atoms() (*Atom, *Atom) {
	return B.at1, B.at2
}

//Order returns the bond order.
func (B *Bond) Order() int {
	return B.order
}

//SetOrder sets the bond order to o, which must be 1, 2 or 3.
//The order set is lost when the bonds are inferred again.
func (B *Bond) SetOrder(o int) error {
	if o < 1 || o > 3 {
		return NewError(ErrInvalidOrder, "Bond.SetOrder", "%d", o)
	}
	B.order = o
	return nil
}

//Contains returns true if a is one of the atoms in the bond.
func (B *Bond) Contains(a *Atom) bool {
	return B.at1 == a || B.at2 == a
}

//OtherAtom returns the atom bonded to origin by B.
func (B *Bond) OtherAtom(origin *Atom) *Atom {
	if origin == B.at1 {
		return B.at2
	}
	if origin == B.at2 {
		return B.at1
	}
	panic("OtherAtom: The origin atom given is not present in the bond!") //a programming error, so a panic is warranted.
}

//Length returns the current distance between the bonded atoms.
func (B *Bond) Length() float64 {
	return B.at1.Pos.Dist(B.at2.Pos)
}

func (B *Bond) String() string {
	return fmt.Sprintf("%s-%s(%d)", B.at1, B.at2, B.order)
}

//bonded tells whether a and b are close enough to be bonded, using the
//simple distance criterion of DOI:10.1186/1758-2946-3-33
func bonded(a, b *Atom) bool {
	return a.Pos.Dist(b.Pos) < a.CovRadius()+b.CovRadius()+BondSlack
}

//InferBonds returns the bonds in the structure, inferred from the atomic positions.
//All the bonds are single. The list is computed once and kept until an atom
//is added to or removed from the structure (or Invalidate is called); the same slice
//is returned in the meantime.
func (S *Structure) InferBonds() ([]*Bond, error) {
	if S.bondsValid {
		return S.bonds, nil
	}
	if len(S.atoms) == 0 {
		return nil, NewError(ErrEmptyStructure, "Structure.InferBonds", "")
	}
	var bonds []*Bond
	var err error
	useTree := len(S.atoms) >= BruteForceLimit
	if useTree {
		bonds, err = octreeBonds(S.atoms)
		if err != nil {
			return nil, ErrDecorate(err, "Structure.InferBonds")
		}
	} else {
		bonds = bruteForceBonds(S.atoms)
	}
	S.bonds = bonds
	S.bondsValid = true
	S.logger.Debug("bonds inferred", zap.Int("atoms", len(S.atoms)), zap.Int("bonds", len(bonds)), zap.Bool("octree", useTree))
	return bonds, nil
}

//bruteForceBonds tests every pair of atoms. Bonds are returned with the
//index of the first atom ascending, then the index of the second.
func bruteForceBonds(atoms []*Atom) []*Bond {
	bonds := make([]*Bond, 0, len(atoms))
	for i, a := range atoms {
		for _, b := range atoms[i+1:] {
			if bonded(a, b) {
				bonds = append(bonds, &Bond{at1: a, at2: b, order: 1})
			}
		}
	}
	return bonds
}

//octreeBonds only tests the pairs found by a region query around each atom.
//The bonds come in the same order as in bruteForceBonds.
func octreeBonds(atoms []*Atom) ([]*Bond, error) {
	box, err := boundingBox(atoms)
	if err != nil {
		return nil, err
	}
	tree := octree.New[int](box, OctreeGranularity)
	maxcov := 0.0
	for i, a := range atoms {
		if err := tree.Insert(i, a.Pos); err != nil {
			return nil, err
		}
		maxcov = max(maxcov, a.CovRadius())
	}
	bonds := make([]*Bond, 0, len(atoms))
	for i, a := range atoms {
		near := tree.Query(v3.CubeAround(a.Pos, a.CovRadius()+maxcov+BondSlack))
		sort.Ints(near)
		for _, j := range near {
			if j <= i {
				continue
			}
			if bonded(a, atoms[j]) {
				bonds = append(bonds, &Bond{at1: a, at2: atoms[j], order: 1})
			}
		}
	}
	return bonds, nil
}

//BondsOf returns the bonds in the list that contain a.
func BondsOf(a *Atom, bonds []*Bond) []*Bond {
	var ret []*Bond
	for _, b := range bonds {
		if b.Contains(a) {
			ret = append(ret, b)
		}
	}
	return ret
}
