/*
 * chem.go, part of gomm2.
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
	"sync/atomic"

	v3 "github.com/rmera/gomm2/v3"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//IDAllocator hands out increasing atom ids. It is safe for concurrent use,
//so several structures can share one allocator to get ids unique among all of them.
type IDAllocator struct {
	next atomic.Int64
}

//NewIDAllocator returns an allocator whose first id is start.
func NewIDAllocator(start int64) *IDAllocator {
	A := new(IDAllocator)
	A.next.Store(start)
	return A
}

//Next returns a new id.
func (A *IDAllocator) Next() int64 {
	return A.next.Add(1) - 1
}

//Hybridization is the bonding geometry class of an atom.
type Hybridization int

const (
	SP3 Hybridization = iota
	SP2
	SP
	NONE
)

func (H Hybridization) String() string {
	switch H {
	case SP3:
		return "SP3"
	case SP2:
		return "SP2"
	case SP:
		return "SP"
	case NONE:
		return "NONE"
	}
	return fmt.Sprintf("Hybridization(%d)", int(H))
}

//Atom is an atom in a structure. The position, previous position (for Verlet integration)
//and force are kept in the atom itself. The element and id never change after creation.
type Atom struct {
	Pos        v3.Vec
	Prev       v3.Vec
	Force      v3.Vec
	Charge     int     //ionic charge
	FracCharge float64 //fractional charge from bond dipoles
	id         int64
	element    *Element
	hyb        Hybridization
}

//NewAtom returns a new atom of element e at pos, with an id from ids.
//It panics if e or ids are nil.
func NewAtom(ids *IDAllocator, e *Element, pos v3.Vec) *Atom {
	if e == nil || ids == nil {
		panic("NewAtom: nil element or id allocator")
	}
	A := &Atom{Pos: pos, Prev: pos, id: ids.Next(), element: e}
	A.hyb = defaultHybridization(e)
	return A
}

func (A *Atom) ID() int64 { return A.id }
func (A *Atom) Element() *Element { return A.element }
func (A *Atom) Symbol() string { return A.element.Symbol }
func (A *Atom) Name() string { return A.element.Name }
func (A *Atom) Number() int { return A.element.Number }
func (A *Atom) Mass() float64 { return A.element.Mass }
func (A *Atom) CovRadius() float64 { return A.element.CovRad }
func (A *Atom) VdwRadius() float64 { return A.element.VdwRad }
func (A *Atom) VdwEnergy() float64 { return A.element.VdwEnergy }
func (A *Atom) Hybridization() Hybridization { return A.hyb }

//AddForce adds f to the force accumulated on the atom.
func (A *Atom) AddForce(f v3.Vec) {
	A.Force = A.Force.Add(f)
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.element.Symbol, A.id)
}

//copyAs returns a copy of A with a new id. Force and fractional charge are not copied.
func (A *Atom) copyAs(ids *IDAllocator) *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := NewAtom(ids, A.element, A.Pos)
	n.Prev = A.Prev
	n.Charge = A.Charge
	n.hyb = A.hyb
	return n
}

func defaultHybridization(e *Element) Hybridization {
	switch e.Symbol {
	case "H", "F", "Cl", "Br", "I":
		return NONE
	}
	return SP3
}

//Rehybridize sets the hybridization of A from the orders of the bonds in the
//list that contain A. Bonds not containing A are ignored.
func (A *Atom) Rehybridize(bonds []*Bond) {
	var doubles, triples int
	for _, b := range bonds {
		if !b.Contains(A) {
			continue
		}
		switch b.order {
		case 2:
			doubles++
		case 3:
			triples++
		}
	}
	switch A.element.Symbol {
	case "H", "F", "Cl", "Br", "I":
		A.hyb = NONE
	case "O", "S":
		switch {
		case triples > 0:
			A.hyb = SP
		case doubles > 0:
			A.hyb = SP2
		default:
			A.hyb = SP3
		}
	default: //C, N and their group mates
		switch {
		case triples > 0, doubles >= 2:
			A.hyb = SP
		case doubles == 1:
			A.hyb = SP2
		default:
			A.hyb = SP3
		}
	}
}
