/*
 * interfaces.go, part of gomm2.
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

import v3 "github.com/rmera/gomm2/v3"

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Bonder is an Atomer that can also infer the bonds among its atoms.
type Bonder interface {
	Atomer

	//InferBonds returns the current bond list.
	InferBonds() ([]*Bond, error)
}

// Boxer can return an axis-aligned box containing all its atoms.
type Boxer interface {
	BoundingBox() (v3.Box, error)
}

// ForceField is what a Structure needs from a force field. The structure calls StructureChanged
// every time an atom is added or removed. Who drives the simulation calls ComputeForces once per step;
// the structure only calls it itself for EnergyMinimizeStep.
type ForceField interface {
	//StructureChanged tells the force field that its term list is no longer valid.
	StructureChanged()

	//ComputeForces zeroes the forces on all atoms of the structure and accumulates
	//the force field's forces on them.
	ComputeForces() error
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up. Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	Critical() bool
}
