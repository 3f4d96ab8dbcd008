/*
 * conversion.go, part of gomm2.
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

import "math"

//This provides useful conversion factors and other constants
//gomm2 works in A for lengths, amu for masses, aJ for energies and mdyn (aJ/A) for forces.
//Times are given in fs.

//Conversions
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
	Kcal2AJ = 6.9477e-3 //kcal/mol to aJ per molecule
	AJ2Kcal = 1 / Kcal2AJ
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
)

//Others
const (
	//AccelConversion turns a force/mass in mdyn/amu into an acceleration in A/fs^2
	AccelConversion = 6.02214e-2

	//BondSlack is added to the sum of covalent radii to decide whether 2 atoms are bonded.
	BondSlack = 0.5

	//BruteForceLimit is the number of atoms below which bonds are inferred by testing all pairs.
	BruteForceLimit = 32

	//OctreeGranularity is the leaf half-side used for bond inference, slightly larger than a typical bond.
	OctreeGranularity = 2.0
)
