/*
 * doc.go, part of gomm2.
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of the gomm2 library. It provides atoms, bonds
and structures, and the pieces needed to move a structure with a classical force field.

	**gomm2 Capabilities**

    Element table with covalent radii and MM2 van der Waals parameters for
	common "organic" elements.

    Bond inference from atomic positions, with a simple distance criterion.
	Large structures use an octree (package octree) to avoid testing every atom pair.
	The bond list is kept until the structure changes.

    Hybridization of atoms from the orders of their bonds.

    Position Verlet integration and steepest descent minimization, given
	a force field attached to the structure (see package ff for the MM2 force field).

    Region queries, extraction of the atoms in a region, rotation and translation.

Units: A for lengths, amu for masses, fs for times, aJ for energies and mdyn (aJ/A) for forces.
Energy parameters in tables are usually given in kcal/mol and converted with Kcal2AJ.

Many functions here panic instead of returning errors. They are "fundamental"
functions: if something goes wrong there (a nil atom, an index out of range) the
program is most likely wrong and should crash. Other errors are *CError values,
which wrap one of the Err* sentinels, so errors.Is can be used on them.
*/
package chem
