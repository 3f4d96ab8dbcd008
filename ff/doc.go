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

/*Package ff implements the MM2 force field for gomm2 structures.

The force field has 4 kinds of terms. Length, angle and torsion terms act on
chains of 2, 3 and 4 bonded atoms, and are built by walking the bond graph of
the structure. Their parameters come from tables keyed by element and
hybridization; pairs, triads and quartets missing from the tables get default
parameters (a soft spring, a rest angle given by the hybridization of the vertex,
and no torsion, respectively). Long-range (Van der Waals, and optionally
electrostatic) terms act on every pair of atoms that are not bonded and are not bonded
to a common atom. They are evaluated directly, without term objects.

	S := chem.NewStructure()
	//...add atoms
	M := ff.NewMM2(S)
	for i := 0; i < steps; i++ {
		if err := M.ComputeForces(); err != nil {
			//...
		}
		S.VerletStep(1.0)
	}

Energies are in aJ and forces in mdyn (aJ/A).
*/
package ff
