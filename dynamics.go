/*
 * dynamics.go, part of gomm2.
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

//VerletPrep sets the previous position of every atom to its current position.
//Call it once before starting a Verlet integration.
func (S *Structure) VerletPrep() {
	for _, a := range S.atoms {
		a.Prev = a.Pos
	}
}

//VerletStep advances every atom one step of dt fs with the position Verlet
//algorithm, using the forces already accumulated in the atoms, which are then zeroed.
//The step never computes forces: call the force field's ComputeForces before each step.
func (S *Structure) VerletStep(dt float64) {
	dt2 := dt * dt * AccelConversion
	for _, a := range S.atoms {
		accel := a.Force.Scale(dt2 / a.Mass())
		next := a.Pos.Scale(2).Sub(a.Prev).Add(accel)
		a.Prev = a.Pos
		a.Pos = next
		a.Force = v3.Zero
	}
}

//EnergyMinimizeStep computes the forces with the attached force field and moves every atom
//by step A along its force. Atoms with zero force stay where they are. This is a plain
//steepest descent step, without line search. The forces are left in the atoms.
func (S *Structure) EnergyMinimizeStep(step float64) error {
	if S.ff == nil {
		return NewError(ErrNoForceField, "Structure.EnergyMinimizeStep", "")
	}
	if err := S.ff.ComputeForces(); err != nil {
		return ErrDecorate(err, "Structure.EnergyMinimizeStep")
	}
	for _, a := range S.atoms {
		if a.Force.IsZero() {
			continue
		}
		a.Pos = a.Pos.Add(a.Force.Unit().Scale(step))
	}
	return nil
}
