/*
 * longrange.go, part of gomm2.
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

package ff

import (
	"math"

	chem "github.com/rmera/gomm2"
	v3 "github.com/rmera/gomm2/v3"
	"github.com/sourcegraph/conc"
)

const (
	vdwForceFactor = 0.012 //dE/dr = -0.012*eps*s^7*(s^6-1), s=r0/r
	//Coulomb constant in aJ*A/e^2
	coulomb    = 332.0637 * chem.Kcal2AJ
	dielectric = 1.5
)

//pairKey identifies an unordered pair of atoms.
type pairKey [2]int64

func keyOf(a, b *chem.Atom) pairKey {
	i, j := a.ID(), b.ID()
	if i > j {
		i, j = j, i
	}
	return pairKey{i, j}
}

//vdw returns the Van der Waals energy between a and b, and the force on a.
//The force on b is the opposite.
func vdw(a, b *chem.Atom, r12 v3.Vec, r float64) (float64, v3.Vec) {
	r0 := a.VdwRadius() + b.VdwRadius()
	eps := 0.5 * (a.VdwEnergy() + b.VdwEnergy())
	s := r0 / r
	s6 := s * s * s * s * s * s
	de := -vdwForceFactor * eps * s * s6 * (s6 - 1)
	e := 0.001 * eps * r0 * (s6*s6 - 2*s6)
	return e, r12.Scale(-de / r)
}

//electrostatic returns the Coulomb energy between the fractional charges of a and b,
//and the force on a.
func electrostatic(a, b *chem.Atom, r12 v3.Vec, r float64) (float64, v3.Vec) {
	qq := a.FracCharge * b.FracCharge
	if qq == 0 {
		return 0, v3.Zero
	}
	e := coulomb * qq / (dielectric * r)
	//-dE/dr = e/r
	return e, r12.Scale(e / (r * r))
}

//pair returns the long-range energy and the force on a, for the pair a-b.
func (M *MM2) pair(a, b *chem.Atom) (float64, v3.Vec) {
	r12 := a.Pos.Sub(b.Pos)
	r := r12.Norm()
	if r < appzero {
		return 0, v3.Zero
	}
	e, f := vdw(a, b, r12, r)
	if M.electrostatics {
		ee, fe := electrostatic(a, b, r12, r)
		e += ee
		f = f.Add(fe)
	}
	return e, f
}

//longRangeRows accumulates in acc the forces for the pairs (i,j), j>i, with i = first, first+stride...
//It returns the energy of those pairs.
func (M *MM2) longRangeRows(atoms []*chem.Atom, first, stride int, acc []v3.Vec) float64 {
	energy := 0.0
	for i := first; i < len(atoms); i += stride {
		a := atoms[i]
		for j := i + 1; j < len(atoms); j++ {
			b := atoms[j]
			if _, ok := M.excluded[keyOf(a, b)]; ok {
				continue
			}
			e, f := M.pair(a, b)
			energy += e
			acc[i] = acc[i].Add(f)
			acc[j] = acc[j].Sub(f)
		}
	}
	return energy
}

//longRange evaluates every pair of atoms not excluded, and returns the total energy
//and the force on each atom. With more than one worker, rows are dealt
//to the workers in turns, and each worker keeps its own forces.
func (M *MM2) longRange(atoms []*chem.Atom) (float64, []v3.Vec) {
	nw := M.workers
	if nw > len(atoms) {
		nw = len(atoms)
	}
	if nw <= 1 {
		acc := make([]v3.Vec, len(atoms))
		return M.longRangeRows(atoms, 0, 1, acc), acc
	}
	accs := make([][]v3.Vec, nw)
	energies := make([]float64, nw)
	var wg conc.WaitGroup
	for w := 0; w < nw; w++ {
		accs[w] = make([]v3.Vec, len(atoms))
		wg.Go(func() {
			energies[w] = M.longRangeRows(atoms, w, nw, accs[w])
		})
	}
	wg.Wait()
	total := accs[0]
	energy := energies[0]
	for w := 1; w < nw; w++ {
		energy += energies[w]
		for i, f := range accs[w] {
			total[i] = total[i].Add(f)
		}
	}
	return energy, total
}

//debyeToEA turns a dipole in Debye into e*A.
const debyeToEA = 1 / 4.803

//AssignFractionalCharges sets the fractional charge of every atom in at from the
//dipoles of the bonds that contain it. Each bond with a known dipole mu puts +-mu/r0
//(in e, with r0 the rest length of the bond) on its ends. Hybridizations must be
//current. Bonds with unknown dipoles contribute nothing.
func AssignFractionalCharges(at chem.Atomer, bonds []*chem.Bond) {
	for i := 0; i < at.Len(); i++ {
		at.Atom(i).FracCharge = 0
	}
	for _, b := range bonds {
		a1, a2 := b.Atoms()
		t1, t2 := typeOf(a1), typeOf(a2)
		mu, ok := lookupDipole(t1, t2)
		if !ok {
			continue
		}
		lp, _ := lookupLength(t1, t2)
		q := mu * debyeToEA / lp.R0
		if math.IsNaN(q) || math.IsInf(q, 0) {
			continue
		}
		a1.FracCharge += q
		a2.FracCharge -= q
	}
}
