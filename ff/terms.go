/*
 * terms.go, part of gomm2.
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
	"fmt"
	"math"

	chem "github.com/rmera/gomm2"
	v3 "github.com/rmera/gomm2/v3"
)

//TermKind is the kind of an energy term.
type TermKind int

const (
	LengthKind TermKind = iota
	AngleKind
	TorsionKind
	LongRangeKind
)

//ChainLength returns the number of bonded atoms the terms of the kind span, or 2 for long-range terms.
func (K TermKind) ChainLength() int {
	switch K {
	case AngleKind:
		return 3
	case TorsionKind:
		return 4
	}
	return 2
}

func (K TermKind) String() string {
	switch K {
	case LengthKind:
		return "length"
	case AngleKind:
		return "angle"
	case TorsionKind:
		return "torsion"
	case LongRangeKind:
		return "long-range"
	}
	return fmt.Sprintf("TermKind(%d)", int(K))
}

//Term is one bonded contribution to the force field, over a fixed chain of atoms.
//Terms keep pointers to the atoms of the structure; they are only valid until the
//structure changes.
type Term interface {
	Kind() TermKind
	Atoms() []*chem.Atom
	//ComputeForces adds the forces from the term to its atoms.
	ComputeForces()
	//Energy returns the energy of the term in the current geometry, in aJ.
	Energy() float64
}

//degenerate lengths and angles below this are skipped.
const appzero = 1e-9

/******Length*****/

//Parameters of the length potential: a cubic correction below lengthThreshold,
//(the displacement with maximum restoring force) and an exponential decay above it.
const (
	lengthCubic     = -2.0    //cs, 1/A
	lengthThreshold = 1.0 / 6 //A
	lengthDecay     = 2.0     //lambda, 1/A
)

//LengthTerm is the bond stretching term between 2 bonded atoms.
type LengthTerm struct {
	a, b   *chem.Atom
	ks, r0 float64
}

func newLengthTerm(a, b *chem.Atom) (*LengthTerm, bool) {
	p, found := lookupLength(typeOf(a), typeOf(b))
	return &LengthTerm{a: a, b: b, ks: p.Ks, r0: p.R0}, found
}

func (T *LengthTerm) Kind() TermKind      { return LengthKind }
func (T *LengthTerm) Atoms() []*chem.Atom { return []*chem.Atom{T.a, T.b} }

//Params returns the spring constant (aJ/A^2) and the rest length (A).
func (T *LengthTerm) Params() (ks, r0 float64) { return T.ks, T.r0 }

//lengthEnergy returns the energy and its derivative for a displacement d from the rest length.
func lengthEnergy(ks, d float64) (e, de float64) {
	if d <= lengthThreshold {
		e = 0.5 * ks * d * d * (1 + lengthCubic*d)
		de = ks*d + 1.5*ks*lengthCubic*d*d
		return e, de
	}
	t := lengthThreshold
	et := 0.5 * ks * t * t * (1 + lengthCubic*t)
	ft := ks*t + 1.5*ks*lengthCubic*t*t
	x := math.Exp(-lengthDecay * (d - t))
	return et + ft/lengthDecay*(1-x), ft * x
}

func (T *LengthTerm) Energy() float64 {
	e, _ := lengthEnergy(T.ks, T.a.Pos.Dist(T.b.Pos)-T.r0)
	return e
}

func (T *LengthTerm) ComputeForces() {
	r12 := T.a.Pos.Sub(T.b.Pos)
	r := r12.Norm()
	if r < appzero {
		return
	}
	_, de := lengthEnergy(T.ks, r-T.r0)
	f := r12.Scale(-de / r)
	T.a.AddForce(f)
	T.b.AddForce(f.Neg())
}

/******Angle*****/

const (
	angleCubic  = -0.4 //cb, 1/rad
	angleMaxArm = 10.0 //A, longer arms mean the geometry is garbage
)

//AngleTerm is the bending term for 3 chained atoms. The second one is the vertex.
type AngleTerm struct {
	a, b, c   *chem.Atom
	k, theta0 float64 //aJ/rad^2, rad
}

func newAngleTerm(a, b, c *chem.Atom) (*AngleTerm, bool) {
	p, found := lookupAngle(typeOf(a), typeOf(b), typeOf(c))
	return &AngleTerm{a: a, b: b, c: c, k: p.K, theta0: p.Theta0 * chem.Deg2Rad}, found
}

func (T *AngleTerm) Kind() TermKind      { return AngleKind }
func (T *AngleTerm) Atoms() []*chem.Atom { return []*chem.Atom{T.a, T.b, T.c} }

//Params returns the force constant (aJ/rad^2) and the rest angle (rad).
func (T *AngleTerm) Params() (k, theta0 float64) { return T.k, T.theta0 }

func angleEnergy(k, d float64) (e, de float64) {
	return 0.5 * k * d * d * (1 + angleCubic*d), k*d + 1.5*k*angleCubic*d*d
}

func (T *AngleTerm) Energy() float64 {
	e, _ := angleEnergy(T.k, chem.Angle(T.a, T.b, T.c)-T.theta0)
	return e
}

func (T *AngleTerm) ComputeForces() {
	u := T.a.Pos.Sub(T.b.Pos)
	w := T.c.Pos.Sub(T.b.Pos)
	lu, lw := u.Norm(), w.Norm()
	if lu > angleMaxArm || lw > angleMaxArm || lu < appzero || lw < appzero {
		return
	}
	uu, wu := u.Scale(1/lu), w.Scale(1/lw)
	cos := uu.Dot(wu)
	cos = math.Max(-1, math.Min(1, cos))
	sin := math.Sqrt(1 - cos*cos)
	if sin < appzero {
		return
	}
	_, de := angleEnergy(T.k, math.Acos(cos)-T.theta0)
	//-dtheta/dx for the end atoms, scaled by dE/dtheta
	fa := wu.Sub(uu.Scale(cos)).Scale(de / (lu * sin))
	fc := uu.Sub(wu.Scale(cos)).Scale(de / (lw * sin))
	T.a.AddForce(fa)
	T.c.AddForce(fc)
	T.b.AddForce(fa.Add(fc).Neg())
}

/******Torsion*****/

//TorsionTerm is the three-term Fourier torsion over 4 chained atoms.
type TorsionTerm struct {
	a, b, c, d *chem.Atom
	v1, v2, v3 float64 //aJ
}

func newTorsionTerm(a, b, c, d *chem.Atom) (*TorsionTerm, bool) {
	p, found := lookupTorsion(typeOf(a), typeOf(b), typeOf(c), typeOf(d))
	return &TorsionTerm{a: a, b: b, c: c, d: d,
		v1: p.V1 * chem.Kcal2AJ,
		v2: p.V2 * chem.Kcal2AJ,
		v3: p.V3 * chem.Kcal2AJ}, found
}

func (T *TorsionTerm) Kind() TermKind      { return TorsionKind }
func (T *TorsionTerm) Atoms() []*chem.Atom { return []*chem.Atom{T.a, T.b, T.c, T.d} }

//Params returns V1, V2 and V3, in aJ.
func (T *TorsionTerm) Params() (v1, v2, v3 float64) { return T.v1, T.v2, T.v3 }

//torsionEnergy returns the energy and its derivative with respect to phi.
func (T *TorsionTerm) torsionEnergy(phi float64) (e, de float64) {
	e = 0.5 * (T.v1*(1+math.Cos(phi)) + T.v2*(1-math.Cos(2*phi)) + T.v3*(1+math.Cos(3*phi)))
	de = 0.5 * (-T.v1*math.Sin(phi) + 2*T.v2*math.Sin(2*phi) - 3*T.v3*math.Sin(3*phi))
	return e, de
}

func (T *TorsionTerm) Energy() float64 {
	e, _ := T.torsionEnergy(chem.Dihedral(T.a, T.b, T.c, T.d))
	return e
}

//ComputeForces follows the NAMD formulation: the derivative is taken through
//cos(phi) when |sin(phi)| is the larger, and through sin(phi) otherwise, so it never divides by
//something close to zero.
func (T *TorsionTerm) ComputeForces() {
	if T.v1 == 0 && T.v2 == 0 && T.v3 == 0 {
		return
	}
	r12 := T.a.Pos.Sub(T.b.Pos)
	r23 := T.b.Pos.Sub(T.c.Pos)
	r34 := T.c.Pos.Sub(T.d.Pos)
	A := r12.Cross(r23)
	B := r23.Cross(r34)
	C := r23.Cross(A)
	lA, lB, lC := A.Norm(), B.Norm(), C.Norm()
	if lA < appzero || lB < appzero || lC < appzero {
		return
	}
	uA, uB, uC := A.Scale(1/lA), B.Scale(1/lB), C.Scale(1/lC)
	cos := uA.Dot(uB)
	sin := uC.Dot(uB)
	_, de := T.torsionEnergy(math.Atan2(sin, cos))
	//g12, g23 and g34 are the derivatives of the energy with respect to r12, r23 and r34.
	var g12, g23, g34 v3.Vec
	if math.Abs(sin) >= math.Abs(cos) {
		k := -de / sin
		gA := uB.Sub(uA.Scale(cos)).Scale(1 / lA)
		gB := uA.Sub(uB.Scale(cos)).Scale(1 / lB)
		g12 = r23.Cross(gA).Scale(k)
		g23 = gA.Cross(r12).Add(r34.Cross(gB)).Scale(k)
		g34 = gB.Cross(r23).Scale(k)
	} else {
		k := de / cos
		gC := uB.Sub(uC.Scale(sin)).Scale(1 / lC)
		gB := uC.Sub(uB.Scale(sin)).Scale(1 / lB)
		gA := gC.Cross(r23)
		g12 = r23.Cross(gA).Scale(k)
		g23 = A.Cross(gC).Add(gA.Cross(r12)).Add(r34.Cross(gB)).Scale(k)
		g34 = gB.Cross(r23).Scale(k)
	}
	T.a.AddForce(g12.Neg())
	T.b.AddForce(g12.Sub(g23))
	T.c.AddForce(g23.Sub(g34))
	T.d.AddForce(g34)
}
