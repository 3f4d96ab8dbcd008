/*
 * tables.go, part of gomm2.
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
	chem "github.com/rmera/gomm2"
)

//atomType is what the parameter tables are keyed on: atomic number and hybridization.
type atomType struct {
	Z   int
	Hyb chem.Hybridization
}

func typeOf(a *chem.Atom) atomType {
	return atomType{Z: a.Number(), Hyb: a.Hybridization()}
}

//The MM2 atom types present in the tables.
var (
	tC3 = atomType{6, chem.SP3}
	tC2 = atomType{6, chem.SP2}
	tC1 = atomType{6, chem.SP}
	tH  = atomType{1, chem.NONE}
	tO3 = atomType{8, chem.SP3}
	tO2 = atomType{8, chem.SP2}
	tN3 = atomType{7, chem.SP3}
	tN1 = atomType{7, chem.SP}
	tF  = atomType{9, chem.NONE}
	tCl = atomType{17, chem.NONE}
	tSi = atomType{14, chem.SP3}
)

//Bond stretching. Ks in mdyn/A (numerically, aJ/A^2), R0 in A.
type lengthParams struct {
	Ks, R0 float64
}

var defaultLength = lengthParams{Ks: 2.0, R0: 1.2}

var lengthTable = map[[2]atomType]lengthParams{
	{tC3, tC3}: {4.40, 1.523},
	{tC3, tC2}: {4.40, 1.497},
	{tC2, tC2}: {9.6, 1.337},
	{tC1, tC1}: {15.6, 1.212},
	{tC3, tC1}: {5.2, 1.470},
	{tC3, tH}:  {4.6, 1.113},
	{tC2, tH}:  {4.6, 1.101},
	{tC1, tH}:  {5.9, 1.090},
	{tC3, tO3}: {5.36, 1.402},
	{tC2, tO2}: {10.8, 1.208},
	{tC3, tN3}: {5.10, 1.438},
	{tC1, tN1}: {17.33, 1.158},
	{tO3, tH}:  {4.6, 0.942},
	{tN3, tH}:  {6.1, 1.015},
	{tC3, tF}:  {5.1, 1.392},
	{tC3, tCl}: {3.23, 1.791},
	{tC3, tSi}: {2.9, 1.876},
}

//lookupLength returns the parameters for the pair, trying both orders, and
//whether they were found in the table.
func lookupLength(a, b atomType) (lengthParams, bool) {
	if p, ok := lengthTable[[2]atomType{a, b}]; ok {
		return p, true
	}
	if p, ok := lengthTable[[2]atomType{b, a}]; ok {
		return p, true
	}
	return defaultLength, false
}

//Angle bending. K in aJ/rad^2, Theta0 in degrees.
type angleParams struct {
	K, Theta0 float64
}

const defaultAngleK = 0.4

var angleTable = map[[3]atomType]angleParams{
	{tC3, tC3, tC3}: {0.45, 109.47},
	{tC3, tC3, tH}:  {0.36, 109.39},
	{tH, tC3, tH}:   {0.32, 109.4},
	{tC3, tC2, tC2}: {0.55, 121.4},
	{tH, tC2, tC2}:  {0.36, 120},
	{tC3, tO3, tC3}: {0.77, 106.8},
	{tC3, tO3, tH}:  {0.35, 106.9},
	{tC3, tN3, tC3}: {0.63, 107.7},
	{tH, tN3, tH}:   {0.605, 106.4},
	{tC3, tN3, tH}:  {0.50, 108.1},
}

//angles around these centers take the same parameters whatever the ends are.
var angleCenterTable = map[atomType]angleParams{
	tC1: {0.35, 180},
}

func defaultAngle(center atomType) angleParams {
	switch center.Hyb {
	case chem.SP2:
		return angleParams{defaultAngleK, 120}
	case chem.SP:
		return angleParams{defaultAngleK, 180}
	}
	return angleParams{defaultAngleK, 109.47}
}

func lookupAngle(a, b, c atomType) (angleParams, bool) {
	if p, ok := angleTable[[3]atomType{a, b, c}]; ok {
		return p, true
	}
	if p, ok := angleTable[[3]atomType{c, b, a}]; ok {
		return p, true
	}
	if p, ok := angleCenterTable[b]; ok {
		return p, true
	}
	return defaultAngle(b), false
}

//Torsion. V1, V2 and V3 in kcal/mol.
type torsionParams struct {
	V1, V2, V3 float64
}

var torsionTable = map[[4]atomType]torsionParams{
	{tC3, tC3, tC3, tC3}: {0.2, 0.27, 0.093},
	{tC3, tC3, tC3, tH}:  {0, 0, 0.267},
	{tH, tC3, tC3, tH}:   {0, 0, 0.237},
	{tC3, tC2, tC2, tC3}: {-0.1, 10, 0},
	{tH, tC2, tC2, tH}:   {0, 15, 0},
	{tC3, tC2, tC2, tH}:  {0, 15, 0},
	{tH, tC3, tO3, tH}:   {0, 0, 0.54},
}

func lookupTorsion(a, b, c, d atomType) (torsionParams, bool) {
	if p, ok := torsionTable[[4]atomType{a, b, c, d}]; ok {
		return p, true
	}
	if p, ok := torsionTable[[4]atomType{d, c, b, a}]; ok {
		return p, true
	}
	return torsionParams{}, false
}

//Bond dipoles, in Debye. The first type in the key is the positive end.
var dipoleTable = map[[2]atomType]float64{
	{tC3, tO3}: 0.44,
	{tC3, tN3}: 0.04,
	{tH, tO3}:  1.115,
	{tH, tN3}:  0.76,
	{tC2, tO2}: 2.0,
	{tC3, tF}:  1.51,
	{tC3, tCl}: 1.297,
}

//lookupDipole returns the dipole of the bond a-b, positive if a is the positive end.
func lookupDipole(a, b atomType) (float64, bool) {
	if mu, ok := dipoleTable[[2]atomType{a, b}]; ok {
		return mu, true
	}
	if mu, ok := dipoleTable[[2]atomType{b, a}]; ok {
		return -mu, true
	}
	return 0, false
}
