/*
 * atomicdata.go, part of gomm2.
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

import "fmt"

//Element describes a chemical element, with the data the MM2 force field needs.
//Elements are read-only: the package keeps one Element per symbol, and atoms point to it.
type Element struct {
	Name      string
	Symbol    string
	Number    int     //atomic number
	Mass      float64 //amu
	CovRad    float64 //covalent radius, A
	VdwRad    float64 //MM2 van der Waals radius (r*), A
	VdwEnergy float64 //MM2 van der Waals well depth (epsilon), kcal/mol
	Bonds     int     //the "correct" number of bonds for the neutral element
}

func (E *Element) String() string {
	return E.Symbol
}

//The elements available. Covalent radii from Cordero et al., 2008 (DOI:10.1039/B801115J).
//van der Waals parameters from the MM2(1977) parameter set.
//Note that just common "organic" elements are present.
var elements = []*Element{
	{Name: "Hydrogen", Symbol: "H", Number: 1, Mass: 1.008, CovRad: 0.31, VdwRad: 1.50, VdwEnergy: 0.047, Bonds: 1},
	{Name: "Boron", Symbol: "B", Number: 5, Mass: 10.81, CovRad: 0.84, VdwRad: 1.98, VdwEnergy: 0.034, Bonds: 3},
	{Name: "Carbon", Symbol: "C", Number: 6, Mass: 12.011, CovRad: 0.76, VdwRad: 1.90, VdwEnergy: 0.044, Bonds: 4},
	{Name: "Nitrogen", Symbol: "N", Number: 7, Mass: 14.007, CovRad: 0.71, VdwRad: 1.82, VdwEnergy: 0.055, Bonds: 3},
	{Name: "Oxygen", Symbol: "O", Number: 8, Mass: 15.999, CovRad: 0.66, VdwRad: 1.74, VdwEnergy: 0.050, Bonds: 2},
	{Name: "Fluorine", Symbol: "F", Number: 9, Mass: 18.998, CovRad: 0.57, VdwRad: 1.65, VdwEnergy: 0.078, Bonds: 1},
	{Name: "Silicon", Symbol: "Si", Number: 14, Mass: 28.086, CovRad: 1.11, VdwRad: 2.25, VdwEnergy: 0.140, Bonds: 4},
	{Name: "Phosphorus", Symbol: "P", Number: 15, Mass: 30.974, CovRad: 1.07, VdwRad: 2.18, VdwEnergy: 0.168, Bonds: 3},
	{Name: "Sulfur", Symbol: "S", Number: 16, Mass: 32.06, CovRad: 1.05, VdwRad: 2.11, VdwEnergy: 0.202, Bonds: 2},
	{Name: "Chlorine", Symbol: "Cl", Number: 17, Mass: 35.45, CovRad: 1.02, VdwRad: 2.03, VdwEnergy: 0.240, Bonds: 1},
	{Name: "Bromine", Symbol: "Br", Number: 35, Mass: 79.904, CovRad: 1.20, VdwRad: 2.18, VdwEnergy: 0.320, Bonds: 1},
	{Name: "Iodine", Symbol: "I", Number: 53, Mass: 126.904, CovRad: 1.39, VdwRad: 2.32, VdwEnergy: 0.424, Bonds: 1},
}

var symbolElement = map[string]*Element{}
var numberElement = map[int]*Element{}

func init() {
	for _, e := range elements {
		symbolElement[e.Symbol] = e
		numberElement[e.Number] = e
	}
}

//ElementBySymbol returns the element with the given symbol ("C", "Cl"...)
func ElementBySymbol(symbol string) (*Element, error) {
	e, ok := symbolElement[symbol]
	if !ok {
		return nil, NewError(ErrUnknownElement, "ElementBySymbol", "symbol %q", symbol)
	}
	return e, nil
}

//ElementByNumber returns the element with atomic number z.
func ElementByNumber(z int) (*Element, error) {
	e, ok := numberElement[z]
	if !ok {
		return nil, NewError(ErrUnknownElement, "ElementByNumber", "atomic number %d", z)
	}
	return e, nil
}

//MustElement is like ElementBySymbol, but panics if the symbol is not known.
//Meant for hardcoded symbols.
func MustElement(symbol string) *Element {
	e, err := ElementBySymbol(symbol)
	if err != nil {
		panic(fmt.Sprintf("MustElement: %s", err.Error()))
	}
	return e
}

//Elements returns all the known elements, sorted by atomic number.
func Elements() []*Element {
	ret := make([]*Element, len(elements))
	copy(ret, elements)
	return ret
}
