/*
 * vec.go, part of gomm2.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //Everything equal or less than this is considered zero.

//Vec is a point or a displacement in 3D space. It has the same layout
//as gonum's r3.Vec, so both convert freely.
type Vec r3.Vec

//Zero is the origin.
var Zero = Vec{}

//New returns the vector (x,y,z).
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

func (v Vec) r3() r3.Vec { return r3.Vec(v) }

//Add returns v+w
func (v Vec) Add(w Vec) Vec {
	return Vec(r3.Add(v.r3(), w.r3()))
}

//Sub returns v-w
func (v Vec) Sub(w Vec) Vec {
	return Vec(r3.Sub(v.r3(), w.r3()))
}

//Scale returns f*v
func (v Vec) Scale(f float64) Vec {
	return Vec(r3.Scale(f, v.r3()))
}

//Neg returns -v
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

//Dot returns the scalar product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return r3.Dot(v.r3(), w.r3())
}

//Cross returns the vector product v x w.
func (v Vec) Cross(w Vec) Vec {
	return Vec(r3.Cross(v.r3(), w.r3()))
}

//Norm returns the euclidean length of v.
func (v Vec) Norm() float64 {
	return r3.Norm(v.r3())
}

//Norm2 returns the squared euclidean length of v.
func (v Vec) Norm2() float64 {
	return r3.Norm2(v.r3())
}

//Unit returns v scaled to length 1. The zero vector is returned unchanged
//(gonum would return NaNs here).
func (v Vec) Unit() Vec {
	if v.Norm2() <= appzero*appzero {
		return v
	}
	return Vec(r3.Unit(v.r3()))
}

//Dist returns the distance between the points v and w.
func (v Vec) Dist(w Vec) float64 {
	return v.Sub(w).Norm()
}

//IsZero reports whether every component of v is exactly zero.
func (v Vec) IsZero() bool {
	return v == Zero
}

//Min returns the componentwise minimum of v and w.
func (v Vec) Min(w Vec) Vec {
	return Vec{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

//Max returns the componentwise maximum of v and w.
func (v Vec) Max(w Vec) Vec {
	return Vec{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

//Angle returns the angle, in radians, between v and w.
//It does not check for zero-length vectors.
func Angle(v, w Vec) float64 {
	argument := v.Dot(w) / (v.Norm() * w.Norm())
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return math.Acos(argument)
}

func (v Vec) String() string {
	return fmt.Sprintf("(%8.4f %8.4f %8.4f)", v.X, v.Y, v.Z)
}
