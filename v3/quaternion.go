/*
 * quaternion.go, part of gomm2.
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
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Quaternion represents a rotation in space. Only unit quaternions
//are meaningful as rotations; the constructors in this file always return
//unit quaternions.
type Quaternion quat.Number

//Identity is the rotation that does nothing.
var Identity = Quaternion{Real: 1}

//NewRotation returns the rotation by angle radians around axis.
//It panics if the axis is the zero vector and the angle is not zero.
func NewRotation(angle float64, axis Vec) Quaternion {
	if angle == 0 {
		return Identity
	}
	if axis.Norm2() <= appzero*appzero {
		panic(ErrZeroAxis)
	}
	return Quaternion(r3.NewRotation(angle, r3.Vec(axis)))
}

func (q Quaternion) number() quat.Number { return quat.Number(q) }

//Mul returns the composition of the rotations q and p. The returned rotation applies
//p first, then q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion(quat.Mul(q.number(), p.number()))
}

//Inverse returns the rotation that undoes q.
func (q Quaternion) Inverse() Quaternion {
	return Quaternion(quat.Inv(q.number()))
}

//Norm returns the norm of the quaternion. It is 1 for every rotation.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.number())
}

//Normalize returns q scaled to unit norm. Useful after many compositions, where
//rounding errors pile up.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n <= appzero {
		return Identity
	}
	return Quaternion(quat.Scale(1/n, q.number()))
}

//Rotate returns v rotated by q.
func (q Quaternion) Rotate(v Vec) Vec {
	return Vec(r3.Rotation(q).Rotate(r3.Vec(v)))
}

//AxisAngle returns the rotation axis (unit vector) and the angle in radians.
//For the identity, the axis is the Z axis and the angle 0.
func (q Quaternion) AxisAngle() (Vec, float64) {
	q = q.Normalize()
	s := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if s <= appzero {
		return Vec{0, 0, 1}, 0
	}
	angle := 2 * math.Atan2(s, q.Real)
	return Vec{q.Imag / s, q.Jmag / s, q.Kmag / s}, angle
}
