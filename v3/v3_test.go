/*
 * v3_test.go, part of gomm2.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func vecInDelta(Te *testing.T, want, got Vec) {
	Te.Helper()
	assert.InDelta(Te, want.X, got.X, tol, "X")
	assert.InDelta(Te, want.Y, got.Y, tol, "Y")
	assert.InDelta(Te, want.Z, got.Z, tol, "Z")
}

func TestVecBasics(Te *testing.T) {
	a := New(1, 2, 3)
	b := New(-2, 0.5, 4)
	vecInDelta(Te, New(-1, 2.5, 7), a.Add(b))
	vecInDelta(Te, New(3, 1.5, -1), a.Sub(b))
	vecInDelta(Te, New(2, 4, 6), a.Scale(2))
	assert.InDelta(Te, 11.0, a.Dot(b), tol)
	c := a.Cross(b)
	assert.InDelta(Te, 0.0, c.Dot(a), tol)
	assert.InDelta(Te, 0.0, c.Dot(b), tol)
	vecInDelta(Te, New(6.5, -10, 4.5), c)
	assert.InDelta(Te, math.Sqrt(a.Dot(a)), a.Norm(), tol)
	assert.InDelta(Te, 1.0, b.Unit().Norm(), tol)
	assert.Equal(Te, Zero, Zero.Unit())
	assert.InDelta(Te, math.Sqrt(2), New(1, 0, 0).Dist(New(0, 1, 0)), tol)
}

func TestAngle(Te *testing.T) {
	assert.InDelta(Te, math.Pi/2, Angle(New(1, 0, 0), New(0, 3, 0)), tol)
	assert.InDelta(Te, math.Pi, Angle(New(1, 0, 0), New(-2, 0, 0)), tol)
	assert.InDelta(Te, 0.0, Angle(New(1, 1, 1), New(2, 2, 2)), 1e-6)
}

func TestQuaternionRotation(Te *testing.T) {
	x := New(1, 0, 0)
	q := NewRotation(math.Pi/2, New(0, 0, 1))
	assert.InDelta(Te, 1.0, q.Norm(), tol)
	vecInDelta(Te, New(0, 1, 0), q.Rotate(x))
	//two quarter turns make half a turn
	vecInDelta(Te, New(-1, 0, 0), q.Mul(q).Rotate(x))
	//and the inverse brings us back.
	p := New(0.3, -1.2, 2.5)
	vecInDelta(Te, p, q.Inverse().Rotate(q.Rotate(p)))
	axis, angle := q.AxisAngle()
	vecInDelta(Te, New(0, 0, 1), axis)
	assert.InDelta(Te, math.Pi/2, angle, tol)
	assert.Equal(Te, Identity, NewRotation(0, Zero))
	require.Panics(Te, func() { NewRotation(1, Zero) })
}

func TestQuaternionComposeOrder(Te *testing.T) {
	rz := NewRotation(math.Pi/2, New(0, 0, 1))
	rx := NewRotation(math.Pi/2, New(1, 0, 0))
	p := New(1, 0, 0)
	//rx.Mul(rz) applies rz first: x->y, then rx: y->z
	vecInDelta(Te, New(0, 0, 1), rx.Mul(rz).Rotate(p))
	vecInDelta(Te, rx.Rotate(rz.Rotate(p)), rx.Mul(rz).Rotate(p))
}

func TestBox(Te *testing.T) {
	B := NewBox(New(1, 1, 1), New(-1, -1, -1))
	assert.Equal(Te, New(-1, -1, -1), B.Min)
	assert.True(Te, B.Contains(New(1, 0, -1)))
	assert.False(Te, B.Contains(New(1.01, 0, 0)))
	vecInDelta(Te, New(2, 2, 2), B.Size())
	vecInDelta(Te, Zero, B.Center())
	flat := NewBox(New(0, 0, 0), New(2, 2, 0))
	assert.True(Te, flat.Contains(New(1, 1, 0)))

	assert.Equal(Te, Inside, B.Relation(CubeAround(Zero, 0.5)))
	assert.Equal(Te, Disjoint, B.Relation(CubeAround(New(5, 0, 0), 1)))
	assert.Equal(Te, Overlaps, B.Relation(CubeAround(New(1, 0, 0), 0.5)))
	assert.Equal(Te, Overlaps, CubeAround(Zero, 0.1).Relation(B))
	C := B.Corners()
	assert.Equal(Te, B.Min, C[0])
	assert.Equal(Te, B.Max, C[6])
	seen := map[Vec]bool{}
	for _, c := range C {
		assert.True(Te, B.Contains(c))
		assert.InDelta(Te, math.Sqrt(3), c.Norm(), 1e-12)
		seen[c] = true
	}
	assert.Len(Te, seen, 8)
	U := B.Union(CubeAround(New(3, 0, 0), 1))
	assert.Equal(Te, New(4, 1, 1), U.Max)
	assert.Equal(Te, New(-2, -2, -2), B.Expand(1).Min)
}
