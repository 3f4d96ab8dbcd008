/*
 * chem_test.go, part of gomm2.
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

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/gomm2/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//fakeFF counts the notifications and pushes the even atoms along +X.
type fakeFF struct {
	S       *Structure
	changed int
	calls   int
	err     error
}

func (F *fakeFF) StructureChanged() { F.changed++ }

func (F *fakeFF) ComputeForces() error {
	F.calls++
	if F.err != nil {
		return F.err
	}
	for i, a := range F.S.atoms {
		a.Force = v3.Zero
		if i%2 == 0 {
			a.Force = v3.New(2, 0, 0)
		}
	}
	return nil
}

func mustAtom(Te *testing.T, S *Structure, sym string, x, y, z float64) *Atom {
	Te.Helper()
	a, err := S.NewAtom(sym, v3.New(x, y, z))
	require.NoError(Te, err)
	return a
}

func TestElements(Te *testing.T) {
	c, err := ElementBySymbol("C")
	require.NoError(Te, err)
	assert.Equal(Te, 6, c.Number)
	assert.InDelta(Te, 0.76, c.CovRad, 1e-9)
	cl, err := ElementByNumber(17)
	require.NoError(Te, err)
	assert.Equal(Te, "Cl", cl.Symbol)
	_, err = ElementBySymbol("Xx")
	assert.True(Te, errors.Is(err, ErrUnknownElement))
	_, err = ElementByNumber(200)
	assert.ErrorIs(Te, err, ErrUnknownElement)
	assert.Panics(Te, func() { MustElement("Q") })
	assert.Len(Te, Elements(), 12)
}

func TestIDAllocator(Te *testing.T) {
	ids := NewIDAllocator(10)
	assert.Equal(Te, int64(10), ids.Next())
	assert.Equal(Te, int64(11), ids.Next())
	S1 := NewStructure(WithIDAllocator(ids))
	S2 := NewStructure(WithIDAllocator(ids))
	a := mustAtom(Te, S1, "C", 0, 0, 0)
	b := mustAtom(Te, S2, "C", 0, 0, 0)
	assert.NotEqual(Te, a.ID(), b.ID())
	//an atom can't be added twice
	err := S1.AddAtom(a)
	assert.ErrorIs(Te, err, ErrAtomPresent)
	require.NoError(Te, S1.AddAtom(b))
	assert.Equal(Te, 2, S1.Len())
}

func TestInferBondsThreshold(Te *testing.T) {
	S := NewStructure()
	_, err := S.InferBonds()
	assert.ErrorIs(Te, err, ErrEmptyStructure)
	c := mustAtom(Te, S, "C", 0, 0, 0)
	//C-C threshold is 0.76+0.76+0.5=2.02
	mustAtom(Te, S, "C", 2.0, 0, 0)
	mustAtom(Te, S, "C", 0, 5, 0)
	bonds, err := S.InferBonds()
	require.NoError(Te, err)
	require.Len(Te, bonds, 1)
	assert.Equal(Te, 1, bonds[0].Order())
	assert.True(Te, bonds[0].Contains(c))
	assert.Same(Te, S.Atom(1), bonds[0].OtherAtom(c))
	assert.Panics(Te, func() { bonds[0].OtherAtom(S.Atom(2)) })
	assert.InDelta(Te, 2.0, bonds[0].Length(), 1e-12)
}

func TestInferBondsMemoized(Te *testing.T) {
	S := NewStructure()
	F := &fakeFF{S: S}
	S.Attach(F)
	assert.Equal(Te, 1, F.changed)
	mustAtom(Te, S, "C", 0, 0, 0)
	mustAtom(Te, S, "O", 1.4, 0, 0)
	assert.Equal(Te, 3, F.changed)
	b1, err := S.InferBonds()
	require.NoError(Te, err)
	require.NoError(Te, b1[0].SetOrder(2))
	b2, err := S.InferBonds()
	require.NoError(Te, err)
	//same slice, with the order we set.
	assert.Same(Te, &b1[0], &b2[0])
	assert.Equal(Te, 2, b2[0].Order())
	assert.ErrorIs(Te, b2[0].SetOrder(4), ErrInvalidOrder)

	h := mustAtom(Te, S, "H", -1.1, 0, 0)
	assert.Equal(Te, 4, F.changed)
	b3, err := S.InferBonds()
	require.NoError(Te, err)
	assert.Len(Te, b3, 2)
	//inferring again resets the orders
	for _, b := range b3 {
		assert.Equal(Te, 1, b.Order())
	}
	require.NoError(Te, S.RemoveAtom(h))
	assert.Equal(Te, 5, F.changed)
	assert.ErrorIs(Te, S.RemoveAtom(h), ErrAtomNotFound)
	b4, err := S.InferBonds()
	require.NoError(Te, err)
	assert.Len(Te, b4, 1)
	assert.Same(Te, F, S.Detach())
	assert.Nil(Te, S.ForceField())
}

//randomStructure returns a structure with n atoms scattered in a cube
//of side l, with no two atoms closer than 0.9 A.
func randomStructure(n int, l float64, seed int64) *Structure {
	r := rand.New(rand.NewSource(seed))
	syms := []string{"C", "C", "C", "H", "H", "O", "N", "Cl"}
	S := NewStructure()
	for S.Len() < n {
		p := v3.New(r.Float64()*l, r.Float64()*l, r.Float64()*l)
		ok := true
		for _, a := range S.atoms {
			if a.Pos.Dist(p) < 0.9 {
				ok = false
				break
			}
		}
		if ok {
			S.NewAtom(syms[r.Intn(len(syms))], p)
		}
	}
	return S
}

func bondPairs(bonds []*Bond) [][2]int64 {
	ret := make([][2]int64, 0, len(bonds))
	for _, b := range bonds {
		a1, a2 := b.Atoms()
		ret = append(ret, [2]int64{a1.ID(), a2.ID()})
	}
	return ret
}

func TestOctreeBondsMatchBruteForce(Te *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		S := randomStructure(150, 12, seed)
		brute := bruteForceBonds(S.atoms)
		tree, err := octreeBonds(S.atoms)
		require.NoError(Te, err)
		assert.NotEmpty(Te, brute)
		assert.Equal(Te, bondPairs(brute), bondPairs(tree), "seed %d", seed)
		inferred, err := S.InferBonds()
		require.NoError(Te, err)
		assert.Equal(Te, bondPairs(brute), bondPairs(inferred))
	}
}

func TestRehybridize(Te *testing.T) {
	S := NewStructure()
	c1 := mustAtom(Te, S, "C", 0, 0, 0)
	c2 := mustAtom(Te, S, "C", 1.34, 0, 0)
	o := mustAtom(Te, S, "O", -1.2, 0, 0)
	h := mustAtom(Te, S, "H", 2.0, 0.9, 0)
	bonds, err := S.InferBonds()
	require.NoError(Te, err)
	require.Len(Te, bonds, 3)
	for _, a := range S.Atoms() {
		a.Rehybridize(bonds)
	}
	assert.Equal(Te, SP3, c1.Hybridization())
	assert.Equal(Te, NONE, h.Hybridization())
	cc := bonds[0]
	for _, b := range bonds {
		if b.Contains(c1) && b.Contains(c2) {
			cc = b
		}
	}
	for _, b := range bonds {
		require.NoError(Te, b.SetOrder(1))
	}
	require.NoError(Te, cc.SetOrder(2))
	for _, a := range S.Atoms() {
		a.Rehybridize(bonds)
	}
	assert.Equal(Te, SP2, c1.Hybridization())
	assert.Equal(Te, SP2, c2.Hybridization())
	assert.Equal(Te, SP3, o.Hybridization())
	require.NoError(Te, cc.SetOrder(3))
	c1.Rehybridize(bonds)
	assert.Equal(Te, SP, c1.Hybridization())
	assert.Equal(Te, "SP", c1.Hybridization().String())
	assert.Equal(Te, "NONE", NONE.String())
}

func TestVerlet(Te *testing.T) {
	S := NewStructure()
	a := mustAtom(Te, S, "C", 1, 2, 3)
	b := mustAtom(Te, S, "H", -1, 0, 0.5)
	start := []v3.Vec{a.Pos, b.Pos}
	S.VerletPrep()
	S.VerletStep(1.0)
	for i, at := range S.Atoms() {
		assert.Equal(Te, start[i], at.Prev)
		//no force: no motion
		assert.Equal(Te, start[i], at.Pos)
	}
	//a constant force gives x = x0 + a dt^2 in the first step
	a.Force = v3.New(1, 0, 0)
	S.VerletStep(2.0)
	assert.InDelta(Te, 1+4*AccelConversion/a.Mass(), a.Pos.X, 1e-12)
	assert.Equal(Te, v3.Zero, a.Force)
	//now the velocity is kept without forces
	S.VerletStep(2.0)
	assert.InDelta(Te, 1+8*AccelConversion/a.Mass(), a.Pos.X, 1e-12)
}

func TestEnergyMinimizeStep(Te *testing.T) {
	S := NewStructure()
	mustAtom(Te, S, "C", 0, 0, 0)
	mustAtom(Te, S, "C", 5, 0, 0)
	assert.ErrorIs(Te, S.EnergyMinimizeStep(0.1), ErrNoForceField)
	F := &fakeFF{S: S}
	S.Attach(F)
	require.NoError(Te, S.EnergyMinimizeStep(0.1))
	assert.Equal(Te, 1, F.calls)
	assert.InDelta(Te, 0.1, S.Atom(0).Pos.X, 1e-12)
	//zero force, no motion
	assert.Equal(Te, v3.New(5, 0, 0), S.Atom(1).Pos)
	F.err = NewError(ErrEmptyStructure, "fake", "")
	err := S.EnergyMinimizeStep(0.1)
	assert.ErrorIs(Te, err, ErrEmptyStructure)
	var ce *CError
	require.True(Te, errors.As(err, &ce))
	assert.Equal(Te, []string{"fake", "Structure.EnergyMinimizeStep"}, ce.Decorate(""))
}

func TestGeometry(Te *testing.T) {
	S := NewStructure()
	_, err := S.BoundingBox()
	assert.ErrorIs(Te, err, ErrEmptyStructure)
	_, err = S.Center()
	assert.ErrorIs(Te, err, ErrEmptyStructure)
	mustAtom(Te, S, "C", 0, 0, 0)
	mustAtom(Te, S, "C", 2, 0, 0)
	mustAtom(Te, S, "O", 2, 2, 0)
	mustAtom(Te, S, "H", 10, 10, 10)
	B, err := S.BoundingBox()
	require.NoError(Te, err)
	assert.Equal(Te, v3.New(10, 10, 10), B.Max)
	assert.Equal(Te, v3.Zero, B.Min)
	c, err := S.Center()
	require.NoError(Te, err)
	assert.InDelta(Te, 3.5, c.X, 1e-12)

	in := S.AtomsIn(v3.NewBox(v3.New(-1, -1, -1), v3.New(2, 2, 1)))
	require.Len(Te, in, 3)
	assert.Same(Te, S.Atom(0), in[0])
	assert.Same(Te, S.Atom(2), in[2])

	S.SetMeta("name", "test")
	E := S.Extract(v3.NewBox(v3.New(-1, -1, -1), v3.New(2, 2, 1)))
	assert.Equal(Te, 3, E.Len())
	assert.NotEqual(Te, S.Atom(0).ID(), E.Atom(0).ID())
	assert.Equal(Te, S.Atom(2).Pos, E.Atom(2).Pos)
	v, ok := E.Meta("name")
	assert.True(Te, ok)
	assert.Equal(Te, "test", v)
	assert.Equal(Te, -1, E.Index(S.Atom(0)))
	assert.Same(Te, E.Atom(1), E.AtomByID(E.Atom(1).ID()))

	C := S.Clone()
	assert.Equal(Te, S.Len(), C.Len())
	C.Translate(v3.New(1, 0, 0))
	assert.InDelta(Te, 1.0, C.Atom(0).Pos.X, 1e-12)
	assert.InDelta(Te, 0.0, S.Atom(0).Pos.X, 1e-12)
	assert.Nil(Te, C.ForceField())

	q := v3.NewRotation(math.Pi/2, v3.New(0, 0, 1))
	S.Rotate(q, v3.New(2, 0, 0))
	assert.InDelta(Te, 2.0, S.Atom(0).Pos.X, 1e-9)
	assert.InDelta(Te, -2.0, S.Atom(0).Pos.Y, 1e-9)
	assert.InDelta(Te, 2.0, S.Atom(1).Pos.X, 1e-9)
}

func TestRemoveKeepsIndexes(Te *testing.T) {
	S := NewStructure()
	a := mustAtom(Te, S, "C", 0, 0, 0)
	b := mustAtom(Te, S, "C", 1.5, 0, 0)
	c := mustAtom(Te, S, "C", 3, 0, 0)
	require.NoError(Te, S.RemoveAtom(b))
	assert.Equal(Te, 2, S.Len())
	assert.Equal(Te, 1, S.Index(c))
	assert.Equal(Te, -1, S.Index(b))
	assert.Nil(Te, S.AtomByID(b.ID()))
	assert.Same(Te, a, S.AtomByID(a.ID()))
	n := 0
	S.Each(func(i int, at *Atom) { n += i })
	assert.Equal(Te, 1, n)
	assert.Panics(Te, func() { S.Atom(5) })
}

func TestAnglesAndDihedrals(Te *testing.T) {
	S := NewStructure()
	a := mustAtom(Te, S, "C", 1, 0, 0)
	b := mustAtom(Te, S, "C", 0, 0, 0)
	c := mustAtom(Te, S, "C", 0, 1, 0)
	d := mustAtom(Te, S, "C", 0, 1, 1)
	assert.InDelta(Te, math.Pi/2, Angle(a, b, c), 1e-12)
	assert.InDelta(Te, math.Pi/2, math.Abs(Dihedral(a, b, c, d)), 1e-12)
	d.Pos = v3.New(1, 1, 0)
	assert.InDelta(Te, 0.0, Dihedral(a, b, c, d), 1e-12)
	d.Pos = v3.New(-1, 1, 0)
	assert.InDelta(Te, math.Pi, math.Abs(Dihedral(a, b, c, d)), 1e-12)
}

func TestOctreeHoldsExtremeAtoms(Te *testing.T) {
	r := rand.New(rand.NewSource(11))
	for k := 0; k < 200; k++ {
		S := NewStructure()
		for S.Len() < 40 {
			p := v3.New(r.Float64()*7, r.Float64()*7, r.Float64()*7)
			_, err := S.NewAtom("C", p)
			require.NoError(Te, err)
		}
		require.GreaterOrEqual(Te, S.Len(), BruteForceLimit)
		inferred, err := S.InferBonds()
		require.NoError(Te, err, "structure %d", k)
		assert.Equal(Te, bondPairs(bruteForceBonds(S.atoms)), bondPairs(inferred), "structure %d", k)
		box, err := S.BoundingBox()
		require.NoError(Te, err)
		assert.Len(Te, S.AtomsIn(box), S.Len(), "structure %d", k)
	}
}

func TestErrDecorate(Te *testing.T) {
	assert.Nil(Te, ErrDecorate(nil, "f"))
	err := ErrDecorate(NewError(ErrEmptyStructure, "inner", ""), "outer")
	var ce *CError
	require.True(Te, errors.As(err, &ce))
	assert.Equal(Te, []string{"inner", "outer"}, ce.Decorate(""))
	//foreign errors are wrapped, and can still be found.
	foreign := errors.New("disk on fire")
	err = ErrDecorate(foreign, "XYZFileRead")
	require.True(Te, errors.As(err, &ce))
	assert.ErrorIs(Te, err, foreign)
	assert.Equal(Te, []string{"XYZFileRead"}, ce.Decorate(""))
	assert.Contains(Te, err.Error(), "disk on fire")
}
