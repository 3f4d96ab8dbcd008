/*
 * graph_test.go, part of gomm2.
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

package chemgraph

import (
	"testing"

	chem "github.com/rmera/gomm2"
	v3 "github.com/rmera/gomm2/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

//butane returns a zig-zag chain of 4 carbons, plus a lone carbon far away.
func butane(Te *testing.T) (*chem.Structure, []*chem.Bond) {
	Te.Helper()
	S := chem.NewStructure()
	pos := []v3.Vec{
		v3.New(0, 0, 0),
		v3.New(1.25, 0.88, 0),
		v3.New(2.5, 0, 0),
		v3.New(3.75, 0.88, 0),
		v3.New(20, 20, 20),
	}
	for _, p := range pos {
		_, err := S.NewAtom("C", p)
		require.NoError(Te, err)
	}
	bonds, err := S.InferBonds()
	require.NoError(Te, err)
	require.Len(Te, bonds, 3)
	return S, bonds
}

func TestGraph(Te *testing.T) {
	S, bonds := butane(Te)
	G := New(S, bonds)
	assert.Equal(Te, 5, G.Len())
	assert.Equal(Te, []int{0, 2}, G.Neighbors(1))
	assert.Empty(Te, G.Neighbors(4))
	b := G.BondBetween(2, 1)
	require.NotNil(Te, b)
	assert.True(Te, b.Contains(S.Atom(1)))
	assert.True(Te, b.Contains(S.Atom(2)))
	assert.Nil(Te, G.BondBetween(0, 3))
	assert.Equal(Te, [][]int{{0, 1, 2, 3}, {4}}, G.Fragments())
	assert.Len(Te, graph.EdgesOf(G.g.Edges()), 3)
}

func collect(G *Graph, n int) [][]int {
	var ret [][]int
	G.Chains(n, func(p []int) {
		c := make([]int, len(p))
		copy(c, p)
		ret = append(ret, c)
	})
	return ret
}

func TestChains(Te *testing.T) {
	S, bonds := butane(Te)
	G := New(S, bonds)
	//every chain comes once from each end
	assert.Equal(Te, [][]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 2}}, collect(G, 2))
	assert.Equal(Te, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 1, 0}, {3, 2, 1}}, collect(G, 3))
	assert.Equal(Te, [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}}, collect(G, 4))
	assert.Empty(Te, collect(G, 5))
	assert.Len(Te, collect(G, 1), 5)
	assert.Empty(Te, collect(G, 0))
}

func TestChainsBranched(Te *testing.T) {
	//isobutane carbons: a center with 3 neighbors
	S := chem.NewStructure()
	for _, p := range []v3.Vec{v3.New(0, 0, 0), v3.New(1.5, 0, 0), v3.New(-0.5, 1.4, 0), v3.New(-0.5, -0.7, 1.2)} {
		_, err := S.NewAtom("C", p)
		require.NoError(Te, err)
	}
	bonds, err := S.InferBonds()
	require.NoError(Te, err)
	require.Len(Te, bonds, 3)
	G := New(S, bonds)
	//3 angles, each found twice, and no 4-atom chain.
	assert.Len(Te, collect(G, 3), 6)
	assert.Empty(Te, collect(G, 4))
}

func TestNewPanicsOnForeignBond(Te *testing.T) {
	S, _ := butane(Te)
	O := chem.NewStructure()
	a, _ := O.NewAtom("C", v3.Zero)
	b, _ := O.NewAtom("C", v3.New(1.5, 0, 0))
	foreign, err := chem.NewBond(a, b, 1)
	require.NoError(Te, err)
	assert.Panics(Te, func() { New(S, []*chem.Bond{foreign}) })
}
