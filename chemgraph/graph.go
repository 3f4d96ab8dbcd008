/*
 * graph.go, part of gomm2.
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

//Package chemgraph builds a gonum graph from the bonds of a structure, where
//the nodes are the atoms (with their index in the structure as ID) and the edges
//are the bonds. It also enumerates the chains of bonded atoms that the
//force field terms are defined on.
package chemgraph

import (
	"fmt"
	"sort"

	chem "github.com/rmera/gomm2"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom is a graph node for a chem.Atom.
type Atom struct {
	*chem.Atom
	Index int
}

//ID returns the index of the atom in its structure. Implements graph.Node
func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Bond is a graph edge for a chem.Bond.
type Bond struct {
	*chem.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//ReversedEdge returns the same bond with the atoms switched. Bonds are not directional.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

//Graph is the bond graph of a structure. It is a snapshot: it doesn't follow
//later changes in the structure.
type Graph struct {
	g     *simple.UndirectedGraph
	atoms []*Atom
	adj   [][]int //neighbor indexes, ascending
}

//New builds the graph for the atoms in at and the given bonds. It panics if
//a bond contains an atom not in at, which is a programming error.
func New(at chem.Atomer, bonds []*chem.Bond) *Graph {
	G := &Graph{g: simple.NewUndirectedGraph(), atoms: make([]*Atom, at.Len())}
	index := make(map[*chem.Atom]int, at.Len())
	for i := 0; i < at.Len(); i++ {
		a := &Atom{Atom: at.Atom(i), Index: i}
		G.atoms[i] = a
		index[a.Atom] = i
		G.g.AddNode(a)
	}
	for k, b := range bonds {
		a1, a2 := b.Atoms()
		i, ok1 := index[a1]
		j, ok2 := index[a2]
		if !ok1 || !ok2 {
			panic(fmt.Sprintf("chemgraph.New: Bond %d has at least one atom not in the structure", k))
		}
		G.g.SetEdge(&Bond{Bond: b, At1: G.atoms[i], At2: G.atoms[j]})
	}
	G.adj = make([][]int, len(G.atoms))
	for i := range G.atoms {
		nodes := graph.NodesOf(G.g.From(int64(i)))
		n := make([]int, 0, len(nodes))
		for _, v := range nodes {
			n = append(n, int(v.ID()))
		}
		sort.Ints(n)
		G.adj[i] = n
	}
	return G
}

//Graph returns the underlying gonum graph.
func (G *Graph) Graph() graph.Undirected {
	return G.g
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atoms)
}

//Neighbors returns the indexes of the atoms bonded to atom i, in ascending order.
//The slice must not be modified.
func (G *Graph) Neighbors(i int) []int {
	return G.adj[i]
}

//BondBetween returns the bond between atoms i and j, or nil if they are not bonded.
func (G *Graph) BondBetween(i, j int) *chem.Bond {
	e := G.g.Edge(int64(i), int64(j))
	if e == nil {
		return nil
	}
	return e.(*Bond).Bond
}

//Fragments returns the indexes of the atoms in each connected part of the graph (i.e. each molecule).
//Each fragment is sorted, and fragments are sorted by their first atom.
func (G *Graph) Fragments() [][]int {
	cc := topo.ConnectedComponents(G.g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		f := make([]int, 0, len(c))
		for _, n := range c {
			f = append(f, int(n.ID()))
		}
		sort.Ints(f)
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Chains calls fn for every simple path of exactly n bonded atoms. Paths are given as
//atom indexes. Every path is found twice, once from each end: the caller decides which
//one to keep. Starting atoms go in ascending index order, and so do the neighbors
//followed at each step. The slice given to fn is reused, so fn must copy it to keep it.
func (G *Graph) Chains(n int, fn func(path []int)) {
	if n < 1 {
		return
	}
	path := make([]int, 0, n)
	onpath := make([]bool, len(G.atoms))
	var walk func(i int)
	walk = func(i int) {
		path = append(path, i)
		onpath[i] = true
		if len(path) == n {
			fn(path)
		} else {
			for _, j := range G.adj[i] {
				if !onpath[j] {
					walk(j)
				}
			}
		}
		onpath[i] = false
		path = path[:len(path)-1]
	}
	for i := range G.atoms {
		walk(i)
	}
}
