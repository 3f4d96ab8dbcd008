/*
 * octree.go, part of gomm2.
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

//Package octree implements a cubic spatial partition over items with a position.
//It is used by gomm2 to find the atoms within a region of space without
//testing every atom.
//
//Nodes live in an arena slice and refer to their children by index. Leaves
//are the nodes whose half-side is not larger than the granularity given to New;
//they keep the items inserted in them together with the position they had
//at insertion time.
package octree

import (
	"errors"
	"fmt"

	v3 "github.com/rmera/gomm2/v3"
)

//ErrOutOfBounds is returned when inserting a position outside the root cube.
var ErrOutOfBounds = errors.New("position outside the octree bounds")

const none = -1

//rootSlack pads the root cube so the corners of the bounds given to New are inside it.
const rootSlack = 1e-9

type entry[T comparable] struct {
	item T
	pos  v3.Vec
}

type node[T comparable] struct {
	center   v3.Vec
	half     float64
	children [8]int //arena indexes, none if not created yet
	leaf     bool
	entries  []entry[T]
	count    int //items in the subtree
}

func (n *node[T]) box() v3.Box {
	return v3.CubeAround(n.center, n.half)
}

//Tree is an octree over items of type T.
type Tree[T comparable] struct {
	nodes       []node[T]
	granularity float64
	where       map[T]int //item -> leaf holding it
}

//New returns an empty tree whose root is the smallest cube (slightly padded), centered on the
//center of bounds, that encloses bounds. Nodes with half-side <= granularity are leaves.
//A non-positive granularity makes the root itself a leaf.
func New[T comparable](bounds v3.Box, granularity float64) *Tree[T] {
	size := bounds.Size()
	half := 0.5 * max(size.X, size.Y, size.Z)
	if half <= 0 {
		half = granularity
	}
	if half <= 0 {
		half = 1
	}
	//center+half can fall a few ulps short of bounds.Max
	half = half*(1+rootSlack) + rootSlack
	O := &Tree[T]{granularity: granularity, where: make(map[T]int)}
	O.newNode(bounds.Center(), half)
	return O
}

func (O *Tree[T]) newNode(center v3.Vec, half float64) int {
	n := node[T]{center: center, half: half, leaf: O.granularity <= 0 || half <= O.granularity}
	for i := range n.children {
		n.children[i] = none
	}
	O.nodes = append(O.nodes, n)
	return len(O.nodes) - 1
}

//Len returns the number of items stored.
func (O *Tree[T]) Len() int {
	return len(O.where)
}

//Bounds returns the root cube.
func (O *Tree[T]) Bounds() v3.Box {
	return O.nodes[0].box()
}

//octant returns the index (0-7) of the child of n that contains p,
//and the center of that child.
func octant(center v3.Vec, half float64, p v3.Vec) (int, v3.Vec) {
	q := half / 2
	i := 0
	c := center
	if p.X >= center.X {
		i |= 1
		c.X += q
	} else {
		c.X -= q
	}
	if p.Y >= center.Y {
		i |= 2
		c.Y += q
	} else {
		c.Y -= q
	}
	if p.Z >= center.Z {
		i |= 4
		c.Z += q
	} else {
		c.Z -= q
	}
	return i, c
}

//Insert stores item at pos. Inserting an item already present at the same
//position does nothing. An item already present at a different position is moved.
func (O *Tree[T]) Insert(item T, pos v3.Vec) error {
	if !O.nodes[0].box().Contains(pos) {
		return fmt.Errorf("octree: inserting at %v: %w", pos, ErrOutOfBounds)
	}
	if leaf, ok := O.where[item]; ok {
		for _, e := range O.nodes[leaf].entries {
			if e.item == item && e.pos == pos {
				return nil
			}
		}
		O.Remove(item)
	}
	cur := 0
	for {
		O.nodes[cur].count++
		if O.nodes[cur].leaf {
			O.nodes[cur].entries = append(O.nodes[cur].entries, entry[T]{item: item, pos: pos})
			O.where[item] = cur
			return nil
		}
		oct, c := octant(O.nodes[cur].center, O.nodes[cur].half, pos)
		next := O.nodes[cur].children[oct]
		if next == none {
			//newNode may reallocate the arena, so no pointers to nodes are kept across this call.
			next = O.newNode(c, O.nodes[cur].half/2)
			O.nodes[cur].children[oct] = next
		}
		cur = next
	}
}

//Remove deletes item from the tree, and reports whether it was present.
func (O *Tree[T]) Remove(item T) bool {
	leaf, ok := O.where[item]
	if !ok {
		return false
	}
	var pos v3.Vec
	entries := O.nodes[leaf].entries
	for i, e := range entries {
		if e.item == item {
			pos = e.pos
			entries[i] = entries[len(entries)-1]
			O.nodes[leaf].entries = entries[:len(entries)-1]
			break
		}
	}
	delete(O.where, item)
	//walk down again to fix the counts
	cur := 0
	for {
		O.nodes[cur].count--
		if cur == leaf {
			break
		}
		oct, _ := octant(O.nodes[cur].center, O.nodes[cur].half, pos)
		cur = O.nodes[cur].children[oct]
	}
	return true
}

//Query returns every item whose stored position lies in the closed box region.
//The order of the result is not specified.
func (O *Tree[T]) Query(region v3.Box) []T {
	var ret []T
	return O.query(0, region, ret)
}

func (O *Tree[T]) query(idx int, region v3.Box, ret []T) []T {
	n := &O.nodes[idx]
	if n.count == 0 {
		return ret
	}
	switch region.Relation(n.box()) {
	case v3.Disjoint:
		return ret
	case v3.Inside:
		return O.collect(idx, ret)
	}
	if n.leaf {
		for _, e := range n.entries {
			if region.Contains(e.pos) {
				ret = append(ret, e.item)
			}
		}
		return ret
	}
	for _, c := range n.children {
		if c != none {
			ret = O.query(c, region, ret)
		}
	}
	return ret
}

//collect appends all the items under the node idx.
func (O *Tree[T]) collect(idx int, ret []T) []T {
	n := &O.nodes[idx]
	if n.leaf {
		for _, e := range n.entries {
			ret = append(ret, e.item)
		}
		return ret
	}
	for _, c := range n.children {
		if c != none {
			ret = O.collect(c, ret)
		}
	}
	return ret
}
