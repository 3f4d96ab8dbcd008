/*
 * structure.go, part of gomm2.
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
	v3 "github.com/rmera/gomm2/v3"
	"go.uber.org/zap"
)

//Structure is an ordered set of atoms. The position of an atom in the set is its index,
//which is also the iteration order. A Structure infers (and keeps) its bonds, and
//can have a force field attached to it.
//A Structure is not safe for concurrent use.
type Structure struct {
	atoms      []*Atom
	byID       map[int64]int
	bonds      []*Bond
	bondsValid bool
	ff         ForceField
	meta       map[string]string
	ids        *IDAllocator
	logger     *zap.Logger
}

//Option configures a Structure.
type Option func(*Structure)

//WithIDAllocator makes the structure take the ids for the atoms it creates from ids.
func WithIDAllocator(ids *IDAllocator) Option {
	return func(S *Structure) {
		if ids != nil {
			S.ids = ids
		}
	}
}

//WithLogger sets the logger the structure uses.
func WithLogger(l *zap.Logger) Option {
	return func(S *Structure) {
		if l != nil {
			S.logger = l
		}
	}
}

//NewStructure returns an empty structure. Unless an allocator is given, the structure
//gets its own, starting at 1.
func NewStructure(opts ...Option) *Structure {
	S := &Structure{
		byID:   make(map[int64]int),
		meta:   make(map[string]string),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(S)
	}
	if S.ids == nil {
		S.ids = NewIDAllocator(1)
	}
	return S
}

//Len returns the number of atoms.
func (S *Structure) Len() int {
	return len(S.atoms)
}

//Atom returns the atom with index i. It panics if i is out of range.
func (S *Structure) Atom(i int) *Atom {
	return S.atoms[i]
}

//AtomByID returns the atom with the given id, or nil if there is none.
func (S *Structure) AtomByID(id int64) *Atom {
	i, ok := S.byID[id]
	if !ok {
		return nil
	}
	return S.atoms[i]
}

//Index returns the index of a in the structure, or -1 if a is not in it.
func (S *Structure) Index(a *Atom) int {
	if a == nil {
		return -1
	}
	i, ok := S.byID[a.id]
	if !ok || S.atoms[i] != a {
		return -1
	}
	return i
}

//Atoms returns a slice with the atoms in the structure, in order.
//The slice is a copy, the atoms are not.
func (S *Structure) Atoms() []*Atom {
	ret := make([]*Atom, len(S.atoms))
	copy(ret, S.atoms)
	return ret
}

//Each calls fn on every atom, in order.
func (S *Structure) Each(fn func(i int, a *Atom)) {
	for i, a := range S.atoms {
		fn(i, a)
	}
}

//AddAtom appends a to the structure. It returns an error if an atom
//with the same id is already present, and panics if a is nil.
func (S *Structure) AddAtom(a *Atom) error {
	if a == nil {
		panic("AddAtom: nil atom")
	}
	if _, ok := S.byID[a.id]; ok {
		return NewError(ErrAtomPresent, "Structure.AddAtom", "id %d", a.id)
	}
	S.byID[a.id] = len(S.atoms)
	S.atoms = append(S.atoms, a)
	S.announceChange()
	return nil
}

//NewAtom creates an atom of the element with the given symbol, with an id from
//the structure's allocator, and adds it to the structure.
func (S *Structure) NewAtom(symbol string, pos v3.Vec) (*Atom, error) {
	e, err := ElementBySymbol(symbol)
	if err != nil {
		return nil, ErrDecorate(err, "Structure.NewAtom")
	}
	a := NewAtom(S.ids, e, pos)
	if err := S.AddAtom(a); err != nil {
		return nil, ErrDecorate(err, "Structure.NewAtom")
	}
	return a, nil
}

//RemoveAtom removes a from the structure. The atoms after it move one place up.
func (S *Structure) RemoveAtom(a *Atom) error {
	i := S.Index(a)
	if i < 0 {
		return NewError(ErrAtomNotFound, "Structure.RemoveAtom", "%v", a)
	}
	copy(S.atoms[i:], S.atoms[i+1:])
	S.atoms[len(S.atoms)-1] = nil
	S.atoms = S.atoms[:len(S.atoms)-1]
	delete(S.byID, a.id)
	for j := i; j < len(S.atoms); j++ {
		S.byID[S.atoms[j].id] = j
	}
	S.announceChange()
	return nil
}

//announceChange drops the bond list and tells the force field, if any, that
//the topology changed.
func (S *Structure) announceChange() {
	S.bonds = nil
	S.bondsValid = false
	if S.ff != nil {
		S.ff.StructureChanged()
	}
}

//Invalidate has the same effect as adding or removing an atom: bonds will be inferred
//again and the force field will rebuild its terms. Use it after moving atoms enough
//to change the connectivity.
func (S *Structure) Invalidate() {
	S.announceChange()
}

//Attach makes ff the force field of the structure, replacing the previous one, if any.
func (S *Structure) Attach(ff ForceField) {
	S.ff = ff
	if ff != nil {
		ff.StructureChanged()
	}
}

//Detach removes the force field from the structure, and returns it.
func (S *Structure) Detach() ForceField {
	ff := S.ff
	S.ff = nil
	return ff
}

//ForceField returns the attached force field, or nil.
func (S *Structure) ForceField() ForceField {
	return S.ff
}

//Meta returns the metadata value for key, and whether it was set.
func (S *Structure) Meta(key string) (string, bool) {
	v, ok := S.meta[key]
	return v, ok
}

//SetMeta sets the metadata value for key.
func (S *Structure) SetMeta(key, value string) {
	S.meta[key] = value
}

//Metadata returns a copy of the metadata map.
func (S *Structure) Metadata() map[string]string {
	ret := make(map[string]string, len(S.meta))
	for k, v := range S.meta {
		ret[k] = v
	}
	return ret
}

//Clone returns a deep copy of the structure, without force field and with new atom
//ids from the same allocator.
func (S *Structure) Clone() *Structure {
	return S.copyOf(S.atoms)
}

//copyOf returns a new structure, with the same allocator, logger and metadata as S,
//containing copies of atoms.
func (S *Structure) copyOf(atoms []*Atom) *Structure {
	n := NewStructure(WithIDAllocator(S.ids), WithLogger(S.logger))
	for k, v := range S.meta {
		n.meta[k] = v
	}
	n.atoms = make([]*Atom, 0, len(atoms))
	for _, a := range atoms {
		c := a.copyAs(S.ids)
		n.byID[c.id] = len(n.atoms)
		n.atoms = append(n.atoms, c)
	}
	return n
}
