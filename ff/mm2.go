/*
 * mm2.go, part of gomm2.
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
	"fmt"

	chem "github.com/rmera/gomm2"
	"github.com/rmera/gomm2/chemgraph"
	v3 "github.com/rmera/gomm2/v3"
	"go.uber.org/zap"
)

//State is the state of the term list of a force field.
type State int

const (
	Stale       State = iota //the structure changed, terms must be built again
	Enumerating              //building the terms
	Current                  //ready to compute forces
)

func (S State) String() string {
	switch S {
	case Stale:
		return "stale"
	case Enumerating:
		return "enumerating"
	case Current:
		return "current"
	}
	return fmt.Sprintf("State(%d)", int(S))
}

//Option configures an MM2 force field.
type Option func(*MM2)

//WithLogger sets the logger. Parameter lookups that fall back to default values are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(M *MM2) {
		if l != nil {
			M.logger = l
		}
	}
}

//WithElectrostatics turns on the Coulomb interaction between the fractional charges
//obtained from bond dipoles. It is off by default.
func WithElectrostatics(on bool) Option {
	return func(M *MM2) {
		M.electrostatics = on
	}
}

//WithLongRangeWorkers splits the long-range pass among n goroutines. n <= 1
//runs it in the calling goroutine, which is the default.
func WithLongRangeWorkers(n int) Option {
	return func(M *MM2) {
		M.workers = n
	}
}

//MM2 is the MM2 force field, acting on one structure. It builds its terms from
//the bonds of the structure, and builds them again after each change in the structure.
//It implements chem.ForceField.
type MM2 struct {
	s              *chem.Structure
	state          State
	terms          []Term
	excluded       map[pairKey]struct{}
	electrostatics bool
	workers        int
	logger         *zap.Logger
}

//NewMM2 returns an MM2 force field attached to s.
func NewMM2(s *chem.Structure, opts ...Option) *MM2 {
	if s == nil {
		panic("NewMM2: nil structure")
	}
	M := &MM2{s: s, workers: 1, logger: zap.NewNop(), excluded: make(map[pairKey]struct{})}
	for _, o := range opts {
		o(M)
	}
	s.Attach(M)
	return M
}

//StructureChanged marks the terms as stale. Implements chem.ForceField
func (M *MM2) StructureChanged() {
	M.state = Stale
}

//State returns the state of the term list.
func (M *MM2) State() State {
	return M.state
}

//Terms returns the bonded terms currently in use. The slice is a copy.
func (M *MM2) Terms() []Term {
	ret := make([]Term, len(M.terms))
	copy(ret, M.terms)
	return ret
}

//Excluded returns true if the pair a-b is left out of the long-range pass, i.e.
//if a and b are bonded, or both bonded to a third atom.
func (M *MM2) Excluded(a, b *chem.Atom) bool {
	_, ok := M.excluded[keyOf(a, b)]
	return ok
}

//update builds the terms again if needed.
func (M *MM2) update() error {
	if M.state == Current {
		return nil
	}
	if err := M.enumerate(); err != nil {
		M.state = Stale
		return err
	}
	M.state = Current
	return nil
}

//enumerate infers the bonds, rehybridizes all atoms, and builds the length, angle
//and torsion terms by walking the bond graph. Each chain is found from both ends; only
//one direction is kept.
func (M *MM2) enumerate() error {
	M.state = Enumerating
	bonds, err := M.s.InferBonds()
	if err != nil {
		return chem.ErrDecorate(err, "MM2.enumerate")
	}
	perAtom := make(map[*chem.Atom][]*chem.Bond, M.s.Len())
	for _, b := range bonds {
		a1, a2 := b.Atoms()
		perAtom[a1] = append(perAtom[a1], b)
		perAtom[a2] = append(perAtom[a2], b)
	}
	M.s.Each(func(_ int, a *chem.Atom) {
		a.Rehybridize(perAtom[a])
	})
	if M.electrostatics {
		AssignFractionalCharges(M.s, bonds)
	}
	G := chemgraph.New(M.s, bonds)
	M.terms = M.terms[:0]
	M.excluded = make(map[pairKey]struct{}, 3*len(bonds))
	at := M.s.Atom
	var misses int
	G.Chains(LengthKind.ChainLength(), func(p []int) {
		if p[0] >= p[1] {
			return
		}
		t, found := newLengthTerm(at(p[0]), at(p[1]))
		M.add(t, found, &misses)
		M.excluded[keyOf(t.a, t.b)] = struct{}{}
	})
	G.Chains(AngleKind.ChainLength(), func(p []int) {
		if p[0] >= p[2] {
			return
		}
		t, found := newAngleTerm(at(p[0]), at(p[1]), at(p[2]))
		M.add(t, found, &misses)
		M.excluded[keyOf(t.a, t.c)] = struct{}{}
	})
	G.Chains(TorsionKind.ChainLength(), func(p []int) {
		first, last := at(p[0]).Pos.X, at(p[3]).Pos.X
		if first > last || (first == last && p[0] > p[3]) {
			return
		}
		t, found := newTorsionTerm(at(p[0]), at(p[1]), at(p[2]), at(p[3]))
		M.add(t, found, &misses)
	})
	M.logger.Debug("MM2 terms built",
		zap.Int("atoms", M.s.Len()),
		zap.Int("bonds", len(bonds)),
		zap.Int("terms", len(M.terms)),
		zap.Int("excluded", len(M.excluded)),
		zap.Int("defaultParams", misses))
	return nil
}

func (M *MM2) add(t Term, found bool, misses *int) {
	M.terms = append(M.terms, t)
	if !found {
		*misses++
		if ce := M.logger.Check(zap.DebugLevel, "no parameters, using defaults"); ce != nil {
			syms := make([]string, 0, 4)
			for _, a := range t.Atoms() {
				syms = append(syms, a.Symbol()+a.Hybridization().String())
			}
			ce.Write(zap.Stringer("kind", t.Kind()), zap.Strings("types", syms))
		}
	}
}

//ComputeForces zeroes the force on every atom of the structure and adds the
//MM2 forces to them. The terms are built again first, if the structure changed.
//Implements chem.ForceField
func (M *MM2) ComputeForces() error {
	if err := M.update(); err != nil {
		return chem.ErrDecorate(err, "MM2.ComputeForces")
	}
	atoms := M.s.Atoms()
	for _, a := range atoms {
		a.Force = v3.Zero
	}
	for _, t := range M.terms {
		t.ComputeForces()
	}
	_, lr := M.longRange(atoms)
	for i, a := range atoms {
		a.AddForce(lr[i])
	}
	return nil
}

//EnergyByKind returns the potential energy of the structure, in aJ, for each kind of term.
func (M *MM2) EnergyByKind() (map[TermKind]float64, error) {
	if err := M.update(); err != nil {
		return nil, chem.ErrDecorate(err, "MM2.EnergyByKind")
	}
	ret := map[TermKind]float64{LengthKind: 0, AngleKind: 0, TorsionKind: 0}
	for _, t := range M.terms {
		ret[t.Kind()] += t.Energy()
	}
	ret[LongRangeKind], _ = M.longRange(M.s.Atoms())
	return ret, nil
}

//PotentialEnergy returns the potential energy of the structure, in aJ, with
//the same terms used by ComputeForces.
func (M *MM2) PotentialEnergy() (float64, error) {
	byKind, err := M.EnergyByKind()
	if err != nil {
		return 0, chem.ErrDecorate(err, "MM2.PotentialEnergy")
	}
	e := 0.0
	for _, k := range []TermKind{LengthKind, AngleKind, TorsionKind, LongRangeKind} {
		e += byKind[k]
	}
	return e, nil
}
