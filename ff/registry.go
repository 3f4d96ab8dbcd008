/*
 * registry.go, part of gomm2.
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
	"sort"
	"strings"

	chem "github.com/rmera/gomm2"
)

//Constructor builds a force field of some kind and attaches it to s.
type Constructor func(s *chem.Structure, opts ...Option) chem.ForceField

//The force fields available, by name. The set is closed: there is no way to add to it
//at run time.
var registry = map[string]Constructor{
	"mm2": func(s *chem.Structure, opts ...Option) chem.ForceField { return NewMM2(s, opts...) },
}

//Names returns the names New accepts, sorted.
func Names() []string {
	ret := make([]string, 0, len(registry))
	for k := range registry {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//New returns the force field with the given name (case insensitive), attached to s.
func New(name string, s *chem.Structure, opts ...Option) (chem.ForceField, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, chem.NewError(chem.ErrUnknownSymbolic, "ff.New", "force field %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return c(s, opts...), nil
}
