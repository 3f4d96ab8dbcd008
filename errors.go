/*
 * errors.go, part of gomm2.
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
	"fmt"
	"strings"
)

//Sentinel errors. They can be tested with errors.Is on any error returned by gomm2,
//as the CError type wraps them.
var (
	ErrEmptyStructure  = errors.New("structure has no atoms")
	ErrNoForceField    = errors.New("no force field attached to the structure")
	ErrUnknownElement  = errors.New("unknown element")
	ErrAtomNotFound    = errors.New("atom not present in the structure")
	ErrAtomPresent     = errors.New("atom already present in the structure")
	ErrInvalidOrder    = errors.New("invalid bond order")
	ErrUnknownSymbolic = errors.New("unknown symbolic name")
)

//CError is the error type returned by the gomm2 packages. Besides a message, it keeps
//a "decoration" trail: the names of the functions the error went through on its way up,
//and the sentinel error it corresponds to, if any.
type CError struct {
	msg      string
	deco     []string
	critical bool
	err      error
}

//NewError returns a CError with the given message, wrapping the sentinel err (which can be nil),
//and decorated with caller.
func NewError(err error, caller string, format string, args ...interface{}) *CError {
	ret := &CError{msg: fmt.Sprintf(format, args...), err: err, critical: true}
	ret.Decorate(caller)
	return ret
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	msg := err.msg
	if err.err != nil {
		if msg == "" {
			msg = err.err.Error()
		} else {
			msg = err.err.Error() + ": " + msg
		}
	}
	if len(err.deco) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(err.deco, " <- "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty string only returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *CError) Critical() bool { return err.critical }

//Unwrap returns the sentinel error, so errors.Is works.
func (err *CError) Unwrap() error { return err.err }

//ErrDecorate decorates err with caller if it is a gomm2 Error, and returns it.
//Other errors are wrapped in a new CError, so errors.Is still finds them. A nil err gives nil.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &CError{deco: []string{caller}, critical: true, err: err}
}
