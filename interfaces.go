/*
 * interfaces.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package chem

import "fmt"

//Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

//Error is the error type returned by the functions in this package.
//The Decorate method allows to add information about the calling stack
//as the error is passed up, without changing its type.
type Error struct {
	msg      string
	deco     []string
	critical bool
	err      error //the underlying error, if any.
}

//Error returns the error message, followed by the underlying error, if there is one.
func (err *Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.err.Error())
	}
	return err.msg
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.err }

func newError(msg string, caller string, err error) *Error {
	return &Error{msg: msg, deco: []string{caller}, critical: true, err: err}
}

//errDecorate is a helper function that decorates the error with the caller's name
//if the error is a *Error, and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

const (
	ErrNilCoords      = "Molecule has no coordinates"
	ErrCoordsMismatch = "Number of coordinates doesn't match the number of atoms"
	ErrBondRange      = "Bond references an atom out of range"
	ErrSelfBond       = "Bond joins an atom with itself"
	ErrRingBond       = "Bond doesn't split the molecule in two sides, it is probably part of a ring"
	ErrZeroAxis       = "Bond atoms have the same coordinates, can't define a rotation axis"
	ErrAtomsMismatch  = "Molecules have different numbers of atoms"
)
