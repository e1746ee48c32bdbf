/*
 * errors.go, part of gofrag.
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

package frag

import "fmt"

//Error is the error type for the frag package. It is equivalent to chem.Error,
//and defined again as the fields of chem.Error are not exported.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

func newError(caller string, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true}
}

//decorator is implemented by the errors of all gofrag packages.
type decorator interface {
	Decorate(string) []string
}

//errDecorate adds caller to the decorations of err if it is a gofrag error,
//and returns err.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(decorator); ok {
		e.Decorate(caller)
	}
	return err
}
