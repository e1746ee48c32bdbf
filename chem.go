/*
 * chem.go, part of gofrag.
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

import "strings"

//HydrogenMarker is the prefix that marks an atom type label as a hydrogen.
const HydrogenMarker = "H"

//Atom contains the information about one atom, except for the coordinates,
//which will be in the Coords matrix of the Molecule that owns the atom.
type Atom struct {
	Name    string //atom type label, for instance "C.ar" or "HD". The hydrogen test reads this one.
	Symbol  string
	ID      int //stable id, the 0-based position of the atom in the input.
	Isotope int //mass number, 0 if not given.
	Charge  int
	index   int
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	r := *A
	return &r
}

//Index returns the index of the atom in the molecule that owns it.
func (A *Atom) Index() int {
	return A.index
}

//label returns Name or, if it is empty, Symbol.
func (A *Atom) label() string {
	if A.Name != "" {
		return A.Name
	}
	return A.Symbol
}

//IsHydrogen returns true if the atom type label starts with HydrogenMarker.
func (A *Atom) IsHydrogen() bool {
	return strings.HasPrefix(A.label(), HydrogenMarker)
}

//Bond joins 2 atoms, referenced by their indexes in the Molecule.
type Bond struct {
	Index int
	At1   int
	At2   int
	Order float64 //Order 0 means undetermined, 1.5 aromatic.
	Rotor bool    //can the bond be used as an axis of internal rotation?
}

//Copy returns a copy of the bond
func (B *Bond) Copy() *Bond {
	r := *B
	return &r
}

//Cross returns the index of the atom at the other side of the bond from origin.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//Contains returns true if the atom with index i is one of the bond's atoms.
func (B *Bond) Contains(i int) bool {
	return B.At1 == i || B.At2 == i
}
