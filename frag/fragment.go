/*
 * fragment.go, part of gofrag.
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

import (
	chem "github.com/rmera/gofrag"
	"gonum.org/v1/gonum/spatial/r3"
)

//Edge is one side of a bond between two fragments. Each such bond gives
//one Edge in each of the two fragments, and each of them knows where the other is.
type Edge struct {
	Target     int     //ID of the fragment at the other side.
	Reverse    int     //index of the opposite Edge in the Edges of the target fragment.
	Bond       int     //index of the bond in the decomposed molecule.
	LocalAtom  int     //index in the decomposed molecule of the atom in this fragment.
	RemoteAtom int     //index in the decomposed molecule of the atom in the target fragment.
	Local      r3.Vec  //position of LocalAtom
	Remote     r3.Vec  //position of RemoteAtom
	Axis       *r3.Vec //unit vector from LocalAtom to RemoteAtom, nil if the rotation axis is ambiguous.
}

//Fragment is a rigid group of atoms. The embedded Molecule contains copies of
//the atoms, which keep their IDs, their coordinates, and the bonds among them.
type Fragment struct {
	ID int
	*chem.Molecule
	Indexes []int //indexes of the atoms in the decomposed molecule, in increasing order.
	NearIDs []int //RemoteAtom of each edge, in the same order.
	Edges   []*Edge
}

//Formula returns the molecular formula of the fragment, in the Hill order.
func (F *Fragment) Formula() string {
	return chem.Formula(F)
}

//Rotatable returns the edges of F with a rotation axis.
func (F *Fragment) Rotatable() []*Edge {
	ret := make([]*Edge, 0, len(F.Edges))
	for _, e := range F.Edges {
		if e.Axis != nil {
			ret = append(ret, e)
		}
	}
	return ret
}
