/*
 * check.go, part of gofrag.
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
)

//AtomFragments returns, for each of the n atoms of the decomposed molecule, the ID of
//the fragment that contains it, or -1 if no fragment does.
func AtomFragments(n int, frags []*Fragment) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = -1
	}
	for _, f := range frags {
		for _, a := range f.Indexes {
			if a >= 0 && a < n {
				ret[a] = f.ID
			}
		}
	}
	return ret
}

//Check verifies that frags is a consistent decomposition of mol: each atom
//is in exactly one fragment, and each bond between fragments is represented by
//exactly one pair of edges that point to each other.
func Check(mol *chem.Molecule, frags []*Fragment) error {
	owner := make([]int, mol.Len())
	for i := range owner {
		owner[i] = -1
	}
	for i, f := range frags {
		if f.ID != i {
			return newError("Check", "fragment %d has ID %d", i, f.ID)
		}
		if len(f.Indexes) != f.Len() {
			return newError("Check", "fragment %d has %d atoms but %d indexes", i, f.Len(), len(f.Indexes))
		}
		for _, a := range f.Indexes {
			if a < 0 || a >= mol.Len() {
				return newError("Check", "fragment %d contains atom %d, out of range", i, a)
			}
			if owner[a] >= 0 {
				return newError("Check", "atom %d is in fragments %d and %d", a, owner[a], i)
			}
			owner[a] = i
		}
	}
	for a, o := range owner {
		if o < 0 {
			return newError("Check", "atom %d is in no fragment", a)
		}
	}
	nedges := 0
	for _, f := range frags {
		nedges += len(f.Edges)
		for j, e := range f.Edges {
			if e.Target < 0 || e.Target >= len(frags) || e.Target == f.ID {
				return newError("Check", "edge %d of fragment %d has a bad target %d", j, f.ID, e.Target)
			}
			t := frags[e.Target]
			if e.Reverse < 0 || e.Reverse >= len(t.Edges) {
				return newError("Check", "edge %d of fragment %d has a bad reverse index %d", j, f.ID, e.Reverse)
			}
			r := t.Edges[e.Reverse]
			if r.Target != f.ID || r.Reverse != j || r.Bond != e.Bond || r.LocalAtom != e.RemoteAtom || r.RemoteAtom != e.LocalAtom {
				return newError("Check", "edge %d of fragment %d and its reverse don't match", j, f.ID)
			}
			if owner[e.LocalAtom] != f.ID || owner[e.RemoteAtom] != e.Target {
				return newError("Check", "edge %d of fragment %d joins atoms of other fragments", j, f.ID)
			}
		}
	}
	crossing := 0
	for _, b := range mol.Bonds {
		if owner[b.At1] != owner[b.At2] {
			crossing++
		}
	}
	if nedges != 2*crossing {
		return newError("Check", "%d edges for %d bonds between fragments", nedges, crossing)
	}
	return nil
}
