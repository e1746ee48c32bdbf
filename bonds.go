/*
 * bonds.go, part of gofrag.
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

import (
	"fmt"
	"sort"

	"github.com/rmera/gofrag/chemgraph"
	"gonum.org/v1/gonum/spatial/r3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//AssignBonds replaces the bonds of mol with bonds assigned based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33. The new bonds have
//an undetermined order. Atoms with more bonds than their element allows lose the longest ones.
func AssignBonds(mol *Molecule) error {
	type candidate struct {
		b    *Bond
		dist float64
	}
	tot := mol.Len()
	perAtom := make([][]*candidate, tot)
	all := make([]*candidate, 0, tot)
	for i := 0; i < tot; i++ {
		cov1, ok := covalentRadius[mol.Atom(i).Symbol]
		if !ok {
			return newError(fmt.Sprintf("Couldn't find the covalent radius for %s %d", mol.Atom(i).Symbol, i), "AssignBonds", nil)
		}
		for j := i + 1; j < tot; j++ {
			cov2, ok := covalentRadius[mol.Atom(j).Symbol]
			if !ok {
				return newError(fmt.Sprintf("Couldn't find the covalent radius for %s %d", mol.Atom(j).Symbol, j), "AssignBonds", nil)
			}
			d := r3.Norm(r3.Sub(mol.Coord(i), mol.Coord(j)))
			if d < cov1+cov2+bondtol && d > tooclose {
				c := &candidate{b: &Bond{At1: i, At2: j}, dist: d}
				perAtom[i] = append(perAtom[i], c)
				perAtom[j] = append(perAtom[j], c)
				all = append(all, c)
			}
		}
	}
	removed := make(map[*candidate]bool)
	for i := 0; i < tot; i++ {
		max := maxBonds[mol.Atom(i).Symbol]
		if max == 0 {
			continue
		}
		kept := make([]*candidate, 0, len(perAtom[i]))
		for _, c := range perAtom[i] {
			if !removed[c] {
				kept = append(kept, c)
			}
		}
		sort.Slice(kept, func(k, l int) bool { return kept[k].dist < kept[l].dist })
		for _, c := range kept[minInt(max, len(kept)):] {
			removed[c] = true //we remove the longest bonds
		}
	}
	mol.Bonds = make([]*Bond, 0, len(all))
	for _, c := range all {
		if !removed[c] {
			c.b.Index = len(mol.Bonds)
			mol.Bonds = append(mol.Bonds, c.b)
		}
	}
	return nil
}

//AssignRotors sets the Rotor flag of each bond of mol. A bond is a rotor if it is a single
//bond (or of undetermined order), it is not part of a ring, and each of its atoms is bonded
//to at least one heavy (non-hydrogen) atom besides the other one.
func AssignRotors(mol *Molecule) {
	pairs := mol.Pairs()
	heavy := make([]int, mol.Len())
	for _, b := range mol.Bonds {
		if !mol.Atom(b.At2).IsHydrogen() {
			heavy[b.At1]++
		}
		if !mol.Atom(b.At1).IsHydrogen() {
			heavy[b.At2]++
		}
	}
	for i, b := range mol.Bonds {
		b.Rotor = false
		if b.Order != 0 && b.Order != 1 {
			continue
		}
		if mol.Atom(b.At1).IsHydrogen() || mol.Atom(b.At2).IsHydrogen() {
			continue
		}
		if heavy[b.At1] < 2 || heavy[b.At2] < 2 {
			continue
		}
		if _, split := chemgraph.Side(mol.Len(), pairs, i, b.At2); !split {
			continue //ring bond
		}
		b.Rotor = true
	}
}

//RotorCount returns the number of bonds flagged as rotors in mol.
func RotorCount(mol *Molecule) int {
	n := 0
	for _, b := range mol.Bonds {
		if b.Rotor {
			n++
		}
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
