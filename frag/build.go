/*
 * build.go, part of gofrag.
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
	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Build turns the atom sets of a partition of mol into fragments. Fragment i
//contains the atoms in sets[i]. Each bond between atoms of different fragments
//gives a pair of edges. An edge gets a rotation axis only if its local atom
//takes part in exactly one rotatable bond, between non-hydrogen atoms, that
//crosses fragments.
//The sets must cover all the atoms of mol, each atom in exactly one set.
func Build(mol *chem.Molecule, sets [][]int) []*Fragment {
	fragID := make([]int, mol.Len())
	frags := make([]*Fragment, len(sets))
	for i, set := range sets {
		for _, a := range set {
			fragID[a] = i
		}
		sub := mol.Sub(set)
		frags[i] = &Fragment{ID: i, Molecule: sub, Indexes: append([]int(nil), set...)}
	}
	crossing := func(b *chem.Bond) bool {
		return fragID[b.At1] != fragID[b.At2]
	}
	axes := make([][]r3.Vec, mol.Len())
	for _, b := range mol.Bonds {
		if !b.Rotor || !crossing(b) || mol.Atom(b.At1).IsHydrogen() || mol.Atom(b.At2).IsHydrogen() {
			continue
		}
		u, ok := v3.Direction(mol.Coord(b.At1), mol.Coord(b.At2))
		if !ok {
			continue //superimposed atoms, no direction to use
		}
		axes[b.At1] = append(axes[b.At1], u)
		axes[b.At2] = append(axes[b.At2], r3.Scale(-1, u))
	}
	for i, b := range mol.Bonds {
		if !crossing(b) {
			continue
		}
		fa, fb := frags[fragID[b.At1]], frags[fragID[b.At2]]
		ea := &Edge{
			Target:     fb.ID,
			Reverse:    len(fb.Edges),
			Bond:       i,
			LocalAtom:  b.At1,
			RemoteAtom: b.At2,
			Local:      mol.Coord(b.At1),
			Remote:     mol.Coord(b.At2),
		}
		eb := &Edge{
			Target:     fa.ID,
			Reverse:    len(fa.Edges),
			Bond:       i,
			LocalAtom:  b.At2,
			RemoteAtom: b.At1,
			Local:      mol.Coord(b.At2),
			Remote:     mol.Coord(b.At1),
		}
		if len(axes[b.At1]) == 1 {
			ax := axes[b.At1][0]
			ea.Axis = &ax
		}
		if len(axes[b.At2]) == 1 {
			ax := axes[b.At2][0]
			eb.Axis = &ax
		}
		fa.Edges = append(fa.Edges, ea)
		fb.Edges = append(fb.Edges, eb)
		fa.NearIDs = append(fa.NearIDs, b.At2)
		fb.NearIDs = append(fb.NearIDs, b.At1)
	}
	return frags
}
