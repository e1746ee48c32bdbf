/*
 * decompose.go, part of gofrag.
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
	"go.uber.org/zap"
)

//Decompose splits mol into rigid fragments joined by rotatable bonds.
//Rings with up to maxRingSize atoms (any size if maxRingSize is Unlimited) are
//kept in one fragment. If mergeSolitary is true, rotatable bonds whose rotation
//doesn't change the shape of the group they would form are not used as fragment
//boundaries. The fragment with ID i is the element i of the returned slice.
//Decompose keeps no state between calls, so it can be used concurrently on different molecules.
func Decompose(mol *chem.Molecule, maxRingSize int, mergeSolitary bool) ([]*Fragment, error) {
	O := DefaultOptions()
	O.MaxRingSize(maxRingSize)
	O.MergeSolitary(mergeSolitary)
	frags, err := DecomposeOptions(mol, O)
	return frags, errDecorate(err, "Decompose")
}

//DecomposeOptions is like Decompose, but takes the options from O.
//A nil O means DefaultOptions().
func DecomposeOptions(mol *chem.Molecule, O *Options) ([]*Fragment, error) {
	if O == nil {
		O = DefaultOptions()
	}
	P, err := Merge(mol, O)
	if err != nil {
		return nil, errDecorate(err, "DecomposeOptions")
	}
	frags := Build(mol, P.Sets())
	if ce := O.Logger().Check(zap.DebugLevel, "decomposed"); ce != nil {
		nedges := 0
		for _, f := range frags {
			nedges += len(f.Edges)
		}
		ce.Write(zap.String("molecule", mol.Name), zap.Int("atoms", mol.Len()), zap.Int("fragments", len(frags)), zap.Int("edges", nedges/2))
	}
	return frags, nil
}
