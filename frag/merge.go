/*
 * merge.go, part of gofrag.
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
	"github.com/rmera/gofrag/chemgraph"
	"github.com/rmera/gofrag/partition"
	"go.uber.org/zap"
)

const (
	testAngle = 1.0  //rad, rotation used in the rigidity test.
	rigidTol  = 1e-5 //A, largest deviation a rotation can cause in a rigid group, exclusive.
)

//Merge groups the atoms of mol into rigid sets and returns the resulting partition.
//It runs 4 passes, in this order:
//
//	1. Atoms joined by a non-rotatable bond go together. Bonds to hydrogens are left for the last pass.
//	2. All atoms of each ring with at most O.MaxRingSize() atoms go together.
//	3. If O.MergeSolitary(), the two sides of a rotatable bond go together if
//	   this doesn't close a new ring and the joined group is rigid.
//	4. Each hydrogen joins the atoms it is bonded to.
//
//The only error returned is that of mol.Check().
func Merge(mol *chem.Molecule, O *Options) (*partition.Partition, error) {
	if err := mol.Check(); err != nil {
		return nil, errDecorate(err, "Merge")
	}
	if O == nil {
		O = DefaultOptions()
	}
	log := O.Logger()
	P := partition.New(mol.Len())
	hydrogen := func(b *chem.Bond) bool {
		return mol.Atom(b.At1).IsHydrogen() || mol.Atom(b.At2).IsHydrogen()
	}
	for _, b := range mol.Bonds {
		if !b.Rotor && !hydrogen(b) {
			P.Unite(b.At1, b.At2)
		}
	}
	pairs := mol.Pairs()
	for _, ring := range chemgraph.NewRingDetector(mol.Len(), pairs).Rings() {
		if !O.ringFits(len(ring)) {
			continue
		}
		for _, a := range ring[1:] {
			P.Unite(ring[0], a)
		}
	}
	if O.MergeSolitary() {
		for i, b := range mol.Bonds {
			if !b.Rotor || hydrogen(b) || P.Same(b.At1, b.At2) {
				continue
			}
			reason := solitary(mol, P, b)
			log.Debug("solitary rotor", zap.Int("bond", i), zap.Int("at1", b.At1), zap.Int("at2", b.At2), zap.String("reason", reason))
			if reason == merged {
				P.Unite(b.At1, b.At2)
			}
		}
	}
	for _, b := range mol.Bonds {
		if hydrogen(b) {
			P.Unite(b.At1, b.At2)
		}
	}
	return P, nil
}

//Outcomes of the solitary rotor test.
const (
	merged         = "merged"
	newRing        = "new-ring"
	notRigid       = "not-rigid"
	rotationFailed = "rotation-failed"
)

//solitary decides whether the two sets joined by the rotatable bond b can be merged.
//The union is tried on a copy of P. P itself is not modified.
func solitary(mol *chem.Molecule, P *partition.Partition, b *chem.Bond) string {
	tentative := P.Copy()
	tentative.Unite(b.At1, b.At2)
	setA := mol.Sub(P.Set(b.At1))
	setB := mol.Sub(P.Set(b.At2))
	united := mol.Sub(tentative.Set(b.At1))
	before := ringCount(setA) + ringCount(setB)
	if ringCount(united) != before {
		return newRing
	}
	for i, ub := range united.Bonds {
		if !ub.Rotor {
			continue
		}
		test := united.Copy()
		if err := test.BondRotate(i, testAngle); err != nil {
			return rotationFailed
		}
		dev, err := united.Superimpose(test)
		if err != nil {
			return rotationFailed
		}
		if dev >= rigidTol {
			return notRigid
		}
	}
	return merged
}

func ringCount(mol *chem.Molecule) int {
	return chemgraph.NewRingDetector(mol.Len(), mol.Pairs()).Count()
}
