/*
 * geometric.go, part of gofrag.
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
	"math"

	"github.com/rmera/gofrag/chemgraph"
	v3 "github.com/rmera/gofrag/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//RotateAbout rotates, in place, the vectors of coords with indexes in which (all of them if
//which is nil) by angle radians around the axis that goes from ax1 to ax2.
//Uses gonum's quaternion-based rotations.
func RotateAbout(coords *v3.Matrix, which []int, ax1, ax2 r3.Vec, angle float64) error {
	axis, ok := v3.Unit(r3.Sub(ax2, ax1))
	if !ok {
		return newError(ErrZeroAxis, "RotateAbout", nil)
	}
	rot := r3.NewRotation(angle, axis)
	if which == nil {
		which = make([]int, coords.NVecs())
		for i := range which {
			which[i] = i
		}
	}
	for _, i := range which {
		p := r3.Sub(coords.Vec(i), ax1)
		coords.SetVec(i, r3.Add(rot.Rotate(p), ax1))
	}
	return nil
}

//BondRotate rotates, in place, all the atoms at the At2 side of the bond with index bond,
//by angle radians around the axis that goes from At1 to At2, producing a new conformer.
//It returns an error if the bond is part of a ring, as there are no 2 sides to it then.
func (M *Molecule) BondRotate(bond int, angle float64) error {
	if bond < 0 || bond >= len(M.Bonds) {
		return newError(fmt.Sprintf("No bond with index %d", bond), "BondRotate", nil)
	}
	b := M.Bonds[bond]
	side, ok := chemgraph.Side(M.Len(), M.Pairs(), bond, b.At2)
	if !ok {
		return newError(fmt.Sprintf("%s: bond %d (%d-%d)", ErrRingBond, bond, b.At1, b.At2), "BondRotate", nil)
	}
	err := RotateAbout(M.Coords, side, M.Coord(b.At1), M.Coord(b.At2), angle)
	return errDecorate(err, "BondRotate")
}

//Superimpose returns the RMSD between the coordinates of M and those of other, after
//the optimal rigid body alignment of other onto M. Atom i of M is taken to correspond
//to atom i of other. Neither molecule is modified.
func (M *Molecule) Superimpose(other *Molecule) (float64, error) {
	if M.Len() != other.Len() {
		return 0, newError(fmt.Sprintf("%s: %d vs %d", ErrAtomsMismatch, M.Len(), other.Len()), "Superimpose", nil)
	}
	if M.Len() == 0 {
		return 0, nil
	}
	rmsd, err := BestFitRMSD(other.Coords, M.Coords)
	return rmsd, errDecorate(err, "Superimpose")
}

//BestFitRMSD superimposes test onto templa with the Kabsch algorithm (the rotation
//comes from the SVD of the covariance matrix of the centered coordinates, corrected
//to be a proper rotation) and returns the RMSD after the superposition.
func BestFitRMSD(test, templa *v3.Matrix) (float64, error) {
	n := test.NVecs()
	if n != templa.NVecs() {
		return 0, newError(ErrAtomsMismatch, "BestFitRMSD", nil)
	}
	if n == 0 {
		return 0, nil
	}
	ctest := test.Clone()
	ctest.SubVec(ctest, test.Centroid())
	ctempla := templa.Clone()
	ctempla.SubVec(ctempla, templa.Centroid())

	var H mat.Dense
	H.Mul(ctest.Dense.T(), ctempla.Dense)
	var svd mat.SVD
	if ok := svd.Factorize(&H, mat.SVDFull); !ok {
		return 0, newError("SVD factorization failed", "BestFitRMSD", nil)
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	d := 1.0
	if mat.Det(&U)*mat.Det(&V) < 0 {
		d = -1 //avoids a reflection
	}
	var VD, R mat.Dense
	VD.Mul(&V, mat.NewDiagDense(3, []float64{1, 1, d}))
	R.Mul(&VD, U.T())
	var rotated mat.Dense
	rotated.Mul(ctest.Dense, R.T())

	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			diff := rotated.At(i, j) - ctempla.At(i, j)
			sum += diff * diff
		}
	}
	return math.Sqrt(sum / float64(n)), nil
}

//RMSD returns the RMSD (root of the mean square deviation) for the sets of cartesian
//coordinates in test and template, without superimposing them.
func RMSD(test, templa *v3.Matrix) (float64, error) {
	n := test.NVecs()
	if n != templa.NVecs() {
		return 0, newError(ErrAtomsMismatch, "RMSD", nil)
	}
	if n == 0 {
		return 0, nil
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := r3.Norm(r3.Sub(test.Vec(i), templa.Vec(i)))
		sum += d * d
	}
	return math.Sqrt(sum / float64(n)), nil
}
