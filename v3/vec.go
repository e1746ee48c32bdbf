/*
 * vec.go, part of gofrag.
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

package v3

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

//Unit returns v normalized. The second value is false if v is (numerically) zero,
//in which case the zero vector is returned.
func Unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n <= appzero {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

//Direction returns the unit vector that goes from "from" to "to".
func Direction(from, to r3.Vec) (r3.Vec, bool) {
	return Unit(r3.Sub(to, from))
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	n := F.NVecs()
	col := make([]float64, n)
	var c [3]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < n; i++ {
			col[i] = F.At(i, j)
		}
		c[j] = floats.Sum(col) / float64(n)
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

const appzero float64 = 0.000000000001 //Everything equal or less than this is considered zero.
