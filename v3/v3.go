/*
 * v3.go, part of gofrag.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
//gonum has no empty matrices, so Zeros(0) returns nil, which has 0 vecs.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return nil
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//FromVecs returns a new Matrix with the given points as rows.
func FromVecs(vecs []r3.Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector of F as an r3.Vec
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//SetVec sets the ith vector of F to v
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

//Vecs returns copies of all the vectors in F.
func (F *Matrix) Vecs() []r3.Vec {
	ret := make([]r3.Vec, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

//SomeVecs puts in the receiver all the ith vectors of matrix A,
//where i are the numbers in clist. The vectors are in the same order
//than the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrIndexOutOfRange)
		}
		for j := 0; j < ac; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//AddVec adds a vector to each vector of A, putting the result on the receiver.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

//SubVec subtracts the vector to each vector of the matrix A, putting
//the result on the receiver.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	F.AddVec(A, r3.Scale(-1, vec))
}

//Stack puts A stacked over B in F, which must have room for both.
func (F *Matrix) Stack(A, B *Matrix) {
	ar := 0
	if A != nil {
		ar = A.NVecs()
	}
	br := 0
	if B != nil {
		br = B.NVecs()
	}
	if F.NVecs() < ar+br {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, A.Vec(i))
	}
	for i := 0; i < br; i++ {
		F.SetVec(ar+i, B.Vec(i))
	}
}

//Clone returns a deep copy of F. A nil F gives a nil copy.
func (F *Matrix) Clone() *Matrix {
	if F == nil {
		return nil
	}
	r := Zeros(F.NVecs())
	r.Copy(F.Dense)
	return r
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		}
		v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
	}
	return strings.Join(v, "")
}

//PanicMsg is a message used for panics. It satisfies the error interface, so a
//recovered panic can be returned as an error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goFrag/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("goFrag/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goFrag/v3: index out of range")
)
