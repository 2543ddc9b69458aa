/*
 * matrix.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
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

// Matrix is a set of vectors in 3D space.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{new(mat.Dense)}
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// FromVecs returns a Matrix with one row per vector in vecs.
func FromVecs(vecs []r3.Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns the ith vector of F.
func (F *Matrix) Vec(i int) r3.Vec {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// VecView returns a view of the ith vector of the matrix. Changes in the
// view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vecs returns all the vectors of F, as a new slice.
func (F *Matrix) Vecs() []r3.Vec {
	ret := make([]r3.Vec, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

// SomeVecs puts the vectors of A with indexes in clist in the receiver, which must have
// len(clist) vectors. It panics on error.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetVec(key, A.Vec(val))
	}
}

// SomeVecsSafe is like SomeVecs but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return nil
}

// AddVec adds the vector vec to each vector of A, putting the result in the receiver.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	if A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

// SubVec subtracts the vector vec from each vector of A, putting the result in the receiver.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	F.AddVec(A, r3.Scale(-1, vec))
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	if F.Dense.IsEmpty() {
		return Zeros(0)
	}
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < r; i++ {
		v := F.Vec(i)
		fmt.Fprintf(&b, "%8.3f %8.3f %8.3f", v.X, v.Y, v.Z)
		if i < r-1 {
			b.WriteString("\n ")
		}
	}
	b.WriteString("]")
	return b.String()
}
