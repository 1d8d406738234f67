package geometry3D

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix has one row per axis, indexed East, North, Up
type Matrix [3]Vector

func NewMatrix(east, north, up Vector) Matrix {
	return Matrix{east, north, up}
}

// NewMatrixFunc builds the matrix row by row, evaluating f once per axis
func NewMatrixFunc(f func(a Axis) Vector) (m Matrix) {
	for i, a := range Axes {
		m[i] = f(a)
	}
	return
}

func (m Matrix) Row(a Axis) Vector {
	return m[a]
}

func (m Matrix) ToDense() *mat.Dense {
	var (
		data = make([]float64, 0, 9)
	)
	for _, row := range m {
		data = append(data, row.East, row.North, row.Up)
	}
	return mat.NewDense(3, 3, data)
}

// Times is the matrix-vector product, the dot product of each row with v
func (m Matrix) Times(v Vector) Vector {
	var (
		r mat.VecDense
	)
	r.MulVec(m.ToDense(), v.ToVecDense())
	return NewVectorFromVec(&r)
}
