package geometry3D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is an immutable three component value along East, North and Up
type Vector struct {
	East, North, Up float64
}

var Zero = Vector{}

func NewVector(east, north, up float64) Vector {
	return Vector{East: east, North: north, Up: up}
}

// NewVectorFunc evaluates f once per axis, in the order East, North, Up
func NewVectorFunc(f func(a Axis) float64) (v Vector) {
	v.East = f(East)
	v.North = f(North)
	v.Up = f(Up)
	return
}

func (v Vector) Value(a Axis) float64 {
	switch a {
	case East:
		return v.East
	case North:
		return v.North
	case Up:
		return v.Up
	}
	panic(fmt.Sprintf("unexpected axis %v", a))
}

// Offset returns a copy of v with delta added to the component along a
func (v Vector) Offset(a Axis, delta float64) Vector {
	switch a {
	case East:
		v.East += delta
	case North:
		v.North += delta
	case Up:
		v.Up += delta
	default:
		panic(fmt.Sprintf("unexpected axis %v", a))
	}
	return v
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.East + w.East, v.North + w.North, v.Up + w.Up}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.East - w.East, v.North - w.North, v.Up - w.Up}
}

func (v Vector) Scale(a float64) Vector {
	return Vector{v.East * a, v.North * a, v.Up * a}
}

// Divide follows IEEE semantics, a zero divisor yields Inf or NaN components
func (v Vector) Divide(a float64) Vector {
	return Vector{v.East / a, v.North / a, v.Up / a}
}

func (v Vector) Dot(w Vector) float64 {
	return v.East*w.East + v.North*w.North + v.Up*w.Up
}

func (v Vector) Sum() float64 {
	return v.East + v.North + v.Up
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) ToVecDense() *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.East, v.North, v.Up})
}

func NewVectorFromVec(vec mat.Vector) Vector {
	if vec.Len() != 3 {
		panic(fmt.Sprintf("vector length %d, need 3", vec.Len()))
	}
	return Vector{vec.AtVec(0), vec.AtVec(1), vec.AtVec(2)}
}

func (v Vector) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.East, v.North, v.Up)
}
