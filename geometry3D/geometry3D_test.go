package geometry3D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	{ // Arithmetic
		a := NewVector(1, 2, 3)
		b := NewVector(4, 5, 6)
		assert.Equal(t, NewVector(5, 7, 9), a.Add(b))
		assert.Equal(t, NewVector(-3, -3, -3), a.Sub(b))
		assert.Equal(t, NewVector(2, 4, 6), a.Scale(2))
		assert.Equal(t, NewVector(0.5, 1, 1.5), a.Divide(2))
		assert.Equal(t, 32., a.Dot(b))
		assert.Equal(t, 6., a.Sum())
		assert.InDelta(t, math.Sqrt(14), a.Norm(), 1.e-12)
		// Operands are unchanged
		assert.Equal(t, NewVector(1, 2, 3), a)
	}
	{ // Axis access
		v := NewVector(7, 8, 9)
		assert.Equal(t, 7., v.Value(East))
		assert.Equal(t, 8., v.Value(North))
		assert.Equal(t, 9., v.Value(Up))
		assert.Equal(t, NewVector(7, 8, 10), v.Offset(Up, 1))
		assert.Panics(t, func() { v.Value(Axis(3)) })
	}
	{ // Built axis by axis in order
		var order []Axis
		v := NewVectorFunc(func(a Axis) float64 {
			order = append(order, a)
			return float64(a) + 1
		})
		assert.Equal(t, NewVector(1, 2, 3), v)
		assert.Equal(t, []Axis{East, North, Up}, order)
	}
	{ // Divide by zero propagates IEEE values
		v := NewVector(1, 0, -1).Divide(0)
		assert.True(t, math.IsInf(v.East, 1))
		assert.True(t, math.IsNaN(v.North))
		assert.True(t, math.IsInf(v.Up, -1))
	}
	{ // gonum round trip
		v := NewVector(1, -2, 3)
		require.Equal(t, 3, v.ToVecDense().Len())
		assert.Equal(t, v, NewVectorFromVec(v.ToVecDense()))
	}
	assert.Equal(t, Vector{}, Zero)
	assert.Equal(t, "North", North.String())
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(
		NewVector(1, 0, 0),
		NewVector(0, 2, 0),
		NewVector(1, 1, 1),
	)
	assert.Equal(t, NewVector(3, 8, 9), m.Times(NewVector(3, 4, 2)))
	assert.Equal(t, NewVector(0, 2, 0), m.Row(North))

	mf := NewMatrixFunc(func(a Axis) Vector {
		return Zero.Offset(a, 1)
	})
	v := NewVector(4, 5, 6)
	assert.Equal(t, v, mf.Times(v))
	r, c := mf.ToDense().Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
}
