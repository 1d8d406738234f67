package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/types"
)

func TestDerivativeFormulas(t *testing.T) {
	var (
		quad = func(x float64) float64 { return 3*x*x - 2*x + 1 }
		tol  = 1.e-9
	)
	{ // Exact for quadratics on non-uniform spacing, at x = 1
		a, b, c := 0.25, 1., 3.
		assert.InDelta(t, 4., FirstDerivative3(a, quad(a), b, quad(b), c, quad(c)), tol)
		assert.InDelta(t, 6., SecondDerivative3(a, quad(a), b, quad(b), c, quad(c)), tol)
		// Orientation does not matter
		assert.InDelta(t, 4., FirstDerivative3(c, quad(c), b, quad(b), a, quad(a)), tol)
		assert.InDelta(t, 6., SecondDerivative3(c, quad(c), b, quad(b), a, quad(a)), tol)
	}
	{ // Uniform spacing reduces to the classic stencils
		h := 0.5
		fa, fb, fc := 1., 4., 2.
		assert.InDelta(t, (fc-fa)/(2*h), FirstDerivative3(0, fa, h, fb, 2*h, fc), tol)
		assert.InDelta(t, (fa-2*fb+fc)/(h*h), SecondDerivative3(0, fa, h, fb, 2*h, fc), tol)
	}
	{ // Two points
		assert.InDelta(t, 2., FirstDerivative2(1, 3, 3, 7), tol)
		assert.InDelta(t, 2., FirstDerivative2(3, 7, 1, 3), tol)
		assert.Equal(t, 0., SecondDerivative2(1, 3, 3, 7))
	}
}

func TestEvaluatorDerivative(t *testing.T) {
	var (
		ev   = Evaluator{Gravity: mesh.Gravity}
		quad = func(x float64) float64 { return x * x }
		F, U = types.Fluid, types.Unknown
	)
	{ // Interior
		c := line([3]types.CellType{F, F, F}, [3]float64{0, 1, 3}, quad)
		assert.InDelta(t, 2., ev.Derivative(c, east, Pressure, First), 1.e-9)
		assert.InDelta(t, 2., ev.Derivative(c, east, Pressure, Second), 1.e-9)
		assert.InDelta(t, 2., ev.Derivative(c, east, VelocityComponent(east), First), 1.e-9)
	}
	{ // Open high end
		c := line([3]types.CellType{F, F, U}, [3]float64{0, 1, 2}, quad)
		assert.InDelta(t, 1., ev.Derivative(c, east, Pressure, First), 1.e-9)
		assert.Equal(t, 0., ev.Derivative(c, east, Pressure, Second))
	}
	{ // Open low end uses the far side
		c := line([3]types.CellType{U, F, F}, [3]float64{0, 1, 2}, quad)
		assert.InDelta(t, 3., ev.Derivative(c, east, Pressure, First), 1.e-9)
		assert.Equal(t, 0., ev.Derivative(c, east, Pressure, Second))
	}
	{ // Unused cells are never evaluated
		c := line([3]types.CellType{F, F, U}, [3]float64{0, 1, 2}, quad)
		ev.Derivative(c, east, func(cell mesh.Cell) float64 {
			require.NotEqual(t, types.Unknown, cell.Type())
			return 1
		}, First)
	}
	{ // Coincident points are a numeric failure
		c := line([3]types.CellType{F, F, F}, [3]float64{1, 1, 1}, quad)
		defer func() {
			r := recover()
			require.NotNil(t, r)
			var ne *NumericError
			require.True(t, errors.As(r.(error), &ne))
			assert.True(t, errors.Is(ne, ErrNumeric))
			assert.Equal(t, east, ne.Axis)
			assert.True(t, math.IsNaN(ne.Value))
		}()
		ev.Derivative(c, east, Pressure, First)
		t.Fatal("expected a numeric failure")
	}
}

func TestEvaluatorVectorOperators(t *testing.T) {
	var (
		ev = Evaluator{Gravity: mesh.Gravity}
		// Linear velocity field v = (x + 2y, 3z, 0) on a fluid lattice
		m = mesh.New(func(i types.GridAddress) *mesh.CellData {
			x, y, z := float64(i.East), float64(i.North), float64(i.Up)
			return mesh.NewCellData(types.Fluid, geometry3D.NewVector(x, y, z),
				geometry3D.NewVector(x+2*y, 3*z, 0), x*x+y*y+z*z, 1, 1, false)
		}, geometry3D.NewVector(1, 1, 1), nil)
		c = m.CellAt(1, 2, 3)
	)
	assert.InDelta(t, 0., geometry3D.NewVector(2, 4, 6).Sub(ev.Gradient(c, Pressure)).Norm(), 1.e-9)
	assert.InDelta(t, 6., ev.Laplacian(c, Pressure), 1.e-9)
	assert.InDelta(t, 0., ev.VelocityLaplacian(c).Norm(), 1.e-9)
	{ // Rows are the velocity gradient along each axis
		j := ev.VelocityJacobian(c)
		assert.InDelta(t, 0., j.Row(geometry3D.East).Sub(geometry3D.NewVector(1, 0, 0)).Norm(), 1.e-9)
		assert.InDelta(t, 0., j.Row(geometry3D.North).Sub(geometry3D.NewVector(2, 0, 0)).Norm(), 1.e-9)
		assert.InDelta(t, 0., j.Row(geometry3D.Up).Sub(geometry3D.NewVector(0, 3, 0)).Norm(), 1.e-9)
	}
}
