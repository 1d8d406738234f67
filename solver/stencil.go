package solver

import (
	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/types"
)

type Order uint8

const (
	First Order = iota + 1
	Second
)

func (o Order) String() string {
	if o == Second {
		return "second derivative"
	}
	return "first derivative"
}

// CellFunc is the per-cell scalar being differentiated
type CellFunc func(c mesh.Cell) float64

func Pressure(c mesh.Cell) float64 { return c.Pressure() }

func VelocityComponent(a geometry3D.Axis) CellFunc {
	return func(c mesh.Cell) float64 { return c.Velocity().Value(a) }
}

// FirstDerivative3 is the derivative at b from values at a, b and c, exact
// for quadratics on non-uniform spacing
func FirstDerivative3(a, fa, b, fb, c, fc float64) float64 {
	var (
		h1, h2 = b - a, c - b
	)
	return ((h2*h2-h1*h1)*fb + h1*h1*fc - h2*h2*fa) / (h1*h1*h2 + h1*h2*h2)
}

func FirstDerivative2(a, fa, b, fb float64) float64 {
	return (fb - fa) / (b - a)
}

// SecondDerivative3 is the curvature at b from values at a, b and c. With
// h1 == h2 == h it reduces to (fa - 2fb + fc)/h^2.
func SecondDerivative3(a, fa, b, fb, c, fc float64) float64 {
	var (
		h1, h2 = b - a, c - b
	)
	return 2 * (h1*fc + h2*fa - (h1+h2)*fb) / (h1 * h2 * (h1 + h2))
}

// SecondDerivative2 is zero, two points carry no curvature
func SecondDerivative2(a, fa, b, fb float64) float64 {
	return 0
}

// Evaluator computes derivatives of cell functions through the boundary transform
type Evaluator struct {
	Gravity geometry3D.Vector
}

// Derivative of f along the axis at c. The neighbours of c are classified and
// rewritten first, f is only evaluated on the cells the formula uses.
func (ev Evaluator) Derivative(c mesh.Cell, a geometry3D.Axis, f CellFunc, order Order) (d float64) {
	var (
		t      = Transform(NewCellTriplet(c, a), a, ev.Gravity)
		xa, xb = t.Low.Position().Value(a), t.Center.Position().Value(a)
		fa, fb = f(t.Low), f(t.Center)
	)
	if t.High.Type().Canonical() == types.Unknown {
		switch order {
		case First:
			d = FirstDerivative2(xa, fa, xb, fb)
		case Second:
			d = SecondDerivative2(xa, fa, xb, fb)
		}
	} else {
		var (
			xc = t.High.Position().Value(a)
			fc = f(t.High)
		)
		switch order {
		case First:
			d = FirstDerivative3(xa, fa, xb, fb, xc, fc)
		case Second:
			d = SecondDerivative3(xa, fa, xb, fb, xc, fc)
		}
	}
	return validate(d, order.String(), c.Address(), a)
}

// Gradient of f, one first derivative per axis
func (ev Evaluator) Gradient(c mesh.Cell, f CellFunc) geometry3D.Vector {
	return geometry3D.NewVectorFunc(func(a geometry3D.Axis) float64 {
		return ev.Derivative(c, a, f, First)
	})
}

// Laplacian of f, the sum of second derivatives along each axis
func (ev Evaluator) Laplacian(c mesh.Cell, f CellFunc) float64 {
	return geometry3D.NewVectorFunc(func(a geometry3D.Axis) float64 {
		return ev.Derivative(c, a, f, Second)
	}).Sum()
}

// VelocityGradient is the derivative of the velocity vector along one axis
func (ev Evaluator) VelocityGradient(c mesh.Cell, along geometry3D.Axis) geometry3D.Vector {
	return geometry3D.NewVectorFunc(func(component geometry3D.Axis) float64 {
		return ev.Derivative(c, along, VelocityComponent(component), First)
	})
}

// VelocityLaplacian has the Laplacian of each velocity component
func (ev Evaluator) VelocityLaplacian(c mesh.Cell) geometry3D.Vector {
	return geometry3D.NewVectorFunc(func(component geometry3D.Axis) float64 {
		return ev.Laplacian(c, VelocityComponent(component))
	})
}

// VelocityJacobian has, for each axis row, the velocity gradient along that axis
func (ev Evaluator) VelocityJacobian(c mesh.Cell) geometry3D.Matrix {
	return geometry3D.NewMatrixFunc(func(a geometry3D.Axis) geometry3D.Vector {
		return ev.VelocityGradient(c, a)
	})
}
