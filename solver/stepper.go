package solver

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/types"
	"github.com/notargets/gonavier/utils"
)

// Calibrated pressure solve defaults, in Pa
const (
	DefaultNewtonStep          = 100.
	DefaultNewtonPrecision     = 10.
	DefaultNewtonMaxIterations = 15
)

// Stepper advances single cells: an explicit advection, diffusion and gravity
// velocity update followed by an implicit per-cell pressure solve of the
// discrete continuity constraint. It keeps no state between calls other than
// diagnostic counters and is safe for concurrent use.
type Stepper struct {
	Evaluator
	NewtonStep          float64
	NewtonPrecision     float64
	NewtonMaxIterations int
	Log                 logrus.FieldLogger

	solved, nonConverged, negativeRoot atomic.Int64
}

type StepperOption func(s *Stepper)

func WithGravity(g geometry3D.Vector) StepperOption {
	return func(s *Stepper) { s.Gravity = g }
}

func WithNewton(step, precision float64, maxIterations int) StepperOption {
	return func(s *Stepper) {
		s.NewtonStep, s.NewtonPrecision, s.NewtonMaxIterations = step, precision, maxIterations
	}
}

func WithLog(log logrus.FieldLogger) StepperOption {
	return func(s *Stepper) { s.Log = log }
}

func NewStepper(opts ...StepperOption) (s *Stepper) {
	s = &Stepper{
		Evaluator:           Evaluator{Gravity: mesh.Gravity},
		NewtonStep:          DefaultNewtonStep,
		NewtonPrecision:     DefaultNewtonPrecision,
		NewtonMaxIterations: DefaultNewtonMaxIterations,
		Log:                 logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return
}

type StepperStats struct {
	Solved       int64 // Pressure solves that converged to a usable root
	NonConverged int64 // Fell back to the prior pressure, no root found
	NegativeRoot int64 // Fell back to the prior pressure, root below zero
}

func (s *Stepper) Stats() StepperStats {
	return StepperStats{
		Solved:       s.solved.Load(),
		NonConverged: s.nonConverged.Load(),
		NegativeRoot: s.negativeRoot.Load(),
	}
}

// Step returns the velocity and pressure of c after dt. Boundary cells are
// externally driven and come back unchanged, as do obstacle and open cells.
func (s *Stepper) Step(c mesh.Cell, dt float64) mesh.VelocityPressure {
	if c.IsBoundary() || c.Type().Canonical() != types.Fluid {
		return mesh.VelocityPressure{Velocity: c.Velocity(), Pressure: c.Pressure()}
	}
	v := s.VelocityAfter(c, dt)
	return mesh.VelocityPressure{Velocity: v, Pressure: s.PressureFor(c, v)}
}

// VelocityAfter is v + dt*[(mu*Lap(v) - grad(p))/rho + g - J(v)*v]
func (s *Stepper) VelocityAfter(c mesh.Cell, dt float64) (v geometry3D.Vector) {
	var (
		velocity  = c.Velocity()
		laplacian = s.VelocityLaplacian(c)
		gradP     = s.Gradient(c, Pressure)
		jacobian  = s.VelocityJacobian(c)
		stress    = laplacian.Scale(c.Viscosity()).Sub(gradP)
		dvdt      = stress.Divide(c.Density()).Add(s.Gravity).Sub(jacobian.Times(velocity))
		addr      = c.Address()
	)
	v = velocity.Add(dvdt.Scale(dt))
	for _, a := range geometry3D.Axes {
		validate(v.Value(a), "velocity", addr, a)
	}
	return
}

// Continuity is the discrete mass conservation residual at c with its
// velocity fixed at v and its pressure set to p
func (s *Stepper) Continuity(c mesh.Cell, v geometry3D.Vector, p float64) (r float64) {
	trial := c.WithVelocity(v).WithPressure(p)
	r = s.Laplacian(trial, Pressure)
	for _, a := range geometry3D.Axes {
		along := a
		gradientDot := func(cell mesh.Cell) float64 {
			return s.VelocityGradient(cell, along).Dot(cell.Velocity())
		}
		r += v.Value(a) * s.Derivative(trial, a, gradientDot, First)
	}
	return
}

// PressureFor solves Continuity(p) = 0 from the current pressure. When no
// root is found, or the root is negative, the current pressure is kept.
func (s *Stepper) PressureFor(c mesh.Cell, v geometry3D.Vector) float64 {
	var (
		prior = c.Pressure()
	)
	p, ok := utils.NewtonSolve(func(p float64) float64 {
		return s.Continuity(c, v, p)
	}, prior, s.NewtonStep, s.NewtonPrecision, s.NewtonMaxIterations)
	switch {
	case !ok:
		s.nonConverged.Inc()
		s.Log.WithFields(logrus.Fields{
			"address":  c.Address(),
			"pressure": prior,
		}).Debug("pressure solve did not converge, keeping prior pressure")
		return prior
	case p < 0:
		s.negativeRoot.Inc()
		s.Log.WithFields(logrus.Fields{
			"address":  c.Address(),
			"pressure": prior,
			"root":     p,
		}).Debug("pressure solve found a negative root, keeping prior pressure")
		return prior
	}
	s.solved.Inc()
	return validate(p, "pressure", c.Address(), geometry3D.Up)
}
