package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/solver"
	"github.com/notargets/gonavier/types"
	"github.com/notargets/gonavier/utils"
)

func TestInputParameters3D(t *testing.T) {
	{ // Defaults are valid
		ip := NewInputParameters3D()
		require.NoError(t, ip.Validate())
		assert.Equal(t, solver.DefaultNewtonMaxIterations, ip.NewtonMaxIterations)
		ip.Print()
	}
	{ // Overlay a file
		fileInput := []byte(`
Title: Lid driven box
CellsEast: 8
CellsNorth: 6
CellsUp: 3
Spacing: [2, 2, 0.5]
TimeStep: 0.05
Steps: 4
NewtonPrecision: 1.
LateralBoundary: wall
LidVelocity: [1, 0, 0]
`)
		ip := NewInputParameters3D()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Lid driven box", ip.Title)
		assert.Equal(t, mesh.Extents{CellsEast: 8, CellsNorth: 6, CellsUp: 3}, ip.Extents())
		assert.Equal(t, [3]float64{2, 2, 0.5}, ip.Spacing)
		assert.Equal(t, 4, ip.Steps)
		assert.Equal(t, 1., ip.NewtonPrecision)
		// Untouched values keep their defaults
		assert.Equal(t, float64(mesh.SeawaterDensity), ip.Density)
		assert.Equal(t, solver.DefaultNewtonStep, ip.NewtonStep)
		assert.Equal(t, geometry3D.NewVector(1, 0, 0), ip.Lid())

		cr, err := ip.Creator()
		require.NoError(t, err)
		assert.Equal(t, geometry3D.NewVector(2, 2, 0.5), cr.Spacing)
		assert.Equal(t, types.Obstacle, cr.TypeFunction(types.NewGridAddress(-1, 2, 1)))
		assert.Equal(t, types.Obstacle, cr.TypeFunction(types.NewGridAddress(2, 2, -1)))
		assert.Equal(t, types.Unknown, cr.TypeFunction(types.NewGridAddress(2, 2, 3)))
		assert.Equal(t, types.Fluid, cr.TypeFunction(types.NewGridAddress(7, 5, 2)))
		lid := cr.Create(types.NewGridAddress(3, 3, 2))
		assert.True(t, lid.Boundary)
		assert.Equal(t, geometry3D.NewVector(1, 0, 0), lid.VelocityPressure().Velocity)
		below := cr.Create(types.NewGridAddress(3, 3, 1))
		assert.False(t, below.Boundary)
		assert.Equal(t, geometry3D.Zero, below.VelocityPressure().Velocity)
	}
	{ // Still water has no boundary cells
		cr, err := NewInputParameters3D().Creator()
		require.NoError(t, err)
		assert.False(t, cr.Create(types.NewGridAddress(0, 0, 4)).Boundary)
		assert.Equal(t, types.Unknown, cr.TypeFunction(types.NewGridAddress(-1, 0, 0)))
	}
	{ // Bad values
		for _, doc := range []string{
			"CellsUp: 0",
			"Spacing: [1, 0, 1]",
			"TimeStep: -1",
			"NewtonMaxIterations: 0",
			"LateralBoundary: fluid",
			"CellsEast: 1",
		} {
			err := NewInputParameters3D().Parse([]byte(doc))
			assert.Truef(t, errors.Is(err, utils.ErrInvalidParameter), "%s: %v", doc, err)
		}
		assert.Error(t, NewInputParameters3D().Parse([]byte("LateralBoundary: lava")))
		assert.Error(t, NewInputParameters3D().Parse([]byte("Steps: [")))
	}
}
