package solver

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/types"
)

func quietLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

// line builds cells along East at the given positions, with pressure and
// East velocity from f
func line(ct [3]types.CellType, pos [3]float64, f func(x float64) float64) (center mesh.Cell) {
	topo := mesh.Topology{}
	for i := 0; i < 3; i++ {
		x := pos[i]
		topo[types.NewGridAddress(i-1, 0, 0)] = mesh.NewCellData(ct[i],
			geometry3D.NewVector(x, 0, 0), geometry3D.NewVector(f(x), 0, 0),
			f(x), mesh.SeawaterDensity, mesh.SeawaterViscosity, false)
	}
	return topo.Cell(types.NewGridAddress(0, 0, 0))
}

// drivenCavity is a single layer 10x10 box with obstacle side walls, a
// floored bottom and the North edge driven East at unit speed
func drivenCavity() *mesh.Creator {
	const (
		cellsEast, cellsNorth, cellsUp = 10, 10, 1
	)
	typeFunction := func(i types.GridAddress) types.CellType {
		switch {
		case i.Up < 0:
			return types.Obstacle
		case i.Up > cellsUp-1:
			return types.Air
		case i.East <= 0 || i.East >= cellsEast-1:
			if i.North == cellsNorth-1 {
				return types.Unknown
			}
			return types.Obstacle
		case i.North <= 0:
			return types.Obstacle
		case i.North > cellsNorth-1:
			return types.Unknown
		}
		return types.Fluid
	}
	return mesh.NewCreator(cellsEast, cellsNorth, cellsUp,
		mesh.WithTypeFunction(typeFunction),
		mesh.WithVelocityFunction(func(i types.GridAddress) geometry3D.Vector {
			if i.North == cellsNorth-1 {
				return geometry3D.NewVector(1, 0, 0)
			}
			return geometry3D.Zero
		}),
		mesh.WithBoundaryFunction(func(i types.GridAddress) bool {
			return i.North == cellsNorth-1
		}),
	)
}
