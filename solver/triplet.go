package solver

import (
	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/types"
)

// CellTriplet is three collinear cells along one axis, the unit of work for
// the boundary transform
type CellTriplet struct {
	Low, Center, High mesh.Cell
}

func NewCellTriplet(c mesh.Cell, a geometry3D.Axis) CellTriplet {
	return CellTriplet{
		Low:    c.Neighbour(a, -1),
		Center: c,
		High:   c.Neighbour(a, 1),
	}
}

func (t CellTriplet) Cells() [3]mesh.Cell {
	return [3]mesh.Cell{t.Low, t.Center, t.High}
}

func (t CellTriplet) types() [3]types.CellType {
	return [3]types.CellType{
		t.Low.Type().Canonical(),
		t.Center.Type().Canonical(),
		t.High.Type().Canonical(),
	}
}

// ObstacleToValue stands in for an obstacle next to the fluid cell wrt: a
// fluid view at the obstacle position with no-slip zero velocity and the
// pressure extrapolated from wrt under hydrostatic equilibrium
func ObstacleToValue(obstacle, wrt mesh.Cell, gravity geometry3D.Vector) mesh.Cell {
	p := wrt.Pressure() + obstacle.Position().Sub(wrt.Position()).Dot(gravity.Scale(wrt.Density()))
	return obstacle.
		WithType(types.Fluid).
		WithVelocity(geometry3D.Zero).
		WithPressure(p)
}

const (
	fluid = types.Fluid
	solid = types.Obstacle
	open  = types.Unknown
)

// Transform rewrites a triplet until it is either all fluid, ready for the
// three point formulas, or fluid, fluid, unknown, ready for the two point
// formulas. Every other outcome panics with a *TopologyError.
func Transform(t CellTriplet, a geometry3D.Axis, gravity geometry3D.Vector) CellTriplet {
	// At most: replace both obstacles, reverse, then classify
	for pass := 0; pass < 4; pass++ {
		tt := t.types()
		if tt[1] == solid {
			panic(newTopologyError(t, a, "derivative centred on an obstacle"))
		}
		switch tt {
		case [3]types.CellType{fluid, fluid, fluid}, [3]types.CellType{fluid, fluid, open}:
			return t
		case [3]types.CellType{open, fluid, fluid}:
			// The far fluid neighbour becomes the low reference
			t = CellTriplet{Low: t.High, Center: t.Center, High: t.Low}
		case [3]types.CellType{fluid, fluid, solid}, [3]types.CellType{open, fluid, solid}, [3]types.CellType{solid, fluid, solid}:
			t.High = ObstacleToValue(t.High, t.Center, gravity)
		case [3]types.CellType{solid, fluid, fluid}, [3]types.CellType{solid, fluid, open}:
			t.Low = ObstacleToValue(t.Low, t.Center, gravity)
		default:
			panic(newTopologyError(t, a, "unhandled cell type combination"))
		}
	}
	panic(newTopologyError(t, a, "triplet did not settle"))
}
