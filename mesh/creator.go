package mesh

import (
	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/types"
)

type (
	TypeFunction     func(addr types.GridAddress) types.CellType
	VectorFunction   func(addr types.GridAddress) geometry3D.Vector
	PressureFunction func(addr types.GridAddress) float64
	BoundaryFunction func(addr types.GridAddress) bool
)

// Extents is the nominal box [0,CellsEast) x [0,CellsNorth) x [0,CellsUp)
type Extents struct {
	CellsEast, CellsNorth, CellsUp int
}

func (e Extents) Contains(addr types.GridAddress) bool {
	return addr.East >= 0 && addr.East < e.CellsEast &&
		addr.North >= 0 && addr.North < e.CellsNorth &&
		addr.Up >= 0 && addr.Up < e.CellsUp
}

func (e Extents) Size() int {
	return e.CellsEast * e.CellsNorth * e.CellsUp
}

// Creator is the default cell factory. Each per-address function can be
// replaced, the defaults describe still water in a floored box with an open
// surface and open sides.
type Creator struct {
	Extents
	Density, Viscosity float64
	Spacing            geometry3D.Vector

	TypeFunction     TypeFunction
	PositionFunction VectorFunction
	VelocityFunction VectorFunction
	PressureFunction PressureFunction
	BoundaryFunction BoundaryFunction
}

type CreatorOption func(cr *Creator)

func WithDensity(density float64) CreatorOption {
	return func(cr *Creator) { cr.Density = density }
}

func WithViscosity(viscosity float64) CreatorOption {
	return func(cr *Creator) { cr.Viscosity = viscosity }
}

func WithSpacing(spacing geometry3D.Vector) CreatorOption {
	return func(cr *Creator) { cr.Spacing = spacing }
}

func WithTypeFunction(f TypeFunction) CreatorOption {
	return func(cr *Creator) { cr.TypeFunction = f }
}

func WithPositionFunction(f VectorFunction) CreatorOption {
	return func(cr *Creator) { cr.PositionFunction = f }
}

func WithVelocityFunction(f VectorFunction) CreatorOption {
	return func(cr *Creator) { cr.VelocityFunction = f }
}

func WithPressureFunction(f PressureFunction) CreatorOption {
	return func(cr *Creator) { cr.PressureFunction = f }
}

func WithBoundaryFunction(f BoundaryFunction) CreatorOption {
	return func(cr *Creator) { cr.BoundaryFunction = f }
}

func NewCreator(cellsEast, cellsNorth, cellsUp int, opts ...CreatorOption) (cr *Creator) {
	cr = &Creator{
		Extents:   Extents{CellsEast: cellsEast, CellsNorth: cellsNorth, CellsUp: cellsUp},
		Density:   SeawaterDensity,
		Viscosity: SeawaterViscosity,
		Spacing:   geometry3D.NewVector(1, 1, 1),
	}
	cr.TypeFunction = cr.DefaultType
	cr.PositionFunction = cr.DefaultPosition
	cr.VelocityFunction = func(types.GridAddress) geometry3D.Vector { return geometry3D.Zero }
	cr.PressureFunction = cr.DefaultPressure
	cr.BoundaryFunction = func(types.GridAddress) bool { return false }
	for _, opt := range opts {
		opt(cr)
	}
	return
}

// DefaultType floors the bottom, everything else outside the box is open
func (cr *Creator) DefaultType(addr types.GridAddress) types.CellType {
	switch {
	case addr.Up < 0:
		return types.Obstacle
	case cr.Contains(addr):
		return types.Fluid
	default:
		return types.Unknown
	}
}

// DefaultPosition scales indices by the spacing, with the top layer at Up = 0
func (cr *Creator) DefaultPosition(addr types.GridAddress) geometry3D.Vector {
	return geometry3D.NewVector(
		float64(addr.East)*cr.Spacing.East,
		float64(addr.North)*cr.Spacing.North,
		float64(addr.Up-cr.CellsUp+1)*cr.Spacing.Up,
	)
}

// DefaultPressure is hydrostatic at the depth given by the position function
func (cr *Creator) DefaultPressure(addr types.GridAddress) float64 {
	return PressureAtDepth(-cr.PositionFunction(addr).Up, cr.Density)
}

func (cr *Creator) Create(addr types.GridAddress) *CellData {
	return NewCellData(
		cr.TypeFunction(addr),
		cr.PositionFunction(addr),
		cr.VelocityFunction(addr),
		cr.PressureFunction(addr),
		cr.Density,
		cr.Viscosity,
		cr.BoundaryFunction(addr),
	)
}
