package mesh

import (
	"sync"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/types"
)

type VelocityPressure struct {
	Velocity geometry3D.Vector
	Pressure float64
}

// CellData is the physical state of one grid point as produced by a cell
// factory. Velocity and pressure are either known up front or supplied by a
// resolver that runs at most once, on first use.
type CellData struct {
	Type      types.CellType
	Position  geometry3D.Vector
	Density   float64
	Viscosity float64
	Boundary  bool // Externally driven, exempt from time stepping

	vp      VelocityPressure
	resolve func() VelocityPressure
	once    sync.Once
	failure interface{}
}

func NewCellData(ct types.CellType, position, velocity geometry3D.Vector,
	pressure, density, viscosity float64, boundary bool) *CellData {
	return &CellData{
		Type:      ct,
		Position:  position,
		Density:   density,
		Viscosity: viscosity,
		Boundary:  boundary,
		vp:        VelocityPressure{Velocity: velocity, Pressure: pressure},
	}
}

func NewLazyCellData(ct types.CellType, position geometry3D.Vector,
	density, viscosity float64, boundary bool, resolve func() VelocityPressure) *CellData {
	return &CellData{
		Type:      ct,
		Position:  position,
		Density:   density,
		Viscosity: viscosity,
		Boundary:  boundary,
		resolve:   resolve,
	}
}

// VelocityPressure returns the state, running the resolver on first use.
// Concurrent callers block until the single resolution finishes. A resolver
// that panicked panics again for every caller rather than exposing a zero state.
func (cd *CellData) VelocityPressure() VelocityPressure {
	if cd.resolve != nil {
		cd.once.Do(func() {
			defer func() {
				if r := recover(); r != nil {
					cd.failure = r
				}
			}()
			cd.vp = cd.resolve()
		})
		if cd.failure != nil {
			panic(cd.failure)
		}
	}
	return cd.vp
}
