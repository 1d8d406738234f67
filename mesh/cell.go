package mesh

import (
	"fmt"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/types"
)

// Resolver maps an address to the cell found there. A Mesh supplies its own
// lookup, test fixtures supply a fixed topology.
type Resolver func(addr types.GridAddress) Cell

type overrideFlag uint8

const (
	overridePressure overrideFlag = 1 << iota
	overrideVelocity
	overridePosition
	overrideType
)

type override struct {
	flags    overrideFlag
	cellType types.CellType
	position geometry3D.Vector
	velocity geometry3D.Vector
	pressure float64
}

// Cell is an immutable view of a grid point. The With* methods return a new
// view with one field replaced, the shared CellData is never copied or mutated.
type Cell struct {
	address  types.GridAddress
	data     *CellData
	resolver Resolver
	over     override
}

func NewCell(addr types.GridAddress, data *CellData, resolver Resolver) Cell {
	if data == nil {
		panic(fmt.Sprintf("nil cell data at %v", addr))
	}
	return Cell{address: addr, data: data, resolver: resolver}
}

func (c Cell) Address() types.GridAddress { return c.address }
func (c Cell) Density() float64           { return c.data.Density }
func (c Cell) Viscosity() float64         { return c.data.Viscosity }
func (c Cell) IsBoundary() bool           { return c.data.Boundary }

// Data exposes the shared state backing this view
func (c Cell) Data() *CellData { return c.data }

func (c Cell) Type() types.CellType {
	if c.over.flags&overrideType != 0 {
		return c.over.cellType
	}
	return c.data.Type
}

func (c Cell) Position() geometry3D.Vector {
	if c.over.flags&overridePosition != 0 {
		return c.over.position
	}
	return c.data.Position
}

func (c Cell) Pressure() float64 {
	if c.over.flags&overridePressure != 0 {
		return c.over.pressure
	}
	return c.data.VelocityPressure().Pressure
}

func (c Cell) Velocity() geometry3D.Vector {
	if c.over.flags&overrideVelocity != 0 {
		return c.over.velocity
	}
	return c.data.VelocityPressure().Velocity
}

// Neighbour walks count cells along the axis, negative counts walk backwards
func (c Cell) Neighbour(a geometry3D.Axis, count int) Cell {
	if c.resolver == nil {
		panic(fmt.Sprintf("cell at %v has no neighbour resolver", c.address))
	}
	return c.resolver(c.address.Offset(a, count))
}

func (c Cell) WithPressure(p float64) Cell {
	c.over.flags |= overridePressure
	c.over.pressure = p
	return c
}

func (c Cell) WithVelocity(v geometry3D.Vector) Cell {
	c.over.flags |= overrideVelocity
	c.over.velocity = v
	return c
}

func (c Cell) WithPosition(pos geometry3D.Vector) Cell {
	c.over.flags |= overridePosition
	c.over.position = pos
	return c
}

func (c Cell) WithType(ct types.CellType) Cell {
	c.over.flags |= overrideType
	c.over.cellType = ct
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell%v{%v pos=%v}", c.address, c.Type(), c.Position())
}

// Topology is a fixed, map backed neighbourhood for building cells outside a
// Mesh. Addresses without data resolve to Unknown cells.
type Topology map[types.GridAddress]*CellData

func (t Topology) Cell(addr types.GridAddress) Cell {
	data, ok := t[addr]
	if !ok {
		data = NewCellData(types.Unknown, geometry3D.Zero, geometry3D.Zero, 0, 0, 0, false)
	}
	return NewCell(addr, data, t.Cell)
}
