package types

import (
	"fmt"

	"github.com/notargets/gonavier/geometry3D"
)

// GridAddress indexes the unbounded logical lattice. Addresses outside the
// nominal domain are valid, they resolve to obstacle or unknown cells.
type GridAddress struct {
	East, North, Up int
}

func NewGridAddress(east, north, up int) GridAddress {
	return GridAddress{East: east, North: north, Up: up}
}

// Offset walks count cells along the axis, count may be negative
func (ga GridAddress) Offset(a geometry3D.Axis, count int) GridAddress {
	switch a {
	case geometry3D.East:
		ga.East += count
	case geometry3D.North:
		ga.North += count
	case geometry3D.Up:
		ga.Up += count
	default:
		panic(fmt.Sprintf("unexpected axis %v", a))
	}
	return ga
}

func (ga GridAddress) Index(a geometry3D.Axis) int {
	switch a {
	case geometry3D.East:
		return ga.East
	case geometry3D.North:
		return ga.North
	case geometry3D.Up:
		return ga.Up
	}
	panic(fmt.Sprintf("unexpected axis %v", a))
}

func (ga GridAddress) String() string {
	return fmt.Sprintf("(%d,%d,%d)", ga.East, ga.North, ga.Up)
}
