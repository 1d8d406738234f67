package geometry3D

import "fmt"

// Axis labels one of the three orthogonal directions of the physical frame
type Axis uint8

const (
	East Axis = iota
	North
	Up
)

// Axes in evaluation order, used wherever a quantity is built axis by axis
var Axes = [3]Axis{East, North, Up}

func (a Axis) String() string {
	switch a {
	case East:
		return "East"
	case North:
		return "North"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}
