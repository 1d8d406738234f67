package solver

import (
	"errors"
	"fmt"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/types"
	"github.com/notargets/gonavier/utils"
)

var (
	ErrTopology = errors.New("topology error")
	ErrNumeric  = errors.New("numeric error")
)

// TopologyError is raised when a stencil meets a combination of cell types
// that the boundary classification does not cover
type TopologyError struct {
	Axis      geometry3D.Axis
	Addresses [3]types.GridAddress
	Positions [3]geometry3D.Vector
	Types     [3]types.CellType
	Reason    string
}

func newTopologyError(t CellTriplet, a geometry3D.Axis, reason string) *TopologyError {
	e := &TopologyError{Axis: a, Reason: reason}
	for i, c := range t.Cells() {
		e.Addresses[i] = c.Address()
		e.Positions[i] = c.Position()
		e.Types[i] = c.Type()
	}
	return e
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s: %s along %v, types %v at %v, positions %v",
		ErrTopology, e.Reason, e.Axis, e.Types, e.Addresses, e.Positions)
}

func (e *TopologyError) Unwrap() error { return ErrTopology }

// NumericError is raised when a derivative or state update is NaN or infinite
type NumericError struct {
	Quantity string
	Address  types.GridAddress
	Axis     geometry3D.Axis
	Value    float64
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("%s: %s at %v along %v is %v", ErrNumeric, e.Quantity, e.Address, e.Axis, e.Value)
}

func (e *NumericError) Unwrap() error { return ErrNumeric }

func validate(x float64, quantity string, addr types.GridAddress, a geometry3D.Axis) float64 {
	if !utils.IsValid(x) {
		panic(&NumericError{Quantity: quantity, Address: addr, Axis: a, Value: x})
	}
	return x
}

// Recover converts a topology, numeric or configuration panic into *errp.
// Use it directly in a defer statement. Any other panic is passed on.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch err := r.(type) {
	case *TopologyError:
		*errp = err
	case *NumericError:
		*errp = err
	case *utils.ConfigError:
		*errp = err
	default:
		panic(r)
	}
}
