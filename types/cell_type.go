package types

import (
	"fmt"
	"strings"
)

// CellType classifies a grid point. It is fixed by the grid address and the
// mesh configuration, never by simulation history.
type CellType uint8

const (
	Fluid    CellType = iota // Inside the simulated domain
	Obstacle                 // Solid boundary, e.g. the sea floor
	Unknown                  // Open boundary, e.g. above the surface or outside the lateral extents
	Air                      // Synonym of Unknown used by some boundary policies
)

var CellTypeNameMap = map[string]CellType{
	"fluid":    Fluid,
	"water":    Fluid,
	"obstacle": Obstacle,
	"wall":     Obstacle,
	"floor":    Obstacle,
	"unknown":  Unknown,
	"open":     Unknown,
	"air":      Air,
}

func (ct CellType) String() string {
	switch ct {
	case Fluid:
		return "Fluid"
	case Obstacle:
		return "Obstacle"
	case Unknown:
		return "Unknown"
	case Air:
		return "Air"
	}
	return fmt.Sprintf("CellType(%d)", uint8(ct))
}

// Canonical folds synonyms, so that stencil logic only sees Fluid, Obstacle and Unknown
func (ct CellType) Canonical() CellType {
	if ct == Air {
		return Unknown
	}
	return ct
}

func ParseCellType(name string) (ct CellType, err error) {
	var (
		ok bool
	)
	if ct, ok = CellTypeNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown cell type %q", name)
	}
	return
}
