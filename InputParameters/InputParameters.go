package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gonavier/geometry3D"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/solver"
	"github.com/notargets/gonavier/types"
	"github.com/notargets/gonavier/utils"
)

// Parameters obtained from the YAML input file
type InputParameters3D struct {
	Title               string     `yaml:"Title"`
	CellsEast           int        `yaml:"CellsEast"`
	CellsNorth          int        `yaml:"CellsNorth"`
	CellsUp             int        `yaml:"CellsUp"`
	Spacing             [3]float64 `yaml:"Spacing"` // East, North, Up in meters
	Density             float64    `yaml:"Density"`
	Viscosity           float64    `yaml:"Viscosity"`
	TimeStep            float64    `yaml:"TimeStep"`
	Steps               int        `yaml:"Steps"`
	NewtonStep          float64    `yaml:"NewtonStep"`
	NewtonPrecision     float64    `yaml:"NewtonPrecision"`
	NewtonMaxIterations int        `yaml:"NewtonMaxIterations"`
	ParallelDegree      int        `yaml:"ParallelDegree"`
	LateralBoundary     string     `yaml:"LateralBoundary"` // Cell type outside the box sides: open or wall
	LidVelocity         [3]float64 `yaml:"LidVelocity"`     // Drives the top layer when non zero
}

func NewInputParameters3D() *InputParameters3D {
	return &InputParameters3D{
		Title:               "Still water",
		CellsEast:           10,
		CellsNorth:          10,
		CellsUp:             5,
		Spacing:             [3]float64{1, 1, 1},
		Density:             mesh.SeawaterDensity,
		Viscosity:           mesh.SeawaterViscosity,
		TimeStep:            0.1,
		Steps:               10,
		NewtonStep:          solver.DefaultNewtonStep,
		NewtonPrecision:     solver.DefaultNewtonPrecision,
		NewtonMaxIterations: solver.DefaultNewtonMaxIterations,
		LateralBoundary:     types.Unknown.String(),
	}
}

// Parse overlays the YAML document on the current values
func (ip *InputParameters3D) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

func (ip *InputParameters3D) Validate() error {
	invalid := func(parameter string, value interface{}, reason string) error {
		return &utils.ConfigError{Parameter: parameter, Value: value, Reason: reason}
	}
	switch {
	case ip.CellsEast < 1 || ip.CellsNorth < 1 || ip.CellsUp < 1:
		return invalid("Cells", [3]int{ip.CellsEast, ip.CellsNorth, ip.CellsUp}, "need at least one cell along each axis")
	case !(ip.Spacing[0] > 0 && ip.Spacing[1] > 0 && ip.Spacing[2] > 0):
		return invalid("Spacing", ip.Spacing, "must be positive")
	case !(ip.Density > 0):
		return invalid("Density", ip.Density, "must be positive")
	case ip.Viscosity < 0:
		return invalid("Viscosity", ip.Viscosity, "must not be negative")
	case !(ip.TimeStep > 0):
		return invalid("TimeStep", ip.TimeStep, "must be positive")
	case ip.Steps < 0:
		return invalid("Steps", ip.Steps, "must not be negative")
	case !(ip.NewtonStep > 0):
		return invalid("NewtonStep", ip.NewtonStep, "must be positive")
	case !(ip.NewtonPrecision > 0):
		return invalid("NewtonPrecision", ip.NewtonPrecision, "must be positive")
	case ip.NewtonMaxIterations < 1:
		return invalid("NewtonMaxIterations", ip.NewtonMaxIterations, "must be 1 or more")
	}
	lateral, err := types.ParseCellType(ip.LateralBoundary)
	if err != nil {
		return err
	}
	switch {
	case lateral == types.Fluid:
		return invalid("LateralBoundary", ip.LateralBoundary, "must be open or an obstacle")
	case lateral.Canonical() == types.Unknown && (ip.CellsEast < 2 || ip.CellsNorth < 2):
		// A single open cell across has no fluid neighbour to difference against
		return invalid("Cells", [2]int{ip.CellsEast, ip.CellsNorth}, "open sides need two or more cells East and North")
	}
	return nil
}

func (ip *InputParameters3D) Extents() mesh.Extents {
	return mesh.Extents{CellsEast: ip.CellsEast, CellsNorth: ip.CellsNorth, CellsUp: ip.CellsUp}
}

func (ip *InputParameters3D) Lid() geometry3D.Vector {
	return geometry3D.NewVector(ip.LidVelocity[0], ip.LidVelocity[1], ip.LidVelocity[2])
}

// Creator builds the cell factory for the run: a floored box with the
// lateral boundary type outside its sides and an optional driven top layer
func (ip *InputParameters3D) Creator() (cr *mesh.Creator, err error) {
	var (
		lateral types.CellType
		lid     = ip.Lid()
	)
	if err = ip.Validate(); err != nil {
		return
	}
	if lateral, err = types.ParseCellType(ip.LateralBoundary); err != nil {
		return
	}
	cr = mesh.NewCreator(ip.CellsEast, ip.CellsNorth, ip.CellsUp,
		mesh.WithDensity(ip.Density),
		mesh.WithViscosity(ip.Viscosity),
		mesh.WithSpacing(geometry3D.NewVector(ip.Spacing[0], ip.Spacing[1], ip.Spacing[2])),
	)
	cr.TypeFunction = func(addr types.GridAddress) types.CellType {
		switch {
		case addr.Up < 0:
			return types.Obstacle
		case addr.Up >= ip.CellsUp:
			return types.Unknown
		case cr.Contains(addr):
			return types.Fluid
		}
		return lateral
	}
	if lid != geometry3D.Zero {
		onLid := func(addr types.GridAddress) bool {
			return addr.Up == ip.CellsUp-1 && cr.Contains(addr)
		}
		cr.VelocityFunction = func(addr types.GridAddress) geometry3D.Vector {
			if onLid(addr) {
				return lid
			}
			return geometry3D.Zero
		}
		cr.BoundaryFunction = onLid
	}
	return
}

func (ip *InputParameters3D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d, %d, %d]\t\t= Cells East, North, Up\n", ip.CellsEast, ip.CellsNorth, ip.CellsUp)
	fmt.Printf("%v\t\t= Spacing\n", ip.Spacing)
	fmt.Printf("%8.3f\t\t= Density\n", ip.Density)
	fmt.Printf("%8.3f\t\t= Viscosity\n", ip.Viscosity)
	fmt.Printf("%8.5f\t\t= TimeStep\n", ip.TimeStep)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("%8.3f\t\t= Newton Step\n", ip.NewtonStep)
	fmt.Printf("%8.3f\t\t= Newton Precision\n", ip.NewtonPrecision)
	fmt.Printf("[%d]\t\t\t= Newton Max Iterations\n", ip.NewtonMaxIterations)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Printf("[%s]\t\t\t= Lateral Boundary\n", ip.LateralBoundary)
	fmt.Printf("%v\t\t= Lid Velocity\n", ip.LidVelocity)
}
