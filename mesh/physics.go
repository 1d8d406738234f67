package mesh

import "github.com/notargets/gonavier/geometry3D"

const (
	GravityAcceleration = 9.80665 // m/s^2
	SeaLevelPressure    = 101325. // Pa
	SeawaterDensity     = 1025.   // kg/m^3
	SeawaterViscosity   = 30.
)

// Gravity points down the Up axis
var Gravity = geometry3D.NewVector(0, 0, -GravityAcceleration)

// PressureAtDepth is the hydrostatic pressure below a free surface at sea level pressure
func PressureAtDepth(depth, density float64) float64 {
	return SeaLevelPressure + density*GravityAcceleration*depth
}
