package pipe

import (
	"fmt"
	"math"
)

const (
	DefaultLength         = 30.0
	DefaultRadius         = 2.0
	DefaultLengthPoints   = 300
	DefaultRadiusPoints   = 20
	DefaultPressureInlet  = 100.0
	DefaultPressureOutlet = 10.0
	DefaultBendAngle      = math.Pi / 1.33
)

// Params fixes the shape of the pipe and the boundary values of its fields.
type Params struct {
	Length         float64
	Radius         float64
	LengthPoints   int
	RadiusPoints   int
	PressureInlet  float64
	PressureOutlet float64
	BendAngle      float64 // rotation reached at the outlet, radians
}

func DefaultParams() Params {
	return Params{
		Length:         DefaultLength,
		Radius:         DefaultRadius,
		LengthPoints:   DefaultLengthPoints,
		RadiusPoints:   DefaultRadiusPoints,
		PressureInlet:  DefaultPressureInlet,
		PressureOutlet: DefaultPressureOutlet,
		BendAngle:      DefaultBendAngle,
	}
}

// Validate reports the first parameter that would break the mesh.
// The returned error wraps ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case p.LengthPoints < 2:
		return fmt.Errorf("%w: length points %d < 2", ErrInvalidParams, p.LengthPoints)
	case p.RadiusPoints < 2:
		return fmt.Errorf("%w: radius points %d < 2", ErrInvalidParams, p.RadiusPoints)
	case !finite(p.Length) || p.Length <= 0:
		return fmt.Errorf("%w: length %v", ErrInvalidParams, p.Length)
	case !finite(p.Radius) || p.Radius <= 0:
		return fmt.Errorf("%w: radius %v", ErrInvalidParams, p.Radius)
	case !finite(p.PressureInlet) || !finite(p.PressureOutlet):
		return fmt.Errorf("%w: pressure %v -> %v", ErrInvalidParams, p.PressureInlet, p.PressureOutlet)
	case !finite(p.BendAngle):
		return fmt.Errorf("%w: bend angle %v", ErrInvalidParams, p.BendAngle)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
