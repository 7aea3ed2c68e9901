package pipe

import "gonum.org/v1/gonum/mat"

// Scene is the fully synthesized pipe: bent geometry plus both fields,
// all sharing the grid's shape.
type Scene struct {
	Params   Params
	Grid     *Grid
	Straight *Cloud
	Cloud    *Cloud
	Pressure *mat.Dense
	Velocity *mat.Dense
}

// Synthesize runs the whole pipeline for p. It only fails when p does not
// validate.
func Synthesize(p Params) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := NewGrid(p.LengthPoints, p.RadiusPoints)
	straight := Straight(g, p.Radius, p.Length)

	return &Scene{
		Params:   p,
		Grid:     g,
		Straight: straight,
		Cloud:    Bend(straight, g.T, p.BendAngle),
		Pressure: Pressure(p.PressureInlet, p.PressureOutlet, p.LengthPoints, p.RadiusPoints),
		Velocity: Velocity(p.Radius, p.LengthPoints, p.RadiusPoints),
	}, nil
}

// Dims returns (radius points, length points).
func (s *Scene) Dims() (int, int) {
	return s.Grid.Dims()
}

// PressureProfile is the pressure along the pipe axis.
func (s *Scene) PressureProfile() []float64 {
	return mat.Row(nil, 0, s.Pressure)
}

// VelocityProfile is the velocity from center to wall.
func (s *Scene) VelocityProfile() []float64 {
	return mat.Col(nil, 0, s.Velocity)
}
