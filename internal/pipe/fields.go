package pipe

import "gonum.org/v1/gonum/mat"

// Pressure falls linearly from inlet to outlet along the pipe and is uniform
// over each cross-section.
func Pressure(inlet, outlet float64, lengthPoints, radiusPoints int) *mat.Dense {
	return TileRows(Linspace(inlet, outlet, lengthPoints), radiusPoints)
}

// VelocityProfile is the laminar profile 1 - (r/R)^2 sampled at n radii
// from the center (1) to the wall (0).
func VelocityProfile(radius float64, n int) []float64 {
	r := Linspace(0, radius, n)
	v := make([]float64, n)
	for i, ri := range r {
		q := ri / radius
		v[i] = 1 - q*q
	}
	return v
}

// Velocity spreads the radial profile along the pipe: row i holds the
// profile value at radius index i for every length position.
func Velocity(radius float64, lengthPoints, radiusPoints int) *mat.Dense {
	return TileColumns(VelocityProfile(radius, radiusPoints), lengthPoints)
}
