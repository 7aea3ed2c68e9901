package pipe

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cloud holds Cartesian surface coordinates, one matrix per axis.
type Cloud struct {
	X, Y, Z *mat.Dense
}

// Straight maps the grid onto an unbent cylinder along +Z.
func Straight(g *Grid, radius, length float64) *Cloud {
	c := &Cloud{X: &mat.Dense{}, Y: &mat.Dense{}, Z: &mat.Dense{}}
	c.X.Apply(func(_, _ int, th float64) float64 { return radius * math.Cos(th) }, g.Theta)
	c.Y.Apply(func(_, _ int, th float64) float64 { return radius * math.Sin(th) }, g.Theta)
	c.Z.Scale(length, g.T)
	return c
}

// Bend rotates every point about the Y axis by t·angle, where t is the
// point's normalized length position. The inlet (t = 0) is left in place and
// the outlet is turned by the full angle. Y is shared with the input; X and
// Z are fresh matrices.
func Bend(c *Cloud, t mat.Matrix, angle float64) *Cloud {
	r, cols := c.X.Dims()
	x := mat.NewDense(r, cols, nil)
	z := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			a := t.At(i, j) * angle
			sin, cos := math.Sincos(a)
			px, pz := c.X.At(i, j), c.Z.At(i, j)
			x.Set(i, j, px*cos+pz*sin)
			z.Set(i, j, -px*sin+pz*cos)
		}
	}
	return &Cloud{X: x, Y: c.Y, Z: z}
}

// Point returns the coordinates of grid node (i, j).
func (c *Cloud) Point(i, j int) (x, y, z float64) {
	return c.X.At(i, j), c.Y.At(i, j), c.Z.At(i, j)
}

// Bounds is the axis-aligned box enclosing a cloud.
type Bounds struct {
	Min, Max [3]float64
}

// Bounds scans all three coordinate matrices.
func (c *Cloud) Bounds() Bounds {
	var b Bounds
	for k, m := range []*mat.Dense{c.X, c.Y, c.Z} {
		b.Min[k] = mat.Min(m)
		b.Max[k] = mat.Max(m)
	}
	return b
}

// Span returns the peak-to-peak extent per axis.
func (b Bounds) Span() [3]float64 {
	return [3]float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float64 {
	return [3]float64{(b.Max[0] + b.Min[0]) / 2, (b.Max[1] + b.Min[1]) / 2, (b.Max[2] + b.Min[2]) / 2}
}

// Extent returns the largest per-axis span.
func (b Bounds) Extent() float64 {
	s := b.Span()
	return math.Max(s[0], math.Max(s[1], s[2]))
}
