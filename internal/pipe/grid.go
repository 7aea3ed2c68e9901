package pipe

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is the parametric mesh of the pipe surface.
// T holds the normalized length position in [0, 1], Theta the angle in [0, 2π].
type Grid struct {
	T     *mat.Dense
	Theta *mat.Dense
}

// NewGrid meshes lengthPoints positions along the pipe with radiusPoints
// angles around it. Both sequences include their endpoints, so the first and
// last rows of Theta coincide on the surface.
func NewGrid(lengthPoints, radiusPoints int) *Grid {
	t := Linspace(0, 1, lengthPoints)
	theta := Linspace(0, 2*math.Pi, radiusPoints)
	T, Theta := Meshgrid(t, theta)
	return &Grid{T: T, Theta: Theta}
}

// Dims returns (radius points, length points).
func (g *Grid) Dims() (int, int) {
	return g.T.Dims()
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// It panics if n < 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Meshgrid pairs every x with every y. Row i of both results corresponds to
// y[i], column j to x[j].
func Meshgrid(x, y []float64) (*mat.Dense, *mat.Dense) {
	return TileRows(x, len(y)), TileColumns(y, len(x))
}

// TileRows stacks row rows times, giving a (rows × len(row)) matrix whose
// columns are constant.
func TileRows(row []float64, rows int) *mat.Dense {
	m := mat.NewDense(rows, len(row), nil)
	for i := 0; i < rows; i++ {
		m.SetRow(i, row)
	}
	return m
}

// TileColumns places col in each of cols columns, giving a (len(col) × cols)
// matrix whose rows are constant.
func TileColumns(col []float64, cols int) *mat.Dense {
	m := mat.NewDense(len(col), cols, nil)
	for j := 0; j < cols; j++ {
		m.SetCol(j, col)
	}
	return m
}
