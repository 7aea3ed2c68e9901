package viz

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// jet control points, (position, intensity), per channel.
var (
	jetRed   = [][2]float64{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}}
	jetGreen = [][2]float64{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}}
	jetBlue  = [][2]float64{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}}
)

// Jet maps v in [0, 1] onto the jet ramp, dark blue through cyan and yellow
// to dark red. Values outside the range are clamped.
func Jet(v float64) color.RGBA {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(0, math.Min(1, v))
	return color.RGBA{
		R: channel(jetRed, v),
		G: channel(jetGreen, v),
		B: channel(jetBlue, v),
		A: 255,
	}
}

func channel(points [][2]float64, v float64) uint8 {
	for k := 1; k < len(points); k++ {
		x0, y0 := points[k-1][0], points[k-1][1]
		x1, y1 := points[k][0], points[k][1]
		if v <= x1 {
			f := y0
			if x1 > x0 {
				f = y0 + (y1-y0)*(v-x0)/(x1-x0)
			}
			return uint8(math.Round(f * 255))
		}
	}
	return uint8(math.Round(points[len(points)-1][1] * 255))
}

// JetMap is a palette.ColorMap over [Min, Max] using Jet.
type JetMap struct {
	min, max, alpha float64
}

func NewJetMap(min, max float64) *JetMap {
	return &JetMap{min: min, max: max, alpha: 1}
}

func (m *JetMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	f := 0.0
	if m.max > m.min {
		f = (v - m.min) / (m.max - m.min)
	}
	c := Jet(f)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(m.alpha * 255))}, nil
}

func (m *JetMap) Max() float64           { return m.max }
func (m *JetMap) SetMax(v float64)       { m.max = v }
func (m *JetMap) Min() float64           { return m.min }
func (m *JetMap) SetMin(v float64)       { m.min = v }
func (m *JetMap) Alpha() float64         { return m.alpha }
func (m *JetMap) SetAlpha(alpha float64) { m.alpha = alpha }

// Palette samples n evenly spaced colors from Min to Max.
func (m *JetMap) Palette(n int) palette.Palette {
	cols := make(colors, n)
	for i := range cols {
		v := m.min
		if n > 1 {
			v += (m.max - m.min) * float64(i) / float64(n-1)
		}
		cols[i], _ = m.At(v)
	}
	return cols
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
