package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Camera is an orthographic view with Z up, positioned by elevation above
// the XY plane and azimuth around Z, both in degrees.
type Camera struct {
	Elevation, Azimuth float64
	Center             Vec3
}

func NewCamera(elevation, azimuth float64) *Camera {
	return &Camera{Elevation: elevation, Azimuth: azimuth}
}

// Basis returns the world directions of screen right, screen up and the
// direction pointing from the scene towards the viewer.
func (c *Camera) Basis() (right, up, toward Vec3) {
	e := c.Elevation * math.Pi / 180
	a := c.Azimuth * math.Pi / 180
	se, ce := math.Sincos(e)
	sa, ca := math.Sincos(a)
	toward = Vec3{ce * ca, ce * sa, se}
	right = Vec3{-sa, ca, 0}
	up = Vec3{-se * ca, -se * sa, ce}
	return
}

// View converts a world point to camera space: X right, Y up, Z towards the
// viewer. Larger Z is nearer.
func (c *Camera) View(p Vec3) Vec3 {
	right, up, toward := c.Basis()
	q := p.Sub(c.Center)
	return Vec3{q.Dot(right), q.Dot(up), q.Dot(toward)}
}

// Viewport maps camera-space X/Y into a W×H rectangle using one scale for
// both axes, so world lengths keep their proportions on screen.
type Viewport struct {
	W, H  float64
	Scale float64
	MidX  float64
	MidY  float64
}

// FitViewport picks the largest scale at which every point, seen through
// cam, fits inside w×h with the given fractional margin.
func FitViewport(cam *Camera, pts []Vec3, w, h, margin float64) Viewport {
	vp := Viewport{W: w, H: h, Scale: 1}
	if len(pts) == 0 {
		return vp
	}
	first := cam.View(pts[0])
	minX, maxX, minY, maxY := first.X, first.X, first.Y, first.Y
	for _, p := range pts[1:] {
		v := cam.View(p)
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	usable := 1 - 2*margin
	vp.Scale = math.Min(w*usable/dx, h*usable/dy)
	vp.MidX, vp.MidY = (minX+maxX)/2, (minY+maxY)/2
	return vp
}

// Map returns screen coordinates with the origin at the bottom left and y
// growing upwards.
func (vp Viewport) Map(v Vec3) (float64, float64) {
	return vp.W/2 + (v.X-vp.MidX)*vp.Scale, vp.H/2 + (v.Y-vp.MidY)*vp.Scale
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

// Points lists every edge endpoint, for fitting a viewport.
func (w *Wireframe) Points() []Vec3 {
	pts := make([]Vec3, 0, 2*len(w.Edges))
	for _, e := range w.Edges {
		pts = append(pts, e.Start, e.End)
	}
	return pts
}

// Render3D draws the wireframe to the braille canvas, far edges first.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil || len(w.Edges) == 0 {
		return
	}
	pw, ph := c.Width*2, c.Height*4
	vp := FitViewport(cam, w.Points(), float64(pw), float64(ph), 0.04)

	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	proj := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		a, b := cam.View(e.Start), cam.View(e.End)
		x1, y1 := vp.Map(a)
		x2, y2 := vp.Map(b)
		proj = append(proj, projected{
			int(x1), ph - 1 - int(y1),
			int(x2), ph - 1 - int(y2),
			(a.Z + b.Z) / 2,
		})
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}
