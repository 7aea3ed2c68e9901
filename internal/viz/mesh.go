package viz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/pipeflow/internal/pipe"
)

// Face is one surface quad between neighbouring grid nodes.
type Face struct {
	Corners [4]Vec3
	Value   float64 // pressure at the quad's first corner
	Level   float64 // Value / max pressure
}

// Centroid averages the four corners.
func (f Face) Centroid() Vec3 {
	var c Vec3
	for _, p := range f.Corners {
		c = c.Add(p)
	}
	return c.Scale(0.25)
}

// Arrow is one quiver segment anchored at a grid node.
type Arrow struct {
	Tail, Head Vec3
	Magnitude  float64
}

func node(c *pipe.Cloud, i, j int) Vec3 {
	x, y, z := c.Point(i, j)
	return Vec3{x, y, z}
}

// Faces tiles the bent surface with quads colored by pressure divided by its
// maximum.
func Faces(s *pipe.Scene) []Face {
	r, c := s.Dims()
	if r < 2 || c < 2 {
		return nil
	}
	peak := mat.Max(s.Pressure)
	faces := make([]Face, 0, (r-1)*(c-1))
	for i := 0; i < r-1; i++ {
		for j := 0; j < c-1; j++ {
			p := s.Pressure.At(i, j)
			level := 0.0
			if peak != 0 {
				level = p / peak
			}
			faces = append(faces, Face{
				Corners: [4]Vec3{
					node(s.Cloud, i, j),
					node(s.Cloud, i+1, j),
					node(s.Cloud, i+1, j+1),
					node(s.Cloud, i, j+1),
				},
				Value: p,
				Level: level,
			})
		}
	}
	return faces
}

// SortFaces orders faces far to near for painter's drawing.
func SortFaces(faces []Face, cam *Camera) {
	depth := make([]float64, len(faces))
	for i := range faces {
		depth[i] = cam.View(faces[i].Centroid()).Z
	}
	sort.Stable(byDepth{faces, depth})
}

type byDepth struct {
	faces []Face
	depth []float64
}

func (b byDepth) Len() int           { return len(b.faces) }
func (b byDepth) Less(i, j int) bool { return b.depth[i] < b.depth[j] }
func (b byDepth) Swap(i, j int) {
	b.faces[i], b.faces[j] = b.faces[j], b.faces[i]
	b.depth[i], b.depth[j] = b.depth[j], b.depth[i]
}

// Quiver places one +Z arrow per grid node with the node's velocity as
// magnitude. When normalize is set every arrow has the given length;
// otherwise length scales the velocity. Zero-velocity nodes get no arrow.
func Quiver(s *pipe.Scene, length float64, normalize bool) []Arrow {
	r, c := s.Dims()
	arrows := make([]Arrow, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := s.Velocity.At(i, j)
			if v == 0 || math.IsNaN(v) {
				continue
			}
			l := length
			if !normalize {
				l = length * v
			}
			tail := node(s.Cloud, i, j)
			arrows = append(arrows, Arrow{
				Tail:      tail,
				Head:      tail.Add(Vec3{0, 0, l}),
				Magnitude: v,
			})
		}
	}
	return arrows
}

// Barbs returns the two arrowhead tips, each ratio of the arrow length back
// from the head and spread perpendicular to both the arrow and toward.
func (a Arrow) Barbs(toward Vec3, ratio float64) (Vec3, Vec3) {
	d := a.Head.Sub(a.Tail)
	l := d.Length()
	side := d.Cross(toward).Normalize()
	if side == (Vec3{}) {
		side = Vec3{1, 0, 0}
	}
	back := a.Head.Sub(d.Scale(ratio))
	spread := side.Scale(l * ratio * math.Tan(15*math.Pi/180))
	return back.Add(spread), back.Sub(spread)
}

// PipeWireframe outlines the bent surface with every row as a longitudinal
// line and a ring every stride columns, plus the outlet ring.
func PipeWireframe(s *pipe.Scene, stride int) *Wireframe {
	if stride < 1 {
		stride = 1
	}
	w := NewWireframe()
	r, c := s.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j+1 < c; j++ {
			w.AddEdge(node(s.Cloud, i, j), node(s.Cloud, i, j+1))
		}
	}
	for j := 0; j < c; j++ {
		if j%stride != 0 && j != c-1 {
			continue
		}
		for i := 0; i+1 < r; i++ {
			w.AddEdge(node(s.Cloud, i, j), node(s.Cloud, i+1, j))
		}
	}
	return w
}

// CloudPoints lists every grid node.
func CloudPoints(s *pipe.Scene) []Vec3 {
	r, c := s.Dims()
	pts := make([]Vec3, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			pts = append(pts, node(s.Cloud, i, j))
		}
	}
	return pts
}
