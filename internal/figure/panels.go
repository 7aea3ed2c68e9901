package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/pipeflow/internal/viz"
)

var (
	arrowColor = color.Black
	axisColor  = color.Gray{Y: 90}
)

// scene3D draws world geometry into a plot's data area with an equal-scale
// orthographic projection. It ignores the plot's axis transforms.
type scene3D struct {
	camera *viz.Camera
	fit    []viz.Vec3 // points the view must contain
	labels [3]string
	draw   func(c *draw.Canvas, project func(viz.Vec3) vg.Point)
}

func (s *scene3D) Plot(c draw.Canvas, plt *plot.Plot) {
	w := float64(c.Max.X - c.Min.X)
	h := float64(c.Max.Y - c.Min.Y)
	vp := viz.FitViewport(s.camera, s.fit, w, h, 0.06)
	project := func(p viz.Vec3) vg.Point {
		x, y := vp.Map(s.camera.View(p))
		return vg.Point{X: c.Min.X + vg.Length(x), Y: c.Min.Y + vg.Length(y)}
	}

	s.drawAxes(&c, plt, project)
	s.draw(&c, project)
}

// drawAxes draws a triad from the minimum corner of the fitted points.
func (s *scene3D) drawAxes(c *draw.Canvas, plt *plot.Plot, project func(viz.Vec3) vg.Point) {
	if len(s.fit) == 0 {
		return
	}
	lo, hi := s.fit[0], s.fit[0]
	for _, p := range s.fit[1:] {
		lo = viz.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = viz.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	ends := [3]viz.Vec3{
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
	}

	line := draw.LineStyle{Color: axisColor, Width: vg.Points(0.8)}
	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(11)
	sty.Color = axisColor
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	origin := project(lo)
	for k, end := range ends {
		tip := project(end)
		c.StrokeLine2(line, origin.X, origin.Y, tip.X, tip.Y)
		dir := tip.Sub(origin)
		if n := length(dir); n > 0 {
			tip = tip.Add(dir.Scale(vg.Points(10) / n))
		}
		c.FillText(sty, tip, s.labels[k])
	}
}

func length(p vg.Point) vg.Length {
	return vg.Length(viz.Vec3{X: float64(p.X), Y: float64(p.Y)}.Length())
}

// pressureSurface fills every face with its jet color, far faces first.
func pressureSurface(faces []viz.Face) func(*draw.Canvas, func(viz.Vec3) vg.Point) {
	return func(c *draw.Canvas, project func(viz.Vec3) vg.Point) {
		poly := make([]vg.Point, 4)
		for _, f := range faces {
			for k, p := range f.Corners {
				poly[k] = project(p)
			}
			c.FillPolygon(viz.Jet(f.Level), poly)
		}
	}
}

// velocityArrows strokes each arrow with a two-barb head.
func velocityArrows(arrows []viz.Arrow, cam *viz.Camera) func(*draw.Canvas, func(viz.Vec3) vg.Point) {
	_, _, toward := cam.Basis()
	return func(c *draw.Canvas, project func(viz.Vec3) vg.Point) {
		sty := draw.LineStyle{Color: arrowColor, Width: vg.Points(0.4)}
		for _, a := range arrows {
			b1, b2 := a.Barbs(toward, 0.3)
			head := project(a.Head)
			c.StrokeLines(sty,
				[]vg.Point{project(a.Tail), head},
				[]vg.Point{project(b1), head, project(b2)},
			)
		}
	}
}
