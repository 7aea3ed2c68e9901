package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pipeflow/internal/pipe"
)

// PressureGraph plots pressure along the pipe axis.
func PressureGraph(s *pipe.Scene, width, height int) string {
	return asciigraph.Plot(s.PressureProfile(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("pressure along length"),
	)
}

// VelocityGraph plots velocity from the center to the wall.
func VelocityGraph(s *pipe.Scene, width, height int) string {
	return asciigraph.Plot(s.VelocityProfile(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("velocity across radius"),
	)
}

// Summary lists the scene parameters and extents.
func Summary(s *pipe.Scene) string {
	p := s.Params
	span := s.Cloud.Bounds().Span()
	r, c := s.Dims()

	lines := []string{
		TitleStyle.Render("BENT PIPE"),
		Field("length", p.Length),
		Field("radius", p.Radius),
		Field("bend", Degrees(p.BendAngle)),
		Field("grid", fmt.Sprintf("%d x %d", r, c)),
		Field("pressure", fmt.Sprintf("%g -> %g", p.PressureInlet, p.PressureOutlet)),
		Field("extent", fmt.Sprintf("%.2f x %.2f x %.2f", span[0], span[1], span[2])),
	}
	return strings.Join(lines, "\n")
}
