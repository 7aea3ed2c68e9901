package figure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/pipeflow/internal/pipe"
	"github.com/san-kum/pipeflow/internal/viz"
)

// ErrFormat is returned for output formats other than png and svg.
var ErrFormat = errors.New("figure: unsupported output format")

type Options struct {
	Width, Height vg.Length
	DPI           int
	Camera        *viz.Camera
	ArrowLength   float64
	Normalize     bool
}

func DefaultOptions() Options {
	return Options{
		Width:       18 * vg.Inch,
		Height:      8 * vg.Inch,
		DPI:         100,
		Camera:      viz.NewCamera(30, -60),
		ArrowLength: 0.1,
		Normalize:   true,
	}
}

// Figure is the two-panel rendering of a scene: the pressure-colored
// surface with its color bar on the left, velocity arrows on the right.
type Figure struct {
	Pressure *plot.Plot
	ColorBar *plot.Plot
	Velocity *plot.Plot
	opts     Options
}

func New(s *pipe.Scene, opts Options) *Figure {
	if opts.Camera == nil {
		opts.Camera = DefaultOptions().Camera
	}
	cam := *opts.Camera
	b := s.Cloud.Bounds()
	c := b.Center()
	cam.Center = viz.Vec3{X: c[0], Y: c[1], Z: c[2]}

	fit := viz.CloudPoints(s)
	labels := [3]string{"X", "Y", "Z"}

	faces := viz.Faces(s)
	viz.SortFaces(faces, &cam)

	pressure := plot.New()
	pressure.Title.Text = "Pipe with Pressure Flow"
	pressure.HideAxes()
	pressure.Add(&scene3D{camera: &cam, fit: fit, labels: labels, draw: pressureSurface(faces)})

	// the bar needs a non-empty range
	peak := mat.Max(s.Pressure)
	if peak <= 0 {
		peak = 1
	}
	cb := plot.New()
	cb.Title.Text = " "
	cb.HideX()
	cb.Y.Label.Text = "Pressure"
	cb.Add(&plotter.ColorBar{ColorMap: viz.NewJetMap(0, peak), Vertical: true})

	arrows := viz.Quiver(s, opts.ArrowLength, opts.Normalize)
	velocity := plot.New()
	velocity.Title.Text = "Pipe with Velocity Field"
	velocity.HideAxes()
	velocity.Add(&scene3D{camera: &cam, fit: fit, labels: labels, draw: velocityArrows(arrows, &cam)})

	return &Figure{Pressure: pressure, ColorBar: cb, Velocity: velocity, opts: opts}
}

// Draw lays the panels out side by side on dc.
func (f *Figure) Draw(dc draw.Canvas) {
	half := (dc.Max.X - dc.Min.X) / 2
	bar := vg.Inch
	f.Pressure.Draw(draw.Crop(dc, 0, -(half + bar), 0, 0))
	f.ColorBar.Draw(draw.Crop(dc, half-bar, -half-bar/4, 0, 0))
	f.Velocity.Draw(draw.Crop(dc, half, 0, 0, 0))
}

// WriteTo encodes the figure as format ("png" or "svg") into w.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(f.opts.Width, f.opts.Height), vgimg.UseDPI(f.opts.DPI))
		f.Draw(draw.New(c))
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	case "svg":
		c := vgsvg.New(f.opts.Width, f.opts.Height)
		f.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save writes the figure to path, choosing the format from its extension.
func (f *Figure) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" && format != "svg" {
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Base(path))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := f.WriteTo(bw, format); err != nil {
		return err
	}
	return bw.Flush()
}
