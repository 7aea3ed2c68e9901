package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/pipeflow/internal/pipe"
	"github.com/san-kum/pipeflow/internal/viz"
)

const (
	windowWidth  = 1600
	windowHeight = 720
	panelWidth   = windowWidth / 2
	barWidth     = 24
)

var (
	ColBg    = rl.NewColor(250, 250, 250, 255)
	ColText  = rl.NewColor(40, 40, 40, 255)
	ColArrow = rl.NewColor(0, 0, 0, 255)
	ColAxis  = rl.NewColor(150, 150, 150, 255)
)

// App holds the prepared geometry for both viewports.
type App struct {
	Scene       *pipe.Scene
	Camera      rl.Camera3D
	Faces       []viz.Face
	Arrows      []viz.Arrow
	MaxPressure float64
	Toward      viz.Vec3 // view direction, for arrowhead orientation
	Pressure    rl.RenderTexture2D
	Velocity    rl.RenderTexture2D
}

// NewApp converts the scene into render-ready faces and arrows. It does not
// touch the window.
func NewApp(s *pipe.Scene, cam *viz.Camera, arrowLength float64, normalize bool) *App {
	_, _, toward := cam.Basis()
	return &App{
		Scene:       s,
		Camera:      sceneCamera(s, cam),
		Faces:       viz.Faces(s),
		Arrows:      viz.Quiver(s, arrowLength, normalize),
		MaxPressure: mat.Max(s.Pressure),
		Toward:      toward,
	}
}

// toRL maps pipe coordinates (Z up) to raylib's Y-up frame with a rotation
// about X, so handedness is kept.
func toRL(v viz.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Z), float32(-v.Y))
}

// sceneCamera looks at the bounds center from the direction given by the
// viz camera, far enough back that the largest extent fills the view.
func sceneCamera(s *pipe.Scene, cam *viz.Camera) rl.Camera3D {
	b := s.Cloud.Bounds()
	c := b.Center()
	center := viz.Vec3{X: c[0], Y: c[1], Z: c[2]}
	_, up, toward := cam.Basis()

	const fovy = 45.0
	dist := 0.6 * b.Extent() / math.Tan(fovy/2*math.Pi/180)
	return rl.Camera3D{
		Position:   toRL(center.Add(toward.Scale(dist))),
		Target:     toRL(center),
		Up:         toRL(up),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// Run opens the window and blocks until it is closed.
func Run(app *App) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "pipeflow")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	app.Pressure = rl.LoadRenderTexture(panelWidth, windowHeight)
	app.Velocity = rl.LoadRenderTexture(panelWidth, windowHeight)
	defer rl.UnloadRenderTexture(app.Pressure)
	defer rl.UnloadRenderTexture(app.Velocity)

	for !rl.WindowShouldClose() {
		app.drawPanel(app.Pressure, "Pipe with Pressure Flow", app.drawSurface, app.drawColorBar)
		app.drawPanel(app.Velocity, "Pipe with Velocity Field", app.drawArrows, nil)

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		// render textures are stored upside down
		src := rl.NewRectangle(0, 0, panelWidth, -windowHeight)
		rl.DrawTextureRec(app.Pressure.Texture, src, rl.NewVector2(0, 0), rl.White)
		rl.DrawTextureRec(app.Velocity.Texture, src, rl.NewVector2(panelWidth, 0), rl.White)
		rl.DrawLine(panelWidth, 0, panelWidth, windowHeight, ColAxis)
		rl.EndDrawing()
	}
}

func (a *App) drawPanel(target rl.RenderTexture2D, title string, world func(), overlay func()) {
	rl.BeginTextureMode(target)
	rl.ClearBackground(ColBg)
	rl.BeginMode3D(a.Camera)
	a.drawAxes()
	world()
	rl.EndMode3D()
	rl.DrawText(title, 20, 16, 20, ColText)
	if overlay != nil {
		overlay()
	}
	rl.EndTextureMode()
}

func (a *App) drawAxes() {
	b := a.Scene.Cloud.Bounds()
	lo := viz.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]}
	rl.DrawLine3D(toRL(lo), toRL(viz.Vec3{X: b.Max[0], Y: lo.Y, Z: lo.Z}), rl.Red)
	rl.DrawLine3D(toRL(lo), toRL(viz.Vec3{X: lo.X, Y: b.Max[1], Z: lo.Z}), rl.Green)
	rl.DrawLine3D(toRL(lo), toRL(viz.Vec3{X: lo.X, Y: lo.Y, Z: b.Max[2]}), rl.Blue)
}

// drawSurface splits each face into two triangles, both windings, so the
// inside of the pipe is visible through the open ends.
func (a *App) drawSurface() {
	for _, f := range a.Faces {
		col := viz.Jet(f.Level)
		p0, p1, p2, p3 := toRL(f.Corners[0]), toRL(f.Corners[1]), toRL(f.Corners[2]), toRL(f.Corners[3])
		rl.DrawTriangle3D(p0, p1, p2, col)
		rl.DrawTriangle3D(p0, p2, p3, col)
		rl.DrawTriangle3D(p2, p1, p0, col)
		rl.DrawTriangle3D(p3, p2, p0, col)
	}
}

func (a *App) drawArrows() {
	for _, ar := range a.Arrows {
		b1, b2 := ar.Barbs(a.Toward, 0.3)
		head := toRL(ar.Head)
		rl.DrawLine3D(toRL(ar.Tail), head, ColArrow)
		rl.DrawLine3D(toRL(b1), head, ColArrow)
		rl.DrawLine3D(toRL(b2), head, ColArrow)
	}
}

// drawColorBar draws the jet scale from 0 at the bottom to MaxPressure.
func (a *App) drawColorBar() {
	const top, height = 80, windowHeight - 160
	x := int32(panelWidth - barWidth - 70)
	for y := int32(0); y < height; y++ {
		level := 1 - float64(y)/float64(height-1)
		rl.DrawRectangle(x, top+y, barWidth, 1, viz.Jet(level))
	}
	rl.DrawRectangleLines(x, top, barWidth, height, ColText)
	for k := 0; k <= 4; k++ {
		v := a.MaxPressure * float64(k) / 4
		y := top + height - int32(float64(height)*float64(k)/4)
		rl.DrawText(fmt.Sprintf("%.0f", v), x+barWidth+6, y-6, 12, ColText)
	}
	rl.DrawText("Pressure", x-10, top+height+14, 16, ColText)
}
