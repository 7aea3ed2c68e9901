package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pipeflow/internal/pipe"
)

const (
	defaultWidth  = 70
	defaultHeight = 28
	sidePanel     = 48
)

// Viewer is a read-only terminal rendering of a scene. It redraws on resize
// and exits on q, esc or ctrl+c.
type Viewer struct {
	scene         *pipe.Scene
	wire          *Wireframe
	camera        *Camera
	canvas        *Canvas
	width, height int
}

// NewViewer prepares the wireframe once; stride sets the ring spacing.
func NewViewer(s *pipe.Scene, cam *Camera, stride int) Viewer {
	v := Viewer{
		scene:  s,
		wire:   PipeWireframe(s, stride),
		camera: cam,
		width:  defaultWidth,
		height: defaultHeight,
	}
	v.redraw()
	return v
}

func (v *Viewer) redraw() {
	v.canvas = NewCanvas(v.width, v.height)
	Render3D(v.canvas, v.wire, v.camera)
}

func (v Viewer) Init() tea.Cmd {
	return nil
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		w := msg.Width - sidePanel - 4
		h := msg.Height - 4
		if w > 10 && h > 5 {
			v.width, v.height = w, h
			v.redraw()
		}
	}
	return v, nil
}

func (v Viewer) View() string {
	var side strings.Builder
	side.WriteString(Summary(v.scene) + "\n\n")
	side.WriteString(JetBar(24) + "\n")
	side.WriteString(HintStyle.Render("low pressure        high") + "\n")
	side.WriteString(GraphStyle.Render(PressureGraph(v.scene, 30, 5)) + "\n")
	side.WriteString(GraphStyle.Render(VelocityGraph(v.scene, 30, 5)) + "\n")
	side.WriteString(HintStyle.Render("q: quit"))

	pipeView := PanelStyle.Render(v.canvas.String())
	info := PanelStyle.Width(sidePanel).Render(side.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, pipeView, info)
}
