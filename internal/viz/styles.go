package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	GraphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("49")).
			Padding(1, 0)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)
)

// Field renders one "label value" line.
func Field(label string, value any) string {
	return LabelStyle.Render(label) + ValueStyle.Render(fmt.Sprint(value))
}

// JetBar renders width blocks colored along the jet ramp.
func JetBar(width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		f := 0.0
		if width > 1 {
			f = float64(i) / float64(width-1)
		}
		c := Jet(f)
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
	}
	return b.String()
}

// Degrees formats an angle in radians as degrees.
func Degrees(rad float64) string {
	return fmt.Sprintf("%.1f°", rad*180/math.Pi)
}
