package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/hoverline/tooltip"
)

const (
	runeVertical   = '│'
	runeHorizontal = '─'
	runeCross      = '┼'
	runePoint      = '●'
)

// Marker is a crosshair line or point marker implementing tooltip.Marker.
//
// The marker geometry is its spec translated by the last MoveTo offset.
type Marker struct {
	spec    tooltip.MarkerSpec
	style   lipgloss.Style
	x, y    float64
	visible bool
	removed bool
}

var _ tooltip.Marker = (*Marker)(nil)

func (m *Marker) MoveTo(x, y float64) {
	m.x, m.y = x, y
}

func (m *Marker) SetVisible(visible bool) {
	m.visible = visible
}

func (m *Marker) Remove() {
	m.removed = true
	m.visible = false
}

// Spec returns the marker spec it was created from.
func (m *Marker) Spec() tooltip.MarkerSpec { return m.spec }

// Visible reports whether the marker is drawn.
func (m *Marker) Visible() bool { return m.visible && !m.removed }

// Position returns the offset set by the last MoveTo.
func (m *Marker) Position() (float64, float64) { return m.x, m.y }

func (m *Marker) draw(s *Surface) {
	if !m.Visible() {
		return
	}

	switch m.spec.Kind {
	case tooltip.MarkerVertical:
		x := cell(m.x + m.spec.From.X)
		for y := cell(m.y + m.spec.From.Y); y <= cell(m.y+m.spec.To.Y); y++ {
			r := runeVertical
			if s.at(x, y) == runeHorizontal {
				r = runeCross
			}
			s.set(x, y, r, m.style)
		}
	case tooltip.MarkerHorizontal:
		y := cell(m.y + m.spec.From.Y)
		for x := cell(m.x + m.spec.From.X); x <= cell(m.x+m.spec.To.X); x++ {
			s.set(x, y, runeHorizontal, m.style)
		}
	case tooltip.MarkerPoint:
		s.set(cell(m.x), cell(m.y), runePoint, m.style)
	}
}
