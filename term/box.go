package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/hoverline/tooltip"
)

// Box is a bordered text box implementing tooltip.Element.
type Box struct {
	class   string
	style   lipgloss.Style
	text    string
	lines   []string
	x, y    float64
	visible bool
}

var _ tooltip.Element = (*Box)(nil)

func newBox(class string, style lipgloss.Style) *Box {
	return &Box{class: class, style: style}
}

// Class returns the style class the box was created with.
func (b *Box) Class() string { return b.class }

func (b *Box) SetText(text string) {
	b.text = text
	b.lines = strings.Split(text, "\n")
}

func (b *Box) Text() string { return b.text }

// Size returns the outer size of the box in cells, border and padding
// included.
func (b *Box) Size() (float64, float64) {
	w := 0
	for _, line := range b.lines {
		w = max(w, lipgloss.Width(line))
	}
	h := max(len(b.lines), 1)

	return float64(w + b.style.GetHorizontalFrameSize()), float64(h + b.style.GetVerticalFrameSize())
}

func (b *Box) MoveTo(x, y float64) {
	b.x, b.y = x, y
}

// Position returns the top-left corner set by the last MoveTo, in terminal cells.
func (b *Box) Position() (float64, float64) {
	return b.x, b.y
}

func (b *Box) SetVisible(visible bool) {
	b.visible = visible
}

func (b *Box) Visible() bool { return b.visible }

// draw paints the box onto the surface. The box position is in terminal
// cells, like the pointer it follows.
func (b *Box) draw(s *Surface) {
	if !b.visible || b.text == "" {
		return
	}

	w, h := b.Size()
	// keep the box on the surface when the pointer is near an edge
	left := clamp(cell(b.x-s.origin.X), 0, s.width-int(w))
	top := clamp(cell(b.y-s.origin.Y), 0, s.height-int(h))
	right, bottom := left+int(w)-1, top+int(h)-1

	border := b.style.GetBorderStyle()
	borderStyle := lipgloss.NewStyle().Foreground(b.style.GetBorderTopForeground())
	textStyle := lipgloss.NewStyle().
		Foreground(b.style.GetForeground()).
		Background(b.style.GetBackground()).
		Bold(b.style.GetBold())

	// fill
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			s.set(x, y, ' ', textStyle)
		}
	}

	if b.style.GetBorderTop() {
		s.set(left, top, firstRune(border.TopLeft), borderStyle)
		s.set(right, top, firstRune(border.TopRight), borderStyle)
		s.set(left, bottom, firstRune(border.BottomLeft), borderStyle)
		s.set(right, bottom, firstRune(border.BottomRight), borderStyle)
		for x := left + 1; x < right; x++ {
			s.set(x, top, firstRune(border.Top), borderStyle)
			s.set(x, bottom, firstRune(border.Bottom), borderStyle)
		}
		for y := top + 1; y < bottom; y++ {
			s.set(left, y, firstRune(border.Left), borderStyle)
			s.set(right, y, firstRune(border.Right), borderStyle)
		}
	}

	textLeft := left + b.style.GetBorderLeftSize() + b.style.GetPaddingLeft()
	textTop := top + b.style.GetBorderTopSize() + b.style.GetPaddingTop()
	for i, line := range b.lines {
		x := textLeft
		for _, r := range line {
			s.set(x, textTop+i, r, textStyle)
			x++
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}

	return ' '
}

// clamp limits v to [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	return max(min(v, hi), lo)
}
