package term

import (
	"math"
	"slices"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/internal/options"
	"github.com/arloliu/hoverline/tooltip"
)

const (
	runeSample = '•'
	runeTrace  = '·'
)

// Surface is a terminal chart area implementing tooltip.Host.
//
// It's not safe for concurrent use; it is meant to live inside a single
// bubbletea model.
type Surface struct {
	width, height int
	origin        geom.Point
	styles        map[string]lipgloss.Style
	palette       []lipgloss.Color

	canvas   canvas.Model
	tooltips []*Box
	markers  []*Marker
}

var _ tooltip.Host = (*Surface)(nil)

// Option configures a Surface.
type Option = options.Option[*Surface]

// WithOrigin places the surface at the given terminal cell.
func WithOrigin(x, y int) Option {
	return options.NoError(func(s *Surface) {
		s.origin = geom.Point{X: float64(x), Y: float64(y)}
	})
}

// WithStyle sets the style of a tooltip, marker or highlight class.
func WithStyle(class string, style lipgloss.Style) Option {
	return options.NoError(func(s *Surface) {
		s.styles[class] = style
	})
}

// WithPalette replaces the series color rotation.
func WithPalette(colors ...lipgloss.Color) Option {
	return options.NoError(func(s *Surface) {
		if len(colors) > 0 {
			s.palette = colors
		}
	})
}

// DefaultStyles returns the styles of the default tooltip classes.
func DefaultStyles() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		tooltip.DefaultTooltipClass: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		tooltip.DefaultMarkerClass:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		tooltip.DefaultHighlightClass: lipgloss.NewStyle().Bold(true),
	}
}

// NewSurface creates a surface of width x height cells.
func NewSurface(width, height int, opts ...Option) (*Surface, error) {
	s := &Surface{
		width:   max(width, 1),
		height:  max(height, 1),
		styles:  DefaultStyles(),
		palette: DefaultPalette,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	s.canvas = canvas.New(s.width, s.height)

	return s, nil
}

// Size returns the surface size in cells.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the surface size. Charts must be rendered again afterwards
// since axis lengths change.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 1)
	s.canvas = canvas.New(s.width, s.height)
}

// SetOrigin moves the surface inside the terminal.
func (s *Surface) SetOrigin(x, y int) {
	s.origin = geom.Point{X: float64(x), Y: float64(y)}
}

// Contains reports whether a terminal cell lies on the surface.
func (s *Surface) Contains(screenX, screenY int) bool {
	x := float64(screenX) - s.origin.X
	y := float64(screenY) - s.origin.Y

	return x >= 0 && y >= 0 && x < float64(s.width) && y < float64(s.height)
}

// ScreenTransform maps surface cells to terminal cells.
func (s *Surface) ScreenTransform() geom.Transform {
	return geom.Translate(s.origin.X, s.origin.Y)
}

// Axes returns axes spanning the whole surface for the given data bounds.
//
// A zero-width data range is widened by one unit around its value so a flat
// series still renders.
func (s *Surface) Axes(minX, maxX, minY, maxY float64) (geom.Axis, geom.Axis) {
	if maxX == minX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if maxY == minY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	bottom := float64(s.height - 1)

	return geom.NewAxis(minX, maxX, 0, float64(s.width-1)),
		geom.NewAxis(minY, maxY, bottom, bottom)
}

// NewTooltip creates a hidden tooltip box styled by class.
func (s *Surface) NewTooltip(class string) tooltip.Element {
	b := newBox(class, s.style(class))
	s.tooltips = append(s.tooltips, b)

	return b
}

// NewMarker creates a marker. Point markers take the color of their series.
func (s *Surface) NewMarker(spec tooltip.MarkerSpec) tooltip.Marker {
	style := s.style(spec.Class)
	if spec.Kind == tooltip.MarkerPoint && spec.Series != nil {
		style = style.Foreground(s.SeriesColor(spec.Series.Name))
	}

	m := &Marker{spec: spec, style: style}
	s.markers = slices.DeleteFunc(s.markers, func(m *Marker) bool { return m.removed })
	s.markers = append(s.markers, m)

	return m
}

// Markers returns the live markers in creation order.
func (s *Surface) Markers() []*Marker {
	return slices.DeleteFunc(slices.Clone(s.markers), func(m *Marker) bool { return m.removed })
}

// SeriesColor returns the palette color of a series.
func (s *Surface) SeriesColor(name string) lipgloss.Color {
	return s.palette[paletteSlot(name, len(s.palette))]
}

func (s *Surface) style(class string) lipgloss.Style {
	if st, ok := s.styles[class]; ok {
		return st
	}

	return lipgloss.NewStyle()
}

// Render draws the series, the visible markers and tooltips, and returns the
// resulting cell grid as a string.
func (s *Surface) Render(series []index.Series, xAxis, yAxis geom.Axis) string {
	s.canvas.Clear()

	for _, ser := range series {
		s.drawSeries(ser, xAxis, yAxis)
	}

	// horizontal lines first so vertical ones can join them
	for _, m := range s.markers {
		if m.spec.Kind == tooltip.MarkerHorizontal {
			m.draw(s)
		}
	}
	for _, m := range s.markers {
		if m.spec.Kind != tooltip.MarkerHorizontal {
			m.draw(s)
		}
	}
	for _, b := range s.tooltips {
		b.draw(s)
	}

	return s.canvas.View()
}

func (s *Surface) drawSeries(ser index.Series, xAxis, yAxis geom.Axis) {
	style := lipgloss.NewStyle().Foreground(s.SeriesColor(ser.Name))

	for i, p := range ser.Points {
		x := xAxis.ToRenderX(p.X)
		y := yAxis.ToRenderY(p.Y)

		if i > 0 {
			prev := ser.Points[i-1]
			px := xAxis.ToRenderX(prev.X)
			py := yAxis.ToRenderY(prev.Y)
			// one trace cell per column between samples
			for cx := cell(px) + 1; cx < cell(x); cx++ {
				t := (float64(cx) - px) / (x - px)
				s.set(cx, cell(py+(y-py)*t), runeTrace, style)
			}
		}
		s.set(cell(x), cell(y), runeSample, style)
	}
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

func (s *Surface) set(x, y int, r rune, style lipgloss.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.canvas.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, style))
}

func (s *Surface) at(x, y int) rune {
	if !s.inBounds(x, y) {
		return 0
	}

	return s.canvas.Cell(canvas.Point{X: x, Y: y}).Rune
}

func cell(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}

	return int(math.Round(v))
}
