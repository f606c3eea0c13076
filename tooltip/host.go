package tooltip

import (
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/index"
)

// Element is the tooltip presentation handle provided by the host.
//
// Display functions receive it and may mutate its content directly instead
// of returning text.
type Element interface {
	// SetText replaces the displayed text.
	SetText(text string)
	// Text returns the displayed text.
	Text() string
	// Size returns the measured width and height in screen units.
	Size() (width, height float64)
	// MoveTo places the element's top-left corner at a screen position.
	MoveTo(x, y float64)
	// SetVisible shows or hides the element.
	SetVisible(visible bool)
}

// Marker is a graphic drawn on the chart surface, in chart-local render space.
type Marker interface {
	// MoveTo translates the marker. Vertical crosshairs only use x,
	// horizontal crosshairs only use y.
	MoveTo(x, y float64)
	// SetVisible shows or hides the marker.
	SetVisible(visible bool)
	// Remove deletes the marker from the surface.
	Remove()
}

// MarkerKind identifies the shape of a marker.
type MarkerKind uint8

const (
	// MarkerVertical is the crosshair line following the pointer x.
	MarkerVertical MarkerKind = iota + 1
	// MarkerHorizontal is the optional crosshair line following a y position.
	MarkerHorizontal
	// MarkerPoint highlights the merged value of one series.
	MarkerPoint
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerVertical:
		return "vertical"
	case MarkerHorizontal:
		return "horizontal"
	case MarkerPoint:
		return "point"
	default:
		return "unknown"
	}
}

// MarkerSpec describes a marker the driver asks the host to create.
type MarkerSpec struct {
	Kind MarkerKind
	// Class is the style class configured for this kind of marker.
	Class string
	// From and To are the untranslated line end points in chart-local space.
	// Both are zero for point markers.
	From, To geom.Point
	// Series is the series a point marker belongs to; nil for crosshairs.
	Series *index.Series
}

// Host is the chart surface the driver renders onto.
type Host interface {
	// NewTooltip creates the tooltip element owned by one driver.
	NewTooltip(class string) Element
	// NewMarker creates a hidden marker.
	NewMarker(spec MarkerSpec) Marker
	// ScreenTransform returns the current chart-local to screen transform.
	// It's queried on every processed frame.
	ScreenTransform() geom.Transform
}

// RenderEvent is the render-complete notification of the host chart.
type RenderEvent struct {
	// XAxis and YAxis are the projection state of the render.
	XAxis, YAxis geom.Axis
	// Series are the plotted series in draw order, each x-ascending.
	Series []index.Series
}
