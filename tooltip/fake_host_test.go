package tooltip

import (
	"github.com/arloliu/hoverline/geom"
)

// fakeElement records tooltip mutations.
type fakeElement struct {
	class    string
	text     string
	visible  bool
	x, y     float64
	w, h     float64
	setCalls int
}

func (e *fakeElement) SetText(text string) {
	e.text = text
	e.setCalls++
}

func (e *fakeElement) Text() string            { return e.text }
func (e *fakeElement) Size() (float64, float64) { return e.w, e.h }
func (e *fakeElement) MoveTo(x, y float64)      { e.x, e.y = x, y }
func (e *fakeElement) SetVisible(visible bool)  { e.visible = visible }

// fakeMarker records marker mutations.
type fakeMarker struct {
	spec    MarkerSpec
	x, y    float64
	visible bool
	removed bool
	moves   int
}

func (m *fakeMarker) MoveTo(x, y float64) {
	m.x, m.y = x, y
	m.moves++
}

func (m *fakeMarker) SetVisible(visible bool) { m.visible = visible }
func (m *fakeMarker) Remove()                 { m.removed = true }

// fakeHost is an in-memory Host.
type fakeHost struct {
	transform geom.Transform
	tooltip   *fakeElement
	markers   []*fakeMarker
}

func newFakeHost() *fakeHost {
	return &fakeHost{transform: geom.Identity}
}

func (h *fakeHost) NewTooltip(class string) Element {
	h.tooltip = &fakeElement{class: class, w: 40, h: 10}
	return h.tooltip
}

func (h *fakeHost) NewMarker(spec MarkerSpec) Marker {
	m := &fakeMarker{spec: spec}
	h.markers = append(h.markers, m)

	return m
}

func (h *fakeHost) ScreenTransform() geom.Transform { return h.transform }

// live returns the markers of a kind that haven't been removed.
func (h *fakeHost) live(kind MarkerKind) []*fakeMarker {
	var out []*fakeMarker
	for _, m := range h.markers {
		if m.spec.Kind == kind && !m.removed {
			out = append(out, m)
		}
	}

	return out
}

// visiblePoints counts the point markers currently shown.
func (h *fakeHost) visiblePoints() int {
	n := 0
	for _, m := range h.live(MarkerPoint) {
		if m.visible {
			n++
		}
	}

	return n
}
