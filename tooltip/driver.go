package tooltip

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/internal/pool"
)

// initialValuesCapacity is the capacity of freshly pooled per-frame value slices.
const initialValuesCapacity = 8

var valuesPool = pool.NewPool[SeriesValue](initialValuesCapacity)

// Pointer is a pointer position in screen coordinates.
type Pointer struct {
	X, Y float64
}

// TooltipState is the presentation state of the tooltip owned by a driver.
type TooltipState struct {
	Visible bool
	Text    string
	// X and Y are the screen position of the tooltip's top-left corner.
	X, Y float64
}

// Driver tracks the pointer over one chart and keeps its tooltip, crosshair
// markers and point highlights up to date.
//
// All methods must be called from the host's event loop. Rendered rebuilds
// the lookup state wholesale, and pointer moves only read it, so no locking
// is involved as long as both are delivered on the same loop.
type Driver struct {
	cfg       *Config
	host      Host
	scheduler Scheduler
	ctx       *Context

	state   format.State
	created bool

	// coalescing queue of depth one
	pending bool
	latest  Pointer

	xAxis, yAxis geom.Axis
	indexes      *index.Set

	element      Element
	tooltip      TooltipState
	markerX      Marker
	markerY      Marker
	pointMarkers []Marker
	highlighted  []Marker
	frames       int
}

// New creates a driver rendering onto host and processing pointer moves on
// the frames provided by scheduler.
//
// Returns an error when host or scheduler is nil or an option is invalid.
func New(host Host, scheduler Scheduler, opts ...Option) (*Driver, error) {
	if host == nil {
		return nil, errs.ErrNilHost
	}
	if scheduler == nil {
		return nil, errs.ErrNilScheduler
	}

	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("tooltip config: %w", err)
	}

	d := &Driver{
		cfg:       cfg,
		host:      host,
		scheduler: scheduler,
		ctx:       newContext(cfg),
		state:     format.StateIdle,
		indexes:   index.Build(nil, geom.Axis{}),
	}

	d.element = host.NewTooltip(cfg.tooltipClass)
	d.element.SetVisible(false)

	return d, nil
}

// Config returns the driver configuration.
func (d *Driver) Config() *Config {
	return d.cfg
}

// State returns the current interaction state.
func (d *Driver) State() format.State {
	return d.state
}

// Created reports whether the chart has been rendered at least once.
func (d *Driver) Created() bool {
	return d.created
}

// Tooltip returns the current tooltip presentation state.
func (d *Driver) Tooltip() TooltipState {
	return d.tooltip
}

// Pending reports whether a frame has been requested and not yet processed.
func (d *Driver) Pending() bool {
	return d.pending
}

// Frames returns the number of pointer frames processed so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Indexes returns the lookup indexes of the last render.
func (d *Driver) Indexes() *index.Set {
	return d.indexes
}

// Rendered handles the host's render-complete notification.
//
// It replaces the axis projection state and all series indexes, and recreates
// the crosshair and point markers. Degenerate axes are reported through the
// returned error (wrapping errs.ErrZeroAxisRange or errs.ErrInvalidAxisLength)
// but the render is still applied: projections through such an axis fall back
// to its origin.
func (d *Driver) Rendered(ev RenderEvent) error {
	var axisErr error
	if err := ev.XAxis.Validate(); err != nil {
		axisErr = errors.Join(axisErr, fmt.Errorf("x axis: %w", err))
	}
	if err := ev.YAxis.Validate(); err != nil {
		axisErr = errors.Join(axisErr, fmt.Errorf("y axis: %w", err))
	}
	if axisErr != nil {
		d.cfg.logger.Warn("degenerate chart axis", "error", axisErr)
	}

	d.xAxis, d.yAxis = ev.XAxis, ev.YAxis
	d.ctx.xAxis, d.ctx.yAxis = ev.XAxis, ev.YAxis
	d.indexes.Rebuild(ev.Series, ev.XAxis)
	d.createMarkers()

	d.created = true
	if d.state == format.StateArmed {
		d.activate()
	} else if d.state == format.StateActive {
		d.setMarkersVisible(true)
	}

	d.cfg.logger.Debug("chart rendered", "series", d.indexes.Len(), "state", d.state)

	return axisErr
}

// createMarkers replaces all markers with fresh, hidden ones.
func (d *Driver) createMarkers() {
	d.removeMarkers()

	top := d.yAxis.Origin - d.yAxis.Length
	bottom := d.yAxis.Origin
	left := d.xAxis.Origin
	right := d.xAxis.Origin + d.xAxis.Length

	d.markerX = d.host.NewMarker(MarkerSpec{
		Kind:  MarkerVertical,
		Class: d.cfg.markerClass,
		From:  geom.Point{X: 0, Y: top},
		To:    geom.Point{X: 0, Y: bottom},
	})
	d.markerX.SetVisible(false)

	if d.cfg.MarkerY() {
		d.markerY = d.host.NewMarker(MarkerSpec{
			Kind:  MarkerHorizontal,
			Class: d.cfg.markerClass,
			From:  geom.Point{X: left, Y: 0},
			To:    geom.Point{X: right, Y: 0},
		})
		d.markerY.SetVisible(false)
	}

	if d.cfg.highlight {
		d.pointMarkers = make([]Marker, d.indexes.Len())
		for i, ix := range d.indexes.All() {
			m := d.host.NewMarker(MarkerSpec{
				Kind:   MarkerPoint,
				Class:  d.cfg.highlightClass,
				Series: &ix.Series,
			})
			m.SetVisible(false)
			d.pointMarkers[i] = m
		}
	}
}

func (d *Driver) removeMarkers() {
	if d.markerX != nil {
		d.markerX.Remove()
		d.markerX = nil
	}
	if d.markerY != nil {
		d.markerY.Remove()
		d.markerY = nil
	}
	for _, m := range d.pointMarkers {
		m.Remove()
	}
	d.pointMarkers = nil
	d.highlighted = d.highlighted[:0]
}

// PointerEnter handles the pointer entering the chart area.
func (d *Driver) PointerEnter() {
	if d.state == format.StateActive {
		return
	}

	if !d.created {
		d.state = format.StateArmed
		d.cfg.logger.Debug("pointer enter before render", "state", d.state)

		return
	}

	d.activate()
}

func (d *Driver) activate() {
	d.state = format.StateActive
	d.element.SetVisible(true)
	d.tooltip.Visible = true
	d.setMarkersVisible(true)
	d.cfg.logger.Debug("tooltip shown", "state", d.state)
}

// PointerLeave hides the tooltip and markers and clears all highlights.
func (d *Driver) PointerLeave() {
	d.state = format.StateIdle
	d.element.SetVisible(false)
	d.tooltip.Visible = false
	d.setMarkersVisible(false)
	d.clearHighlights()
	d.cfg.logger.Debug("tooltip hidden", "state", d.state)
}

// PointerMove records the pointer position and requests a frame.
//
// Moves before the first render are ignored. Bursts of moves between two
// frames are coalesced: only the latest position is processed.
func (d *Driver) PointerMove(p Pointer) {
	if !d.created {
		return
	}

	d.latest = p
	if d.state != format.StateActive {
		d.activate()
	}

	if d.pending {
		return
	}
	d.pending = true
	d.scheduler.RequestFrame(d.frame)
}

// frame processes the latest pointer position.
func (d *Driver) frame() {
	d.pending = false

	// A leave between the request and the frame wins.
	if d.state != format.StateActive {
		return
	}

	local, err := geom.ScreenToLocal(d.latest.X, d.latest.Y, d.host.ScreenTransform())
	if err != nil {
		d.cfg.logger.Debug("frame skipped", "error", err)
		return
	}
	d.frames++

	valuesPtr := valuesPool.Get()
	defer valuesPool.Put(valuesPtr)

	dataX := d.xAxis.ToDataX(local.X)
	values := *valuesPtr
	for i, ix := range d.indexes.All() {
		b := ix.Locate(local.X)
		v, ok := d.cfg.mergeFunc(b.Left, b.Right, dataX)
		if !ok {
			continue
		}
		values = append(values, SeriesValue{Series: &ix.Series, Index: i, Value: v})
	}
	*valuesPtr = values

	if text := d.cfg.display(d.ctx, values, d.element); text != "" {
		d.element.SetText(text)
	}
	d.tooltip.Text = d.element.Text()

	w, h := d.element.Size()
	d.tooltip.X = d.latest.X - w/2 + d.cfg.offset.X
	d.tooltip.Y = d.latest.Y - h + d.cfg.offset.Y
	d.element.MoveTo(d.tooltip.X, d.tooltip.Y)

	d.markerX.MoveTo(local.X, 0)
	if d.markerY != nil {
		d.markerY.MoveTo(0, d.markerYPosition(local.Y, values))
	}

	if d.cfg.highlight {
		d.clearHighlights()
		for _, v := range values {
			m := d.pointMarkers[v.Index]
			m.MoveTo(d.xAxis.ToRenderX(v.Value.X), d.yAxis.ToRenderY(v.Value.Y))
			m.SetVisible(true)
			d.highlighted = append(d.highlighted, m)
		}
	}
}

// markerYPosition returns the pointer y, or the topmost rendered y among the
// merged values when following the max line.
func (d *Driver) markerYPosition(pointerY float64, values []SeriesValue) float64 {
	if !d.cfg.followMaxLine || len(values) == 0 {
		return pointerY
	}

	top := math.Inf(1)
	for _, v := range values {
		top = min(top, d.yAxis.ToRenderY(v.Value.Y))
	}

	return top
}

func (d *Driver) setMarkersVisible(visible bool) {
	if d.markerX != nil {
		d.markerX.SetVisible(visible)
	}
	if d.markerY != nil {
		d.markerY.SetVisible(visible)
	}
}

func (d *Driver) clearHighlights() {
	for _, m := range d.highlighted {
		m.SetVisible(false)
	}
	d.highlighted = d.highlighted[:0]
}

// Close tears the driver down: markers are removed, the tooltip is hidden and
// the series indexes are released. The driver must not be used afterwards.
func (d *Driver) Close() {
	d.PointerLeave()
	d.removeMarkers()
	d.indexes.Release()
	d.created = false
}
