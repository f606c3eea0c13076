// Package tooltip drives the hover overlay of a line chart: the tooltip
// element, the crosshair markers and the point highlights.
//
// # Lifecycle
//
// The host forwards its events to a Driver:
//
//	d, err := tooltip.New(host, scheduler,
//	    tooltip.WithMergeName("interpolate"),
//	    tooltip.WithMarkerY(true),
//	)
//	...
//	d.Rendered(tooltip.RenderEvent{XAxis: x, YAxis: y, Series: series})
//	d.PointerEnter()
//	d.PointerMove(tooltip.Pointer{X: ev.X, Y: ev.Y})
//	d.PointerLeave()
//
// The driver is Idle while the pointer is outside the chart, Armed when the
// pointer entered before the first render and Active once the tooltip tracks
// the pointer. Moves before the first render are ignored.
//
// # Frames
//
// Pointer moves aren't processed immediately. The driver stores the latest
// position and asks its Scheduler for one frame; further moves before that
// frame only replace the stored position. Each frame maps the pointer to data
// space, locates and merges the bracketing samples of every series, formats
// the tooltip through the DisplayFunc, and moves the tooltip and markers.
//
// ManualScheduler runs queued frames on Flush and fits event loops that own
// their frame boundary. SchedulerFunc adapts any other mechanism.
package tooltip
