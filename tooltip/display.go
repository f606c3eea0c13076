package tooltip

import (
	"strings"

	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/merge"
)

// SeriesValue is the merged value reported for one series in a frame.
type SeriesValue struct {
	// Series is the series the value belongs to.
	Series *index.Series
	// Index is the position of the series in draw order.
	Index int
	// Value is the merged data-space value.
	Value index.DataPoint
}

// DisplayFunc produces the tooltip content for a frame.
//
// A non-empty return value replaces the tooltip text. A display function may
// instead write to el directly and return "". The values slice is recycled
// after the call and must not be retained.
type DisplayFunc func(ctx *Context, values []SeriesValue, el Element) string

// Context bundles what a display function may depend on: the configured
// formatters and the projection of the current render.
type Context struct {
	FormatX      func(float64) string
	FormatY      func(float64) string
	FormatName   func(string) string
	MergeXSeries func([]float64) float64

	xAxis, yAxis geom.Axis
}

func newContext(cfg *Config) *Context {
	return &Context{
		FormatX:      cfg.formatX,
		FormatY:      cfg.formatY,
		FormatName:   cfg.formatName,
		MergeXSeries: cfg.mergeXSeries,
	}
}

// ToRenderX projects a data x value to chart-local render space.
func (c *Context) ToRenderX(v float64) float64 {
	return c.xAxis.ToRenderX(v)
}

// ToRenderY projects a data y value to chart-local render space.
func (c *Context) ToRenderY(v float64) float64 {
	return c.yAxis.ToRenderY(v)
}

// ToDataX maps a chart-local render x back to data space.
func (c *Context) ToDataX(px float64) float64 {
	return c.xAxis.ToDataX(px)
}

// MergeFuncs returns the built-in merge policies keyed by name.
func (c *Context) MergeFuncs() map[string]merge.Func {
	return merge.Builtins()
}

// DefaultDisplay renders an optional x header followed by one
// "Name: y" line per series.
//
// The header is the formatted MergeXSeries of all merged x values and is
// omitted when it formats to "". An empty values slice leaves the tooltip
// text unchanged.
func DefaultDisplay(ctx *Context, values []SeriesValue, _ Element) string {
	if len(values) == 0 {
		return ""
	}

	xs := make([]float64, len(values))
	var lines strings.Builder
	for i, v := range values {
		xs[i] = v.Value.X
		if i > 0 {
			lines.WriteByte('\n')
		}
		lines.WriteString(ctx.FormatName(v.Series.Name))
		lines.WriteString(": ")
		lines.WriteString(ctx.FormatY(v.Value.Y))
	}

	text := lines.String()
	if header := ctx.FormatX(ctx.MergeXSeries(xs)); header != "" {
		text = header + "\n" + text
	}

	return text
}
