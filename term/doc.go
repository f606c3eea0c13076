// Package term implements the tooltip host surface for terminals.
//
// A Surface is a grid of terminal cells backed by an ntcharts canvas. Chart
// render space is the cell grid itself: x grows to the right and y grows
// downward from the top-left cell of the surface. The surface can sit at any
// offset inside the terminal; pointer positions reported by the terminal are
// mapped back through ScreenTransform.
//
// Tooltips are drawn as lipgloss-styled boxes and measured in cells, so the
// driver can center them above the pointer.
package term
