package tooltip

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/internal/options"
	"github.com/arloliu/hoverline/merge"
)

// Default style classes, matching the class names hosts usually ship CSS or
// terminal styles for.
const (
	DefaultTooltipClass   = "hoverline-tooltip"
	DefaultMarkerClass    = "hoverline-marker"
	DefaultHighlightClass = "hoverline-point-hit"
)

// DefaultOffset is the tooltip offset from the pointer: centered and 15 units above.
var DefaultOffset = geom.Point{X: 0, Y: -15}

// Config holds the configuration of a Driver.
//
// It's populated through Option values; zero values are never used directly.
type Config struct {
	offset         geom.Point
	mergeType      format.MergeType
	mergeFunc      merge.Func
	display        DisplayFunc
	highlight      bool
	markerY        bool
	followMaxLine  bool
	formatX        func(float64) string
	formatY        func(float64) string
	formatName     func(string) string
	mergeXSeries   func([]float64) float64
	tooltipClass   string
	markerClass    string
	highlightClass string
	logger         *slog.Logger
}

// Option is a functional option for configuring a Driver.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		offset:         DefaultOffset,
		mergeType:      format.MergeNearest,
		mergeFunc:      merge.Nearest,
		display:        DefaultDisplay,
		highlight:      true,
		formatX:        FormatFloat,
		formatY:        FormatFloat,
		formatName:     CapitalizeName,
		mergeXSeries:   FirstX,
		tooltipClass:   DefaultTooltipClass,
		markerClass:    DefaultMarkerClass,
		highlightClass: DefaultHighlightClass,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewConfig builds a Config from defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MergeType returns the configured built-in merge type, or 0 when a custom
// merge function is set.
func (c *Config) MergeType() format.MergeType {
	return c.mergeType
}

// Offset returns the configured tooltip offset.
func (c *Config) Offset() geom.Point {
	return c.offset
}

// HighlightPoint reports whether merged values get a point marker.
func (c *Config) HighlightPoint() bool {
	return c.highlight
}

// MarkerY reports whether the horizontal crosshair is drawn.
func (c *Config) MarkerY() bool {
	return c.markerY || c.followMaxLine
}

// FollowMaxLine reports whether the horizontal crosshair pins to the topmost merged value.
func (c *Config) FollowMaxLine() bool {
	return c.followMaxLine
}

// WithTooltipOffset sets the offset added to the tooltip position.
func WithTooltipOffset(x, y float64) Option {
	return options.NoError(func(c *Config) {
		c.offset = geom.Point{X: x, Y: y}
	})
}

// WithMergeType selects a built-in merge policy.
func WithMergeType(mt format.MergeType) Option {
	return options.New(func(c *Config) error {
		fn, err := merge.ForType(mt)
		if err != nil {
			return err
		}
		c.mergeType = mt
		c.mergeFunc = fn

		return nil
	})
}

// WithMergeName selects a built-in merge policy by name
// (left, right, nearest or interpolate).
//
// Unknown names fail with errs.ErrUnknownMergePolicy.
func WithMergeName(name string) Option {
	return options.New(func(c *Config) error {
		mt, ok := format.ParseMergeType(name)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrUnknownMergePolicy, name)
		}
		c.mergeType = mt
		c.mergeFunc, _ = merge.ForType(mt)

		return nil
	})
}

// WithMergeFunc sets a custom merge policy.
func WithMergeFunc(fn merge.Func) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return errs.ErrNilMergeFunc
		}
		c.mergeType = 0
		c.mergeFunc = fn

		return nil
	})
}

// WithDisplayFunc sets the tooltip content formatter.
func WithDisplayFunc(fn DisplayFunc) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return errs.ErrNilDisplayFunc
		}
		c.display = fn

		return nil
	})
}

// WithHighlightPoint enables or disables point markers on merged values.
func WithHighlightPoint(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.highlight = enabled
	})
}

// WithMarkerY enables the horizontal crosshair following the pointer y.
func WithMarkerY(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.markerY = enabled
	})
}

// WithFollowMaxLine pins the horizontal crosshair to the topmost merged value
// instead of the pointer y. It implies WithMarkerY(true).
func WithFollowMaxLine(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.followMaxLine = enabled
	})
}

// WithFormatX sets the formatter for x values.
func WithFormatX(fn func(float64) string) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return fmt.Errorf("%w: x", errs.ErrNilFormatter)
		}
		c.formatX = fn

		return nil
	})
}

// WithFormatY sets the formatter for y values.
func WithFormatY(fn func(float64) string) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return fmt.Errorf("%w: y", errs.ErrNilFormatter)
		}
		c.formatY = fn

		return nil
	})
}

// WithFormatName sets the formatter for series names.
func WithFormatName(fn func(string) string) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return fmt.Errorf("%w: name", errs.ErrNilFormatter)
		}
		c.formatName = fn

		return nil
	})
}

// WithMergeXSeries sets the function picking the x value shown in the
// tooltip header when the merged values of several series disagree.
func WithMergeXSeries(fn func([]float64) float64) Option {
	return options.New(func(c *Config) error {
		if fn == nil {
			return fmt.Errorf("%w: merge x series", errs.ErrNilFormatter)
		}
		c.mergeXSeries = fn

		return nil
	})
}

// WithClasses sets the style classes of the tooltip, crosshair markers and
// point markers. Empty values keep the current class.
func WithClasses(tooltipClass, markerClass, highlightClass string) Option {
	return options.NoError(func(c *Config) {
		if tooltipClass != "" {
			c.tooltipClass = tooltipClass
		}
		if markerClass != "" {
			c.markerClass = markerClass
		}
		if highlightClass != "" {
			c.highlightClass = highlightClass
		}
	})
}

// WithTooltipClass sets the style class of the tooltip element.
func WithTooltipClass(class string) Option {
	return WithClasses(class, "", "")
}

// WithMarkerClass sets the style class of the crosshair markers.
func WithMarkerClass(class string) Option {
	return WithClasses("", class, "")
}

// WithHighlightClass sets the style class of the point markers.
func WithHighlightClass(class string) Option {
	return WithClasses("", "", class)
}

// WithLogger sets the logger receiving debug records of state transitions
// and skipped frames. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// FormatFloat formats a value with the shortest representation that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CapitalizeName upper-cases the first letter of a series name.
func CapitalizeName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(name))
	sb.WriteRune(unicode.ToUpper(r))
	sb.WriteString(name[size:])

	return sb.String()
}

// FirstX picks the first x value. It returns 0 for an empty slice.
func FirstX(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return xs[0]
}
